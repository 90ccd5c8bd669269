package main

import (
	"fmt"
	"os"

	billexporter "github.com/ledgerline/bill-exporter"
	"github.com/ledgerline/bill-exporter/pkg/config"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

const version = "1.0.0"

var (
	startDate string
	endDate   string
	outDir    string
	maxPages  int
	envFile   string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "bill-exporter",
		Short: "Export Bill.com invoices by createdTime range",
		Long:  "A tool to export Bill.com invoice metadata and download invoice PDFs for a date range via the Bill.com v3 API",
		Run:   run,
	}

	rootCmd.Flags().StringVarP(&startDate, "start-date", "s", "", "Start date (MM-DD-YYYY), inclusive (required)")
	rootCmd.Flags().StringVarP(&endDate, "end-date", "e", "", "End date (MM-DD-YYYY), exclusive (required)")
	rootCmd.Flags().StringVarP(&outDir, "out-dir", "o", "invoices", "Output directory for the metadata JSON and PDFs")
	rootCmd.Flags().IntVar(&maxPages, "max-pages", 0, "Maximum listing pages to follow (0 = default)")
	rootCmd.Flags().StringVar(&envFile, "env-file", ".env", "Dotenv file with BILL_* credentials")

	rootCmd.MarkFlagRequired("start-date")
	rootCmd.MarkFlagRequired("end-date")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("bill-exporter version %s\n", version)
		},
	}

	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) {
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)
	cyan := color.New(color.FgCyan)

	cyan.Println("\n📄 Bill.com Invoice Exporter")
	cyan.Println("============================")
	cyan.Println()

	cfg := config.Load(envFile)
	if err := cfg.Validate(); err != nil {
		red.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	start, end, err := billexporter.ParseDateRange(startDate, endDate)
	if err != nil {
		red.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	result, err := billexporter.Run(billexporter.Options{
		Username:       cfg.Username,
		Password:       cfg.Password,
		OrganizationID: cfg.OrganizationID,
		DevKey:         cfg.DevKey,
		StartDate:      start,
		EndDate:        end,
		OutputDir:      outDir,
		MaxPages:       maxPages,
		Logger:         &cliLogger{},
	})
	if err != nil {
		red.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	cyan.Println("\n📊 Export Summary:")
	fmt.Printf("  • Invoices: %d\n", len(result.Invoices))
	fmt.Printf("  • PDFs written: %d\n", len(result.Files))
	if len(result.SkippedNoDate) > 0 {
		fmt.Printf("  • Skipped (no invoiceDate): %d\n", len(result.SkippedNoDate))
	}
	fmt.Printf("  • Metadata: %s\n", result.MetadataPath)

	green.Printf("\n✨ Successfully exported %d invoice(s) to %s\n\n", len(result.Invoices), outDir)
}

// cliLogger implements billexporter.Logger with colored terminal output.
type cliLogger struct{}

func (l *cliLogger) Infof(format string, args ...any) {
	color.New(color.FgYellow).Printf(format+"\n", args...)
}

func (l *cliLogger) Warnf(format string, args ...any) {
	color.New(color.FgYellow).Printf("⚠ "+format+"\n", args...)
}

func (l *cliLogger) Errorf(format string, args ...any) {
	color.New(color.FgRed).Printf("✗ "+format+"\n", args...)
}
