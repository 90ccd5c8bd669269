package billexporter

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ledgerline/bill-exporter/pkg/bill"
	"github.com/ledgerline/bill-exporter/pkg/exporter"
)

// apiDateFormat is the date layout the listing filter expects.
const apiDateFormat = "2006-01-02"

// cliDateFormat is the MM-DD-YYYY layout accepted on the command line.
const cliDateFormat = "01-02-2006"

// Options configures an export run.
type Options struct {
	// Credentials for the Bill.com API. All four are required.
	Username       string
	Password       string
	OrganizationID string
	DevKey         string

	// Date window: invoices created >= StartDate and < EndDate.
	StartDate time.Time
	EndDate   time.Time

	OutputDir string // default "invoices"
	MaxPages  int    // listing page cap; 0 = bill.DefaultMaxPages

	// BaseURL and PDFBaseURL override the production endpoints
	// (used by tests; empty = production).
	BaseURL    string
	PDFBaseURL string

	Logger Logger // nil = no logging
}

// Logger receives progress messages. A nil Logger means silent operation.
type Logger interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Result contains the export output.
type Result struct {
	Invoices      []bill.Invoice          // full listing, in arrival order
	MetadataPath  string                  // path of the written metadata JSON
	Files         []exporter.ExportedFile // PDFs written, in export order
	SkippedNoDate []string                // invoice ids skipped for a missing date
}

func (o *Options) logInfo(f string, a ...any) {
	if o.Logger != nil {
		o.Logger.Infof(f, a...)
	}
}

func (o *Options) logWarn(f string, a ...any) {
	if o.Logger != nil {
		o.Logger.Warnf(f, a...)
	}
}

// Run executes the export pipeline: login, list the date window, write
// the metadata JSON, then fetch and write one PDF per invoice. Every step
// is sequential and a failure at any point aborts the run; PDFs written
// before an abort are left on disk and reported via the Logger.
func Run(opts Options) (*Result, error) {
	if opts.OutputDir == "" {
		opts.OutputDir = "invoices"
	}
	if opts.StartDate.IsZero() || opts.EndDate.IsZero() {
		return nil, fmt.Errorf("start and end dates are required")
	}
	if !opts.StartDate.Before(opts.EndDate) {
		return nil, fmt.Errorf("start date must be earlier than end date")
	}

	startDate := opts.StartDate.Format(apiDateFormat)
	endDate := opts.EndDate.Format(apiDateFormat)

	client := bill.NewClient(opts.DevKey)
	client.MaxPages = opts.MaxPages
	if opts.BaseURL != "" {
		client.BaseURL = opts.BaseURL
	}
	if opts.PDFBaseURL != "" {
		client.PDFBaseURL = opts.PDFBaseURL
	}

	opts.logInfo("Logging in to Bill.com...")
	if err := client.Login(opts.Username, opts.Password, opts.OrganizationID); err != nil {
		return nil, err
	}

	opts.logInfo("Listing invoices created from %s to %s...", startDate, endDate)
	invoices, err := client.ListInvoicesCreatedBetween(startDate, endDate)
	if err != nil {
		return nil, err
	}
	opts.logInfo("Fetched %d invoice(s)", len(invoices))

	if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory %q: %w", opts.OutputDir, err)
	}

	// The metadata file is written before any PDF, so a later fetch
	// failure still leaves the full listing on disk.
	metadataPath := filepath.Join(opts.OutputDir, exporter.MetadataFileName(startDate, endDate))
	opts.logInfo("Writing invoice metadata to %s...", metadataPath)
	if err := exporter.WriteMetadata(invoices, metadataPath); err != nil {
		return nil, err
	}

	opts.logInfo("Exporting invoice PDFs to %s...", opts.OutputDir)
	exportResult, err := exporter.ExportPDFs(client, invoices, exporter.ExportConfig{
		OutputDir: opts.OutputDir,
	})
	if err != nil {
		if exportResult != nil && len(exportResult.Files) > 0 {
			opts.logWarn("Export aborted; %d PDF(s) were already written and remain on disk", len(exportResult.Files))
			for _, f := range exportResult.Files {
				opts.logWarn("  written: %s (invoice %s)", f.FileName, f.InvoiceID)
			}
		}
		return nil, err
	}

	for _, id := range exportResult.SkippedNoDate {
		opts.logWarn("Skipping invoice %s (missing invoiceDate)", id)
	}
	opts.logInfo("Exported %d PDF(s)", len(exportResult.Files))

	return &Result{
		Invoices:      invoices,
		MetadataPath:  metadataPath,
		Files:         exportResult.Files,
		SkippedNoDate: exportResult.SkippedNoDate,
	}, nil
}

// ParseDateRange parses the CLI's MM-DD-YYYY start and end dates and
// validates that start is strictly earlier than end.
func ParseDateRange(startStr, endStr string) (start, end time.Time, err error) {
	start, err = time.Parse(cliDateFormat, startStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid start date %q (want MM-DD-YYYY): %w", startStr, err)
	}

	end, err = time.Parse(cliDateFormat, endStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid end date %q (want MM-DD-YYYY): %w", endStr, err)
	}

	if !start.Before(end) {
		return time.Time{}, time.Time{}, fmt.Errorf("start date must be earlier than end date")
	}

	return start, end, nil
}
