// Package exporter persists listed invoices to disk: one pretty-printed
// metadata JSON for the whole collection and one PDF per invoice, with
// deterministic collision-safe filenames derived from the invoice date.
package exporter

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledgerline/bill-exporter/pkg/bill"
)

// DocumentFetcher retrieves the binary document for a single invoice.
// *bill.Client satisfies it; tests substitute a stub.
type DocumentFetcher interface {
	GetInvoicePDF(invoiceID string) ([]byte, error)
}

// ExportConfig holds configuration for the PDF export.
type ExportConfig struct {
	OutputDir string // local directory, created if missing
}

// ExportedFile records one PDF written to disk.
type ExportedFile struct {
	InvoiceID string
	FileName  string
}

// ExportResult holds the outcome of an export run. When ExportPDFs
// returns an error the result still lists every file written before the
// abort, so callers can report what is on disk.
type ExportResult struct {
	Files         []ExportedFile
	SkippedNoDate []string // invoice ids skipped for a missing date field
}

// ExportPDFs fetches and writes one PDF per invoice, strictly in input
// order. Invoices without an id are skipped silently; invoices without a
// date are skipped and recorded in the result. A fetch or write failure
// aborts the remaining export immediately — files already written are
// left in place.
func ExportPDFs(fetcher DocumentFetcher, invoices []bill.Invoice, config ExportConfig) (*ExportResult, error) {
	if err := os.MkdirAll(config.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory %q: %w", config.OutputDir, err)
	}

	result := &ExportResult{}
	seen := make(map[string]int) // base name -> occurrence count

	for _, invoice := range invoices {
		invoiceID := invoice.ID()
		if invoiceID == "" {
			continue
		}

		invoiceDate := invoice.InvoiceDate()
		if invoiceDate == "" {
			result.SkippedNoDate = append(result.SkippedNoDate, invoiceID)
			continue
		}

		pdf, err := fetcher.GetInvoicePDF(invoiceID)
		if err != nil {
			return result, err
		}

		base := baseFileName(invoiceDate)
		count := seen[base]
		seen[base] = count + 1

		fileName := base + ".pdf"
		if count > 0 {
			fileName = fmt.Sprintf("%s-%s.pdf", base, invoiceID)
		}

		destPath := filepath.Join(config.OutputDir, fileName)
		if err := os.WriteFile(destPath, pdf, 0644); err != nil {
			return result, fmt.Errorf("failed to write %q: %w", destPath, err)
		}

		result.Files = append(result.Files, ExportedFile{
			InvoiceID: invoiceID,
			FileName:  fileName,
		})
	}

	return result, nil
}

// WriteMetadata writes the full ordered invoice collection to path as
// pretty-printed JSON, overwriting any existing file.
func WriteMetadata(invoices []bill.Invoice, path string) error {
	data, err := json.MarshalIndent(invoices, "", "  ")
	if err != nil {
		return fmt.Errorf("encode invoice metadata: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write metadata file %q: %w", path, err)
	}

	return nil
}

// MetadataFileName returns the metadata file name for a date range, with
// both dates formatted YYYY-MM-DD.
func MetadataFileName(startDate, endDate string) string {
	return fmt.Sprintf("bill_invoices_%s_to_%s.json", startDate, endDate)
}

// baseFileName derives a path-safe filename stem from an invoice date:
// the substring before any time separator (T for ISO timestamps, the
// first space otherwise), with / and : replaced by -.
func baseFileName(date string) string {
	raw := strings.TrimSpace(date)
	raw, _, _ = strings.Cut(raw, "T")
	raw, _, _ = strings.Cut(raw, " ")
	raw = strings.ReplaceAll(raw, "/", "-")
	raw = strings.ReplaceAll(raw, ":", "-")
	return raw
}
