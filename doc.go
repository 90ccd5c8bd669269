// Package billexporter exports Bill.com invoices for a createdTime date
// range: it logs in once, pages through the v3 invoice listing, writes
// the full listing as pretty-printed JSON, and downloads every invoice's
// PDF with deterministic, collision-safe filenames.
//
// The CLI lives in cmd/bill-exporter; this root package exposes the same
// pipeline as a Go API so that callers can embed the export in their own
// tools without shelling out.
//
// # Import
//
// The module path contains a hyphen but Go package names cannot, so the
// package is named billexporter:
//
//	import "github.com/ledgerline/bill-exporter" // package billexporter
//
// # Quick start
//
//	start, end, err := billexporter.ParseDateRange("01-01-2024", "02-01-2024")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := billexporter.Run(billexporter.Options{
//	    Username:       os.Getenv("BILL_USERNAME"),
//	    Password:       os.Getenv("BILL_PASSWORD"),
//	    OrganizationID: os.Getenv("BILL_ORG_ID"),
//	    DevKey:         os.Getenv("BILL_DEV_KEY"),
//	    StartDate:      start,
//	    EndDate:        end,
//	    OutputDir:      "invoices",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("wrote %s and %d PDFs\n", result.MetadataPath, len(result.Files))
//
// # Logging
//
// Pass a [Logger] implementation in [Options.Logger] to receive progress
// messages. A nil Logger silences all output.
//
// # Failure model
//
// The run is strictly sequential and all-or-nothing: a failure while
// logging in, listing, or fetching any single PDF aborts the run. The
// metadata JSON is written before any PDF, and PDFs written before an
// abort are left on disk and reported through the Logger. Filename
// collisions within one run are resolved deterministically: the first
// invoice for a date keeps the bare date name, later ones get the
// invoice id as a suffix.
package billexporter
