package sheets

import (
	"context"

	sheetsapi "google.golang.org/api/sheets/v4"

	"flute-live-api/internal/pkg/errs"
)

// Report describes what the diagnostic endpoint could see in the spreadsheet.
type Report struct {
	SpreadsheetTitle string
	SheetNames       []string
}

// Diagnostics performs a live connectivity check against the spreadsheet.
type Diagnostics struct {
	svc           *sheetsapi.Service
	spreadsheetID string
}

func NewDiagnostics(svc *sheetsapi.Service, spreadsheetID string) *Diagnostics {
	return &Diagnostics{
		svc:           svc,
		spreadsheetID: spreadsheetID,
	}
}

func (d *Diagnostics) Check(ctx context.Context) (*Report, error) {
	spreadsheet, err := d.svc.Spreadsheets.Get(d.spreadsheetID).Context(ctx).Do()
	if err != nil {
		return nil, errs.Wrap(err, "failed to reach spreadsheet")
	}

	report := &Report{}
	if spreadsheet.Properties != nil {
		report.SpreadsheetTitle = spreadsheet.Properties.Title
	}
	for _, sheet := range spreadsheet.Sheets {
		if sheet.Properties != nil {
			report.SheetNames = append(report.SheetNames, sheet.Properties.Title)
		}
	}
	return report, nil
}
