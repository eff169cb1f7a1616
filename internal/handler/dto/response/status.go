package response

import (
	"time"

	"flute-live-api/internal/infra/sheets"
	"flute-live-api/internal/usecase/queries"
)

type StatusEnvironment struct {
	StoreBackend           string `json:"storeBackend"`
	AdminPasswordSet       bool   `json:"adminPasswordSet"`
	ResendAPIKeySet        bool   `json:"resendApiKeySet"`
	GoogleClientEmailSet   bool   `json:"googleClientEmailSet"`
	GooglePrivateKeySet    bool   `json:"googlePrivateKeySet"`
	GoogleSpreadsheetIDSet bool   `json:"googleSpreadsheetIdSet"`
}

type StatusResponse struct {
	Status      string            `json:"status"`
	Timestamp   time.Time         `json:"timestamp"`
	Environment StatusEnvironment `json:"environment"`
}

func FromEnvironmentStatus(status queries.EnvironmentStatus) *StatusResponse {
	return &StatusResponse{
		Status:    "OK",
		Timestamp: status.Timestamp,
		Environment: StatusEnvironment{
			StoreBackend:           status.StoreBackend,
			AdminPasswordSet:       status.AdminPasswordSet,
			ResendAPIKeySet:        status.ResendAPIKeySet,
			GoogleClientEmailSet:   status.GoogleClientEmailSet,
			GooglePrivateKeySet:    status.GooglePrivateKeySet,
			GoogleSpreadsheetIDSet: status.GoogleSpreadsheetIDSet,
		},
	}
}

type SheetsDebugResponse struct {
	Success          bool     `json:"success"`
	SpreadsheetTitle string   `json:"spreadsheetTitle,omitempty"`
	SheetNames       []string `json:"sheetNames,omitempty"`
	Error            string   `json:"error,omitempty"`
}

func FromSheetsReport(report *sheets.Report) *SheetsDebugResponse {
	return &SheetsDebugResponse{
		Success:          true,
		SpreadsheetTitle: report.SpreadsheetTitle,
		SheetNames:       report.SheetNames,
	}
}
