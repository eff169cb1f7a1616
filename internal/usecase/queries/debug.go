package queries

import (
	"context"

	"flute-live-api/internal/infra/sheets"
	"flute-live-api/internal/pkg/errs"
)

var ErrSheetsNotConfigured = errs.New("google sheets collaborator not configured")

// SheetsChecker is satisfied by the sheets diagnostics client. It is nil when
// the service runs on the file backend.
type SheetsChecker interface {
	Check(ctx context.Context) (*sheets.Report, error)
}

type DebugQueries interface {
	CheckSheets(ctx context.Context) (*sheets.Report, error)
}

type debugQueriesImpl struct {
	checker SheetsChecker
}

func NewDebugQueries(checker SheetsChecker) DebugQueries {
	return &debugQueriesImpl{checker: checker}
}

func (q *debugQueriesImpl) CheckSheets(ctx context.Context) (*sheets.Report, error) {
	if q.checker == nil {
		return nil, ErrSheetsNotConfigured
	}
	return q.checker.Check(ctx)
}
