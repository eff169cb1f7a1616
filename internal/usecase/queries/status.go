package queries

import (
	"context"
	"time"

	"flute-live-api/internal/pkg/clock"
	"flute-live-api/internal/pkg/config"
)

// EnvironmentStatus reports which collaborator credentials are configured,
// without revealing any of their values.
type EnvironmentStatus struct {
	Timestamp              time.Time
	StoreBackend           string
	AdminPasswordSet       bool
	ResendAPIKeySet        bool
	GoogleClientEmailSet   bool
	GooglePrivateKeySet    bool
	GoogleSpreadsheetIDSet bool
}

type StatusQueries interface {
	Get(ctx context.Context) EnvironmentStatus
}

type statusQueriesImpl struct {
	cfg   config.Config
	clock clock.Clock
}

func NewStatusQueries(cfg config.Config, clk clock.Clock) StatusQueries {
	return &statusQueriesImpl{cfg: cfg, clock: clk}
}

func (q *statusQueriesImpl) Get(_ context.Context) EnvironmentStatus {
	return EnvironmentStatus{
		Timestamp:              q.clock.Now(),
		StoreBackend:           q.cfg.Store.Backend,
		AdminPasswordSet:       q.cfg.Admin.Configured(),
		ResendAPIKeySet:        q.cfg.Mail.ResendAPIKey != "",
		GoogleClientEmailSet:   q.cfg.Sheets.ClientEmail != "",
		GooglePrivateKeySet:    q.cfg.Sheets.PrivateKey != "",
		GoogleSpreadsheetIDSet: q.cfg.Sheets.SpreadsheetID != "",
	}
}
