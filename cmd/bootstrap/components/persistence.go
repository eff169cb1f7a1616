package components

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"flute-live-api/internal/infra/filestore"
	"flute-live-api/internal/infra/mail"
	"flute-live-api/internal/infra/sheets"
	"flute-live-api/internal/pkg/clock"
	"flute-live-api/internal/pkg/config"
	"flute-live-api/internal/pkg/errs"
	"flute-live-api/internal/usecase/commands"
	"flute-live-api/internal/usecase/queries"
)

// PersistenceModule wires the configuration store, the reservation log and
// the mailer. The store backend is chosen at startup: "sheets" requires
// Google credentials, "file" needs nothing.
var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewCollaborators,
		func(cfg config.Config, logger *slog.Logger) mail.Mailer {
			return mail.NewMailer(cfg.Mail, logger)
		},
	),
)

// Collaborators bundles the backend-dependent pieces so the choice is made in
// one place.
func NewCollaborators(cfg config.Config, clk clock.Clock, logger *slog.Logger) (
	commands.ConfigStore,
	queries.ConfigReader,
	commands.ReservationLog,
	queries.SheetsChecker,
	error,
) {
	switch cfg.Store.Backend {
	case "sheets":
		svc, err := sheets.NewService(context.Background(), cfg.Sheets)
		if err != nil {
			return nil, nil, nil, nil, errs.Wrap(err, "failed to initialize sheets backend")
		}
		store := sheets.NewConfigStore(svc, cfg.Sheets.SpreadsheetID, clk, logger)
		log := sheets.NewReservationLog(svc, cfg.Sheets.SpreadsheetID)
		diag := sheets.NewDiagnostics(svc, cfg.Sheets.SpreadsheetID)
		return store, store, log, diag, nil

	case "file":
		store := filestore.NewConfigStore(cfg.Store.LiveInfoPath, clk, logger)
		log := filestore.NewReservationLog(cfg.Store.ReservationLogPath)
		return store, store, log, nil, nil

	default:
		return nil, nil, nil, nil, errs.Newf("unknown STORE_BACKEND: %q", cfg.Store.Backend)
	}
}
