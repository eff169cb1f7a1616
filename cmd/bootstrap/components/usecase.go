package components

import (
	"log/slog"

	"flute-live-api/internal/domain/reservation"
	"flute-live-api/internal/pkg/clock"
	"flute-live-api/internal/pkg/config"
	"flute-live-api/internal/pkg/password"
	"flute-live-api/internal/usecase/commands"
	"flute-live-api/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		reservation.NewDefaultPriceCalculator,
		fx.As(new(reservation.PriceCalculator)),
	),
	NewPasswordChecker,
)

// NewPasswordChecker prefers the bcrypt hash when both credentials are set;
// the plain password exists for local setups without a hashing step.
func NewPasswordChecker(cfg config.Config) password.Checker {
	if cfg.Admin.PasswordHash != "" {
		return password.NewBcryptChecker(cfg.Admin.PasswordHash)
	}
	return password.NewPlainChecker(cfg.Admin.Password)
}

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewReservationCommands,
		NewLiveInfoCommands,
	),
)

func NewLiveInfoCommands(cfg config.Config, store commands.ConfigStore, logger *slog.Logger) commands.LiveInfoCommands {
	return commands.NewLiveInfoCommands(store, cfg.Store.MaxProgramImageSize, logger)
}

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewLiveInfoQueries,
		queries.NewStatusQueries,
		queries.NewDebugQueries,
	),
)
