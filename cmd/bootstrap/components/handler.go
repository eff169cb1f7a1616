package components

import (
	"flute-live-api/internal/handler"
	"flute-live-api/internal/handler/api"
	"flute-live-api/internal/handler/middleware"
	"flute-live-api/internal/pkg/config"
	"flute-live-api/internal/usecase/commands"
	"flute-live-api/internal/usecase/queries"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewLiveInfoHandler,
		api.NewReservationHandler,
		api.NewAuthHandler,
		NewAdminHandler,
		api.NewStatusHandler,
		middleware.NewAdminAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

func NewAdminHandler(
	cfg config.Config,
	liveInfoCommands commands.LiveInfoCommands,
	liveInfoQueries queries.LiveInfoQueries,
) *api.AdminHandler {
	return api.NewAdminHandler(liveInfoCommands, liveInfoQueries, cfg.Store.MaxProgramImageSize)
}
