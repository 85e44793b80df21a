package main

import (
	"calgrid/config"
	"calgrid/di"
	_ "calgrid/docs"
	"calgrid/helper"
	"calgrid/shared/logger"
	"calgrid/shared/timezone"

	"github.com/rs/zerolog/log"
)

// @title						Calgrid API
// @version					1.0
// @description				Salon calendar time grid: board rendering, drag and resize gestures, slot menu and live clock.
// @BasePath					/
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
// @securityDefinitions.apikey	APIKeyAuth
// @in							header
// @name						X-API-Key
func main() {
	cfg := config.Get()

	logger.InitLogger(cfg.Server.Env)
	logger.SetLogLevel(cfg)
	timezone.Init(cfg.App.Timezone)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to migrate database")
		}
	}

	http := di.InitializeService()
	http.Serve()
}
