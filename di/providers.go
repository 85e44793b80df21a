package di

import (
	"context"
	"time"

	"calgrid/config"
	"calgrid/infras/kafka"
	"calgrid/infras/metrics"
	"calgrid/infras/otel"
	"calgrid/infras/postgres"
	"calgrid/internal/domains/calendar/service"
	"calgrid/shared/timezone"
	"calgrid/transport/http"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

func NewClockRegistry(m *metrics.Metrics) *service.ClockRegistry {
	return service.NewClockRegistry(m, timezone.Now)
}

// NewCleanup closes what the server holds, in reverse order of construction.
func NewCleanup(
	cfg *config.Config,
	db *postgres.Connection,
	redisClient *goRedis.Client,
	kafkaClient kafka.Client,
	ot otel.Otel,
	calendar service.Calendar,
) http.Cleanup {
	return func() {
		calendar.Close()

		if err := kafkaClient.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close kafka client")
		}

		if err := redisClient.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close redis client")
		}

		if err := db.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close postgres connection")
		}

		ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.Shutdown.CleanupPeriodSeconds)*time.Second)
		defer cancel()

		if err := ot.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("failed to flush traces")
		}
	}
}
