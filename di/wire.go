//go:build wireinject
// +build wireinject

package di

import (
	"calgrid/config"
	"calgrid/infras/jwt"
	"calgrid/infras/kafka"
	"calgrid/infras/metrics"
	"calgrid/infras/otel"
	"calgrid/infras/postgres"
	"calgrid/infras/redis"
	"calgrid/infras/s3"
	calendarHandler "calgrid/internal/handlers/calendar"
	"calgrid/shared/cache"
	"calgrid/transport/event"
	"calgrid/transport/http"
	"calgrid/transport/http/middleware"
	"calgrid/transport/http/router"

	bookingRepository "calgrid/internal/domains/booking/repository"
	calendarService "calgrid/internal/domains/calendar/service"
	salonRepository "calgrid/internal/domains/salon/repository"
	staffRepository "calgrid/internal/domains/staff/repository"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
	metrics.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var calendarDomain = wire.NewSet(
	salonRepository.New,
	staffRepository.New,
	bookingRepository.New,
	NewClockRegistry,
	calendarService.New,
)

var domains = wire.NewSet(
	calendarDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	calendarHandler.New,
	router.New,
)

var transports = wire.NewSet(
	event.New,
	NewCleanup,
	http.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		transports,
	)

	return &http.HTTP{}
}
