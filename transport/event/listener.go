package event

import (
	"context"

	"calgrid/config"
	"calgrid/infras/kafka"
	"calgrid/infras/otel"
	"calgrid/internal/domains/calendar/model"
	"calgrid/internal/domains/calendar/service"
	"calgrid/shared/constant"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
)

// Listener consumes booking changes made outside the calendar and drops the cached days they touch.
type Listener struct {
	config   *config.Config
	kafka    kafka.Client
	calendar service.Calendar
	otel     otel.Otel
}

func New(config *config.Config, kafka kafka.Client, calendar service.Calendar, otel otel.Otel) *Listener {
	return &Listener{
		config:   config,
		kafka:    kafka,
		calendar: calendar,
		otel:     otel,
	}
}

// Listen blocks until ctx is done. It returns at once when Kafka is disabled.
func (l *Listener) Listen(ctx context.Context) {
	if !l.config.Kafka.Enable {
		log.Info().Msg("Kafka disabled, booking change listener not started.")

		return
	}

	log.Info().Str("topic", l.config.Kafka.BookingTopic).Msg("Listening for booking changes.")

	l.kafka.Consume(ctx, l.config.Kafka.ConsumerGroup, l.config.Kafka.BookingTopic, l.Handle)
}

// Handle processes one booking change message.
func (l *Listener) Handle(message kafkaGo.Message) {
	ctx, scope := l.otel.NewScope(context.Background(), constant.OtelEventScopeName, constant.OtelEventScopeName+".BookingChanged")
	defer scope.End()

	_, changed, err := kafka.DecodeKafkaMessage[model.BookingChanged](message)
	if err != nil {
		scope.TraceError(err)

		return
	}

	if changed.SalonID == constant.Empty {
		changed.SalonID = string(message.Key)
	}

	if err := l.calendar.HandleBookingChanged(ctx, changed); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("salon", changed.SalonID).Msg("failed to handle booking change")
	}
}
