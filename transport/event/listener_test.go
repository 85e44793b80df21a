package event_test

import (
	"context"
	"errors"
	"testing"

	kafkaGo "github.com/segmentio/kafka-go"
	"go.uber.org/mock/gomock"

	"calgrid/config"
	kafkaMocks "calgrid/infras/kafka/mocks"
	"calgrid/infras/otel/mocks"
	calendarMocks "calgrid/internal/domains/calendar/mocks"
	"calgrid/internal/domains/calendar/model"
	"calgrid/transport/event"
)

func TestListener_Handle(t *testing.T) {
	tests := []struct {
		name      string
		message   kafkaGo.Message
		setupMock func(m *calendarMocks.MockCalendar)
	}{
		{
			name:    "invalidates the listed days",
			message: kafkaGo.Message{Key: []byte("salon-1"), Value: []byte(`{"salon_id":"salon-1","dates":["2025-03-10"]}`)},
			setupMock: func(m *calendarMocks.MockCalendar) {
				m.EXPECT().
					HandleBookingChanged(gomock.Any(), model.BookingChanged{SalonID: "salon-1", Dates: []string{"2025-03-10"}}).
					Return(nil)
			},
		},
		{
			name:    "salon falls back to the key",
			message: kafkaGo.Message{Key: []byte("salon-2"), Value: []byte(`{}`)},
			setupMock: func(m *calendarMocks.MockCalendar) {
				m.EXPECT().
					HandleBookingChanged(gomock.Any(), model.BookingChanged{SalonID: "salon-2"}).
					Return(errors.New("redis down"))
			},
		},
		{
			name:      "malformed payload is dropped",
			message:   kafkaGo.Message{Value: []byte(`not json`)},
			setupMock: func(*calendarMocks.MockCalendar) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			calendar := calendarMocks.NewMockCalendar(ctrl)
			tt.setupMock(calendar)

			listener := event.New(&config.Config{}, kafkaMocks.NewMockClient(ctrl), calendar, mocks.NewOtel())
			listener.Handle(tt.message)
		})
	}
}

func TestListener_Listen(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := kafkaMocks.NewMockClient(ctrl)

	cfg := &config.Config{}
	listener := event.New(cfg, client, calendarMocks.NewMockCalendar(ctrl), mocks.NewOtel())

	// disabled: no consumer
	listener.Listen(context.Background())

	cfg.Kafka.Enable = true
	cfg.Kafka.ConsumerGroup = "calgrid"
	cfg.Kafka.BookingTopic = "bookings.changed"

	client.EXPECT().Consume(gomock.Any(), "calgrid", "bookings.changed", gomock.Any())

	listener.Listen(context.Background())
}
