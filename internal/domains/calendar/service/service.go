package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"calgrid/config"
	"calgrid/infras/kafka"
	"calgrid/infras/metrics"
	"calgrid/infras/otel"
	"calgrid/infras/s3"
	bookingRepo "calgrid/internal/domains/booking/repository"
	"calgrid/internal/domains/calendar/model"
	"calgrid/internal/domains/calendar/model/dto"
	salonRepo "calgrid/internal/domains/salon/repository"
	staffRepo "calgrid/internal/domains/staff/repository"
	"calgrid/internal/grid"
	"calgrid/shared/cache"
	"calgrid/shared/constant"
	"calgrid/shared/failure"
	"calgrid/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	msgSalonNotFound = "salon not found"
	msgEventNotFound = "event not found"
	msgNotRendered   = "event is not on the viewed day"
	msgSlotTaken     = "the master already has a booking at that time"
	msgTooManyMoves  = "too many pointer moves"
)

type Calendar interface {
	Board(ctx context.Context, req dto.BoardRequest) (dto.BoardResponse, error)
	Event(ctx context.Context, req dto.EventRequest) (dto.EventResponse, error)
	Now(ctx context.Context, req dto.NowRequest) (dto.NowResponse, error)
	Gesture(ctx context.Context, req dto.GestureRequest) (dto.GestureResponse, error)
	SlotClick(ctx context.Context, req dto.SlotClickRequest) (dto.SlotClickResponse, error)
	SlotAction(ctx context.Context, req dto.SlotActionRequest) (dto.IntentResponse, error)
	HandleBookingChanged(ctx context.Context, event model.BookingChanged) error
	Close()
}

type serviceImpl struct {
	salons   salonRepo.Salon
	staff    staffRepo.Staff
	bookings bookingRepo.Booking
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
	s3       s3.S3
	kafka    kafka.Client
	metrics  *metrics.Metrics
	clocks   *ClockRegistry
}

func New(
	salons salonRepo.Salon,
	staff staffRepo.Staff,
	bookings bookingRepo.Booking,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	s3 s3.S3,
	kafka kafka.Client,
	metrics *metrics.Metrics,
	clocks *ClockRegistry,
) Calendar {
	return &serviceImpl{
		salons:   salons,
		staff:    staff,
		bookings: bookings,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
		s3:       s3,
		kafka:    kafka,
		metrics:  metrics,
		clocks:   clocks,
	}
}

func (s *serviceImpl) Board(ctx context.Context, req dto.BoardRequest) (res dto.BoardResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Board")
	defer scope.End()
	defer scope.TraceIfError(err)

	view, err := s.open(ctx, req.Scope, req.Viewport, grid.Callbacks{})
	if err != nil {
		return res, err
	}
	defer view.close()

	res.FromGrid(view.cal.Board(), view.clock.Reading(), view.clock.Zone(), req.Week)

	return res, nil
}

func (s *serviceImpl) Event(ctx context.Context, req dto.EventRequest) (res dto.EventResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Event")
	defer scope.End()
	defer scope.TraceIfError(err)

	var clicked *grid.Event

	view, err := s.open(ctx, req.Scope, dto.Viewport{}, grid.Callbacks{
		OnEventClick: func(event grid.Event) {
			clicked = &event
		},
	})
	if err != nil {
		return res, err
	}
	defer view.close()

	if err = view.cal.ClickEvent(req.EventID); err != nil {
		if errors.Is(err, grid.ErrEventNotFound) {
			return res, failure.NotFound(msgEventNotFound) // nolint:wrapcheck
		}

		return res, fmt.Errorf("failed to click event: %w", err)
	}

	if clicked != nil {
		res.FromGrid(*clicked)
	}

	return res, nil
}

func (s *serviceImpl) Now(ctx context.Context, req dto.NowRequest) (res dto.NowResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Now")
	defer scope.End()
	defer scope.TraceIfError(err)

	day, err := parseDay(req.Date)
	if err != nil {
		return res, err
	}

	salon, err := s.salon(ctx, req.SalonID)
	if err != nil {
		return res, err
	}

	clock := s.clocks.Get(s.zoneOf(salon.Timezone))
	res.FromClock(clock.Indicator(day, s.mapper()), clock.Reading(), clock.Zone(), day)

	return res, nil
}

func (s *serviceImpl) Close() {
	s.clocks.Close()
}

// view is one request's calendar, loaded with the salon day.
type view struct {
	cal      *grid.Calendar
	bus      *grid.PointerBus
	clock    *grid.Clock
	snapshot model.Snapshot
}

func (v *view) close() {
	v.cal.Close()
}

func (s *serviceImpl) open(ctx context.Context, scope dto.Scope, viewport dto.Viewport, callbacks grid.Callbacks) (*view, error) {
	day, err := parseDay(scope.Date)
	if err != nil {
		return nil, err
	}

	snapshot, err := s.snapshot(ctx, scope.SalonID, day)
	if err != nil {
		return nil, err
	}

	v := &view{
		bus:      grid.NewPointerBus(),
		clock:    s.clocks.Get(s.zoneOf(snapshot.Salon.Timezone)),
		snapshot: snapshot,
	}

	v.cal, err = grid.New(s.gridConfig(viewport), v.bus, v.clock, callbacks)
	if err != nil {
		log.Error().Err(err).Msg("invalid calendar geometry")

		return nil, fmt.Errorf("failed to build calendar: %w", err)
	}

	v.cal.Load(day, snapshot.Events(), snapshot.Resources(s.avatars(ctx, snapshot)))
	v.cal.Scroll(viewport.ScrollLeft)

	return v, nil
}

func (s *serviceImpl) mapper() grid.Mapper {
	calendar := s.cfg.Calendar
	mapper := grid.DefaultMapper()

	if calendar.DayEnd > calendar.DayStart {
		mapper.DayStart = calendar.DayStart
		mapper.DayEnd = calendar.DayEnd
	}

	if calendar.HourHeight > 0 {
		mapper.HourHeight = calendar.HourHeight
	}

	if calendar.ColumnWidth > 0 {
		mapper.ColumnWidth = calendar.ColumnWidth
	}

	if calendar.TimeColumnWidth > 0 {
		mapper.TimeColumnWidth = calendar.TimeColumnWidth
	}

	return mapper
}

func (s *serviceImpl) gridConfig(viewport dto.Viewport) grid.Config {
	cfg := grid.DefaultConfig()
	cfg.Mapper = s.mapper()
	cfg.AreaLeft = viewport.AreaLeft
	cfg.Viewport = grid.Size{Width: viewport.Width, Height: viewport.Height}

	if s.cfg.Calendar.DragStep > 0 {
		cfg.DragStep = s.cfg.Calendar.DragStep
	}

	if s.cfg.Calendar.ResizeStep > 0 {
		cfg.ResizeStep = s.cfg.Calendar.ResizeStep
	}

	return cfg
}

func (s *serviceImpl) zoneOf(salonZone string) string {
	if salonZone != constant.Empty {
		return salonZone
	}

	return s.cfg.Calendar.Timezone
}

func parseDay(date string) (time.Time, error) {
	day, err := timezone.ParseDate(date)
	if err != nil {
		return time.Time{}, failure.BadRequest(err) // nolint:wrapcheck
	}

	return day, nil
}
