package service

import (
	"context"
	"errors"
	"fmt"

	"calgrid/infras/kafka"
	"calgrid/infras/metrics"
	bookingModel "calgrid/internal/domains/booking/model"
	bookingRepo "calgrid/internal/domains/booking/repository"
	"calgrid/internal/domains/calendar/model"
	"calgrid/internal/domains/calendar/model/dto"
	"calgrid/internal/grid"
	"calgrid/shared/constant"
	"calgrid/shared/failure"
	"calgrid/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Gesture replays one pointer gesture through the calendar and commits what it proposes.
func (s *serviceImpl) Gesture(ctx context.Context, req dto.GestureRequest) (res dto.GestureResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Gesture")
	defer scope.End()
	defer scope.TraceIfError(err)

	if maxMoves := s.cfg.Calendar.MaxMoves; maxMoves > 0 && len(req.Moves) > maxMoves {
		return res, failure.BadRequestFromString(msgTooManyMoves) // nolint:wrapcheck
	}

	var proposed *model.Intent

	view, err := s.open(ctx, req.Scope, req.Viewport, grid.Callbacks{
		OnEventDrop: func(drop grid.EventDrop) {
			proposed = &model.Intent{
				Type:       model.IntentEventDrop,
				EventID:    drop.Event.ID,
				ResourceID: drop.NewResourceID,
				Start:      drop.NewStart,
				End:        drop.NewEnd,
			}
		},
		OnEventResize: func(resize grid.EventResize) {
			proposed = &model.Intent{
				Type:       model.IntentEventResize,
				EventID:    resize.Event.ID,
				ResourceID: resize.Event.ResourceID,
				Start:      resize.Event.Start,
				End:        resize.NewEnd,
			}
		},
	})
	if err != nil {
		return res, err
	}
	defer view.close()

	intentType := model.IntentEventDrop
	press := view.cal.PressEvent

	if req.Kind == dto.GestureResize {
		intentType = model.IntentEventResize
		press = view.cal.PressHandle
	}

	if err = press(req.EventID, req.Press.ToGrid()); err != nil {
		return res, pressFailure(err)
	}

	for _, move := range req.Moves {
		view.bus.Move(move.ToGrid())
	}

	if req.Release == nil {
		view.cal.Cancel()
		s.metrics.Intent(intentType, metrics.OutcomeCancelled)
		res.Outcome = dto.OutcomeCancelled

		return res, nil
	}

	view.bus.Up(req.Release.ToGrid())

	if proposed == nil {
		s.metrics.Intent(intentType, metrics.OutcomeDiscarded)
		res.Outcome = dto.OutcomeDiscarded

		return res, nil
	}

	if err = s.commit(ctx, req.Scope, *proposed); err != nil {
		s.metrics.Intent(intentType, metrics.OutcomeFailed)

		return res, err
	}

	published := s.publish(ctx, s.stamp(proposed, req.Scope))
	s.metrics.Intent(intentType, metrics.OutcomeCommitted)

	res.Outcome = dto.OutcomeCommitted
	res.Intent = &dto.IntentResponse{}
	res.Intent.FromModel(*proposed, published)

	return res, nil
}

// SlotClick taps a cell. With the slot menu enabled the menu opens, otherwise the click is published.
func (s *serviceImpl) SlotClick(ctx context.Context, req dto.SlotClickRequest) (res dto.SlotClickResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SlotClick")
	defer scope.End()
	defer scope.TraceIfError(err)

	var clicked *grid.Slot

	callbacks := grid.Callbacks{
		OnSlotClick: func(slot grid.Slot) {
			clicked = &slot
		},
	}

	if s.cfg.Calendar.SlotMenu {
		callbacks.OnSlotAction = func(grid.SlotAction) {}
	}

	view, err := s.open(ctx, req.Scope, req.Viewport, callbacks)
	if err != nil {
		return res, err
	}
	defer view.close()

	res.Handled, err = view.cal.ClickCell(req.ResourceID, req.Hour, req.Half, req.Pointer.ToGrid())
	if err != nil {
		if errors.Is(err, grid.ErrResourceNotFound) {
			return res, failure.NotFound(err.Error()) // nolint:wrapcheck
		}

		return res, fmt.Errorf("failed to click cell: %w", err)
	}

	if menu, ok := view.cal.Menu(); ok {
		res.Menu = &dto.MenuResponse{}
		res.Menu.FromGrid(menu)

		return res, nil
	}

	if clicked != nil {
		intent := model.Intent{
			Type:       model.IntentSlotClick,
			ResourceID: clicked.ResourceID,
			Start:      clicked.Start,
			End:        clicked.End,
		}

		published := s.publish(ctx, s.stamp(&intent, req.Scope))
		s.metrics.Intent(model.IntentSlotClick, metrics.OutcomeCommitted)

		res.Intent = &dto.IntentResponse{}
		res.Intent.FromModel(intent, published)
	}

	return res, nil
}

// SlotAction picks a menu entry for a cell. Creating the booking itself is left to the consumers of the intent.
func (s *serviceImpl) SlotAction(ctx context.Context, req dto.SlotActionRequest) (res dto.IntentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SlotAction")
	defer scope.End()
	defer scope.TraceIfError(err)

	var chosen *grid.SlotAction

	view, err := s.open(ctx, req.Scope, dto.Viewport{}, grid.Callbacks{
		OnSlotAction: func(action grid.SlotAction) {
			chosen = &action
		},
	})
	if err != nil {
		return res, err
	}
	defer view.close()

	handled, err := view.cal.ClickCell(req.ResourceID, req.Hour, req.Half, grid.Point{})
	if err != nil {
		if errors.Is(err, grid.ErrResourceNotFound) {
			return res, failure.NotFound(err.Error()) // nolint:wrapcheck
		}

		return res, fmt.Errorf("failed to click cell: %w", err)
	}

	if !handled {
		return res, failure.Unprocessable("slot is not available") // nolint:wrapcheck
	}

	if err = view.cal.ChooseAction(grid.SlotActionType(req.Action)); err != nil {
		if errors.Is(err, grid.ErrUnknownAction) {
			return res, failure.BadRequest(err) // nolint:wrapcheck
		}

		return res, fmt.Errorf("failed to choose slot action: %w", err)
	}

	if chosen == nil {
		return res, nil
	}

	intent := model.Intent{
		Type:       model.IntentSlotAction,
		Action:     string(chosen.Type),
		ResourceID: chosen.ResourceID,
		Start:      chosen.Start,
		End:        chosen.End,
	}

	published := s.publish(ctx, s.stamp(&intent, req.Scope))
	s.metrics.Intent(model.IntentSlotAction, metrics.OutcomeCommitted)

	res.FromModel(intent, published)

	return res, nil
}

func pressFailure(err error) error {
	switch {
	case errors.Is(err, grid.ErrEventNotFound):
		return failure.NotFound(msgEventNotFound) // nolint:wrapcheck
	case errors.Is(err, grid.ErrNotRendered):
		return failure.Unprocessable(msgNotRendered) // nolint:wrapcheck
	case errors.Is(err, grid.ErrGestureActive):
		return failure.Conflict(err.Error()) // nolint:wrapcheck
	}

	return fmt.Errorf("failed to start gesture: %w", err)
}

// commit writes a proposed drop or resize to the booking store and drops the cached day.
func (s *serviceImpl) commit(ctx context.Context, scope dto.Scope, intent model.Intent) error {
	slot := bookingModel.Slot{
		StartAt: intent.Start,
		EndAt:   intent.End,
	}

	if intent.Type == model.IntentEventDrop {
		slot.MasterID = intent.ResourceID
	}

	err := s.bookings.Reschedule(ctx, scope.SalonID, intent.EventID, slot, scope.Actor)

	switch {
	case err == nil:
	case errors.Is(err, bookingRepo.ErrSlotTaken):
		return failure.Conflict(msgSlotTaken) // nolint:wrapcheck
	case errors.Is(err, bookingRepo.ErrNotFound):
		return failure.NotFound(msgEventNotFound) // nolint:wrapcheck
	default:
		log.Error().Err(err).Str("event", intent.EventID).Msg("failed to commit gesture")

		return fmt.Errorf("failed to commit gesture: %w", err)
	}

	day, _ := timezone.ParseDate(scope.Date)
	s.invalidateDay(ctx, scope.SalonID, day)

	return nil
}

// stamp fills the request identity of an intent.
func (s *serviceImpl) stamp(intent *model.Intent, scope dto.Scope) model.Intent {
	intent.ID = uuid.NewString()
	intent.SalonID = scope.SalonID
	intent.Actor = scope.Actor
	intent.EmittedAt = timezone.Now()

	return *intent
}

// publish sends the intent keyed by salon so one salon's intents stay ordered.
// A failed publish is logged; the change it describes is already committed.
func (s *serviceImpl) publish(ctx context.Context, intent model.Intent) bool {
	if !s.cfg.Kafka.Enable || s.kafka == nil {
		return false
	}

	message := kafka.Message{Key: intent.SalonID, Value: intent}

	if err := s.kafka.SendMessages(ctx, s.cfg.Kafka.IntentTopic, message); err != nil {
		log.Error().Err(err).Str("intent", intent.ID).Msg("failed to publish calendar intent")

		return false
	}

	return true
}
