package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"calgrid/infras/otel"
	"calgrid/infras/postgres"
	"calgrid/internal/domains/booking/model"
	"calgrid/shared"
	"calgrid/shared/constant"
	"calgrid/shared/logger"
	gRepo "calgrid/shared/repository"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

var (
	ErrNotFound  = errors.New("booking not found")
	ErrSlotTaken = errors.New("slot overlaps another booking")
)

type Booking interface {
	// ListDay returns the salon's non-cancelled bookings starting on day, ordered by start.
	ListDay(ctx context.Context, salonID string, day time.Time) ([]model.Booking, error)
	// Reschedule moves or resizes a booking. It fails with ErrNotFound for unknown or
	// cancelled bookings and ErrSlotTaken when the new slot collides on the same master.
	Reschedule(ctx context.Context, salonID, id string, slot model.Slot, username string) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (r *repositoryImpl) ListDay(ctx context.Context, salonID string, day time.Time) ([]model.Booking, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.ListDay")
	defer scope.End()

	from := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)

	builder := r.Select().
		Where(sq.Eq{model.FieldSalonID: salonID}).
		Where(sq.GtOrEq{model.FieldStartAt: from}).
		Where(sq.Lt{model.FieldStartAt: from.AddDate(0, 0, 1)}).
		Where(sq.NotEq{model.FieldStatus: model.StatusCancelled}).
		OrderBy(model.FieldStartAt, model.FieldID)

	bookings, err := r.SelectAll(ctx, builder)
	if err != nil {
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	return bookings, nil
}

func (r *repositoryImpl) Reschedule(ctx context.Context, salonID, id string, slot model.Slot, username string) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.Reschedule")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterBySalon(salonID, id, model.TableName)

	tx, err := r.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				log.Error().Err(rbErr).Msg("failed to rollback reschedule")
			}
		}
	}()

	query, args, err := r.Select(model.FieldStatus).Where(filter.Sqlizer()).Suffix("FOR UPDATE").ToSql()
	if err != nil {
		return fmt.Errorf("failed to build lock query: %w", err)
	}

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var status string
	if err = tx.GetContext(ctx, &status, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}

		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to lock booking: %w", err)
	}

	if status == model.StatusCancelled {
		return ErrNotFound
	}

	if _, err = r.UpdateTx(ctx, tx, shared.TransformFields(slot, username), filter); err != nil {
		if isExclusionViolation(err) {
			return ErrSlotTaken
		}

		return fmt.Errorf("failed to reschedule booking: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit reschedule: %w", err)
	}

	return nil
}

func isExclusionViolation(err error) bool {
	var pqErr *pq.Error

	return errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeExclusion
}
