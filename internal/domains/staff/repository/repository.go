package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"calgrid/infras/otel"
	"calgrid/infras/postgres"
	"calgrid/internal/domains/staff/model"
	"calgrid/shared/constant"
	gDto "calgrid/shared/dto"
	gRepo "calgrid/shared/repository"
	"context"
	"fmt"
)

type Staff interface {
	// ListActive returns the salon's active masters in column order.
	ListActive(ctx context.Context, salonID string) ([]model.Master, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Master]
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Staff {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Master](model.EntityName, model.TableName, db, otel),
		otel:       otel,
	}
}

func (r *repositoryImpl) ListActive(ctx context.Context, salonID string) ([]model.Master, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".master.ListActive")
	defer scope.End()

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: model.FieldSalonID, Value: salonID, Operator: gDto.FilterOperatorEq},
			gDto.Filter{Field: model.FieldActive, Value: true, Operator: gDto.FilterOperatorEq},
		},
	}

	masters, err := r.GetAll(ctx, filter, model.FieldSortOrder, model.FieldName, model.FieldID)
	if err != nil {
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to list masters: %w", err)
	}

	return masters, nil
}
