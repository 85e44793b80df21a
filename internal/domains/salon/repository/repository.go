package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"calgrid/infras/otel"
	"calgrid/infras/postgres"
	"calgrid/internal/domains/salon/model"
	gDto "calgrid/shared/dto"
	gRepo "calgrid/shared/repository"
	"context"
)

type Salon interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Salon, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Salon]
}

func New(db *postgres.Connection, otel otel.Otel) Salon {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Salon](model.EntityName, model.TableName, db, otel),
	}
}
