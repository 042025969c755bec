package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"frontdesk/infras/otel"
	"frontdesk/infras/postgres"
	"frontdesk/internal/domains/sale/model"
	gDto "frontdesk/shared/dto"
	gRepo "frontdesk/shared/repository"
)

// DailySale deliberately exposes no Update or Delete; sales are append-only.
type DailySale interface {
	Insert(ctx context.Context, model model.DailySale) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.DailySale, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.DailySale, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.DailySale]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) DailySale {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.DailySale](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
