package repository

import (
	"calgrid/infras/otel/mocks"
	"calgrid/shared/dto"
	"calgrid/shared/model"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	ID    string `db:"id"`
	Name  string `db:"name"`
	Skip  string `db:"-"`
	Plain string
	model.Metadata
}

func TestGetColumns(t *testing.T) {
	repo := NewRepository[sample]("sample", "samples", nil, mocks.NewOtel())

	assert.Equal(t, []string{"id", "name", "created_at", "modified_at", "created_by", "modified_by"}, repo.columns)
	assert.Equal(t, "samples", repo.Table())
}

func TestSelect_NarrowsColumns(t *testing.T) {
	repo := NewRepository[sample]("sample", "samples", nil, mocks.NewOtel())

	query, _, err := repo.Select("name", "id").ToSql()
	require.NoError(t, err)
	assert.Equal(t, "SELECT id, name FROM samples", query)
}

func TestGuards(t *testing.T) {
	repo := NewRepository[sample]("sample", "samples", nil, mocks.NewOtel())
	ctx := context.Background()

	_, err := repo.Get(ctx, dto.FilterGroup{})
	assert.ErrorIs(t, err, ErrRequiredFilter)

	_, err = repo.UpdateTx(ctx, nil, nil, dto.FilterGroup{})
	assert.ErrorIs(t, err, ErrEmptyUpdate)

	_, err = repo.UpdateTx(ctx, nil, map[string]any{"name": "x"}, dto.FilterGroup{})
	assert.ErrorIs(t, err, ErrRequiredFilter)
}
