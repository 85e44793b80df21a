package repository

import (
	"calgrid/infras/otel"
	"calgrid/infras/postgres"
	"calgrid/shared/constant"
	"calgrid/shared/dto"
	"calgrid/shared/logger"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"reflect"
	"slices"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

var (
	ErrRequiredFilter = errors.New("required filter")
	ErrEmptyUpdate    = errors.New("no fields to update")
)

// Builder is the statement builder shared by every repository; postgres wants $n placeholders.
var Builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// Repository is the generic read/update helper for one table. Columns are taken from
// the `db` tags of T, including embedded structs.
type Repository[T any] struct {
	db      *postgres.Connection
	otel    otel.Otel
	table   string
	entity  string
	columns []string
}

func NewRepository[T any](entityName, tableName string, dbConnection *postgres.Connection, otl otel.Otel) Repository[T] {
	var zero T

	return Repository[T]{
		db:      dbConnection,
		otel:    otl,
		table:   tableName,
		entity:  entityName,
		columns: getColumns(reflect.TypeOf(zero)),
	}
}

func (repo *Repository[T]) Table() string {
	return repo.table
}

func (repo *Repository[T]) spanName(op string) string {
	return fmt.Sprintf("%s.%s.%s", constant.OtelRepositoryScopeName, repo.entity, op)
}

// Select starts a SELECT over the model columns, optionally narrowed to columns.
func (repo *Repository[T]) Select(columns ...string) sq.SelectBuilder {
	selected := repo.columns
	if len(columns) > 0 {
		selected = slices.DeleteFunc(slices.Clone(repo.columns), func(col string) bool {
			return !slices.Contains(columns, col)
		})
	}

	return Builder.Select(selected...).From(repo.table)
}

// Get returns the first row matching filter, or the zero T when nothing matches.
func (repo *Repository[T]) Get(ctx context.Context, filter dto.FilterGroup, columns ...string) (T, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("Get"))
	defer scope.End()

	var model T

	where := filter.Sqlizer()
	if where == nil {
		return model, ErrRequiredFilter
	}

	query, args, err := repo.Select(columns...).Where(where).Limit(1).ToSql()
	if err != nil {
		return model, fmt.Errorf("failed to build get query (%s): %w", repo.entity, err)
	}

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	err = repo.db.Read.GetContext(ctx, &model, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return model, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return model, fmt.Errorf("failed to get data (%s): %w", repo.entity, err)
	}

	return model, nil
}

// GetAll returns every row matching filter ordered by orderBy (raw ORDER BY terms).
func (repo *Repository[T]) GetAll(ctx context.Context, filter dto.FilterGroup, orderBy ...string) ([]T, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("GetAll"))
	defer scope.End()

	builder := repo.Select().OrderBy(orderBy...)
	if where := filter.Sqlizer(); where != nil {
		builder = builder.Where(where)
	}

	return repo.SelectAll(ctx, builder)
}

// SelectAll runs a prepared builder and scans every row into T.
func (repo *Repository[T]) SelectAll(ctx context.Context, builder sq.SelectBuilder) ([]T, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("SelectAll"))
	defer scope.End()

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select query (%s): %w", repo.entity, err)
	}

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	models := []T{}

	if err = repo.db.Read.SelectContext(ctx, &models, query, args...); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return models, fmt.Errorf("failed to get all data (%s): %w", repo.entity, err)
	}

	return models, nil
}

func (repo *Repository[T]) update(ctx context.Context, exec execer, fields map[string]any, filter dto.FilterGroup) (int64, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("update"))
	defer scope.End()

	if len(fields) == 0 {
		return 0, ErrEmptyUpdate
	}

	where := filter.Sqlizer()
	if where == nil {
		return 0, ErrRequiredFilter
	}

	query, args, err := Builder.Update(repo.table).SetMap(fields).Where(where).ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build update query (%s): %w", repo.entity, err)
	}

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	result, err := exec.ExecContext(ctx, query, args...)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to update data (%s): %w", repo.entity, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows (%s): %w", repo.entity, err)
	}

	return affected, nil
}

func (repo *Repository[T]) UpdateTx(ctx context.Context, sqltx *sqlx.Tx, fields map[string]any, filter dto.FilterGroup) (int64, error) {
	return repo.update(ctx, sqltx, fields, filter)
}

func getColumns(reflectType reflect.Type) (columns []string) {
	if reflectType == nil || reflectType.Kind() != reflect.Struct {
		return nil
	}

	for i := range reflectType.NumField() {
		field := reflectType.Field(i)

		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			columns = append(columns, getColumns(field.Type)...)

			continue
		}

		if dbTag := field.Tag.Get("db"); dbTag != "" && dbTag != "-" {
			columns = append(columns, dbTag)
		}
	}

	return columns
}
