package dto

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

const (
	FilterOperatorEq        = "eq"
	FilterOperatorLike      = "like"
	FilterOperatorIn        = "in"
	FilterOperatorNotEq     = "not_eq"
	FilterOperatorLess      = "less"
	FilterOperatorLessEq    = "less_eq"
	FilterOperatorGreater   = "greater"
	FilterOperatorGreaterEq = "greater_eq"
	FilterIsNotNull         = "is_not_null"
	FilterIsNull            = "is_null"
)

const (
	FilterGroupOperatorAnd = "AND"
	FilterGroupOperatorOr  = "OR"
)

type Filter struct {
	Field    string
	Value    any
	Operator string `validate:"required,oneof=eq like in not_eq less less_eq greater greater_eq is_null is_not_null"`
	Table    string
}

func (f Filter) column() string {
	if f.Table != "" {
		return fmt.Sprintf("%s.%s", f.Table, f.Field)
	}

	return f.Field
}

// Sqlizer renders the filter as a squirrel predicate. Unknown operators yield nil.
func (f Filter) Sqlizer() sq.Sqlizer {
	column := f.column()

	switch f.Operator {
	case FilterOperatorEq, FilterOperatorIn:
		return sq.Eq{column: f.Value}
	case FilterOperatorNotEq:
		return sq.NotEq{column: f.Value}
	case FilterOperatorLike:
		return sq.ILike{column: fmt.Sprintf("%%%v%%", f.Value)}
	case FilterOperatorLess:
		return sq.Lt{column: f.Value}
	case FilterOperatorLessEq:
		return sq.LtOrEq{column: f.Value}
	case FilterOperatorGreater:
		return sq.Gt{column: f.Value}
	case FilterOperatorGreaterEq:
		return sq.GtOrEq{column: f.Value}
	case FilterIsNull:
		return sq.Eq{column: nil}
	case FilterIsNotNull:
		return sq.NotEq{column: nil}
	default:
		return nil
	}
}

// FilterGroup joins Filter and nested FilterGroup values with Operator (AND by default).
type FilterGroup struct {
	Filters  []any
	Operator string
}

func (g FilterGroup) Sqlizer() sq.Sqlizer {
	parts := make([]sq.Sqlizer, 0, len(g.Filters))

	for _, filter := range g.Filters {
		var part sq.Sqlizer

		switch fill := filter.(type) {
		case Filter:
			part = fill.Sqlizer()
		case FilterGroup:
			part = fill.Sqlizer()
		}

		if part != nil {
			parts = append(parts, part)
		}
	}

	if len(parts) == 0 {
		return nil
	}

	if g.Operator == FilterGroupOperatorOr {
		return sq.Or(parts)
	}

	return sq.And(parts)
}

func (g FilterGroup) Empty() bool {
	return g.Sqlizer() == nil
}
