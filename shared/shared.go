package shared

import (
	"calgrid/shared/cache"
	"calgrid/shared/constant"
	"calgrid/shared/dto"
	"calgrid/shared/timezone"
	"context"
	"reflect"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

const cacheKeySeparator = ":"

func ConvertStringToBool(value string) *bool {
	if value == "" {
		return nil
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		log.Error().Err(err).Msg("failed to convert string to bool")

		return nil
	}

	return &boolValue
}

// BuildCacheKey joins prefix and parts with ':' skipping empty parts.
func BuildCacheKey(prefix string, parts ...string) string {
	key := []string{prefix}

	for _, part := range parts {
		if part != constant.Empty {
			key = append(key, part)
		}
	}

	return strings.Join(key, cacheKeySeparator)
}

// InvalidateCaches clears every key under each prefix. Failures are logged, not returned.
func InvalidateCaches(ctx context.Context, redisCache cache.RedisCache, prefixes ...string) {
	for _, prefix := range prefixes {
		pattern := prefix
		if !strings.HasSuffix(pattern, constant.Asterix) {
			pattern += constant.Asterix
		}

		if err := redisCache.Clear(ctx, pattern); err != nil {
			log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate cache")
		}
	}
}

// TransformFields converts the non-zero `db` tagged fields of a struct into an update map.
func TransformFields(data any, username string) map[string]any {
	val := reflect.ValueOf(data)
	typ := reflect.TypeOf(data)

	updatedFields := make(map[string]any)

	for index := range val.NumField() {
		field := val.Field(index)
		if field.IsZero() {
			continue
		}

		fieldName := typ.Field(index).Tag.Get("db")
		if fieldName == "" {
			continue
		}

		updatedFields[fieldName] = field.Interface()
	}

	updatedFields[constant.FieldModifiedAt] = timezone.Now()
	updatedFields[constant.FieldModifiedBy] = username

	return updatedFields
}

func FilterByID(id, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

// FilterBySalon scopes a lookup by id to one salon.
func FilterBySalon(salonID, id, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{Field: constant.FieldSalonID, Value: salonID, Operator: dto.FilterOperatorEq, Table: table},
			dto.Filter{Field: constant.FieldID, Value: id, Operator: dto.FilterOperatorEq, Table: table},
		},
	}
}
