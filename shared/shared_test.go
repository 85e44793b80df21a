package shared_test

import (
	"calgrid/shared"
	"calgrid/shared/cache/mocks"
	"calgrid/shared/constant"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func boolPtr(b bool) *bool {
	return &b
}

func TestConvertStringToBool(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *bool
	}{
		{name: "empty string returns nil", input: "", expected: nil},
		{name: "valid true string", input: "true", expected: boolPtr(true)},
		{name: "valid 0 string", input: "0", expected: boolPtr(false)},
		{name: "invalid string returns nil", input: "maybe", expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.ConvertStringToBool(tt.input))
		})
	}
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "calendar:day:s1:2024-03-11", shared.BuildCacheKey("calendar:day", "s1", "2024-03-11"))
	assert.Equal(t, "calendar:day:s1", shared.BuildCacheKey("calendar:day", "", "s1"))
	assert.Equal(t, "calendar:day", shared.BuildCacheKey("calendar:day"))
}

func TestInvalidateCaches(t *testing.T) {
	ctrl := gomock.NewController(t)
	redisCache := mocks.NewMockRedisCache(ctrl)

	redisCache.EXPECT().Clear(gomock.Any(), "calendar:day:s1*").Return(nil)
	redisCache.EXPECT().Clear(gomock.Any(), "calendar:event:*").Return(errors.New("redis down"))

	shared.InvalidateCaches(context.Background(), redisCache, "calendar:day:s1", "calendar:event:*")
}

func TestTransformFields(t *testing.T) {
	type update struct {
		StartAt  time.Time `db:"start_at"`
		MasterID string    `db:"master_id"`
		Note     string    `db:"note"`
		Ignored  string
	}

	start := time.Date(2024, 3, 11, 10, 0, 0, 0, time.UTC)
	fields := shared.TransformFields(update{StartAt: start, MasterID: "m1", Ignored: "x"}, "tester")

	assert.Equal(t, start, fields["start_at"])
	assert.Equal(t, "m1", fields["master_id"])
	assert.NotContains(t, fields, "note")
	assert.Equal(t, "tester", fields[constant.FieldModifiedBy])
	assert.Contains(t, fields, constant.FieldModifiedAt)
	assert.Len(t, fields, 4)
}

func TestFilterBySalon(t *testing.T) {
	sql, args, err := shared.FilterBySalon("s1", "b1", "bookings").Sqlizer().ToSql()

	assert.NoError(t, err)
	assert.Equal(t, "(bookings.salon_id = ? AND bookings.id = ?)", sql)
	assert.Equal(t, []any{"s1", "b1"}, args)
}
