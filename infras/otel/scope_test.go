package otel_test

import (
	"calgrid/config"
	"calgrid/infras/otel"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewWithoutEndpoint(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.Name = "calgrid-test"

	tracer := otel.New(cfg)

	ctx, scope := tracer.NewScope(context.Background(), "test", "test.span")
	assert.NotNil(t, ctx)

	scope.SetAttributes(map[string]any{
		"bool":   true,
		"string": "value",
		"int":    1,
		"int64":  int64(2),
		"float":  1.5,
		"slice":  []string{"a"},
		"other":  struct{}{},
	})
	scope.AddEvent("event")
	scope.TraceIfError(nil)
	scope.TraceIfError(errors.New("boom"))
	scope.End()

	assert.NoError(t, tracer.Shutdown(context.Background()))
}
