package observability_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"textanalysis/pkg/observability"

	"github.com/stretchr/testify/assert"
)

type markerKey struct{}

func TestTracer_Enabled(t *testing.T) {
	var nilTracer *observability.Tracer

	assert.True(t, observability.NewTracer("textanalysis", true).Enabled())
	assert.False(t, observability.NewTracer("textanalysis", false).Enabled())
	assert.False(t, nilTracer.Enabled())
}

func TestTracer_DisabledPassesThrough(t *testing.T) {
	tracer := observability.NewTracer("textanalysis", false)
	ctx := context.WithValue(context.Background(), markerKey{}, "marker")
	boom := errors.New("boom")

	var seen context.Context
	err := tracer.TraceFunction(ctx, "mymemory", func(ctx context.Context) error {
		seen = ctx
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, ctx, seen)

	client := &http.Client{}
	assert.Same(t, client, tracer.HTTPClient(client))

	assert.NotPanics(t, func() { tracer.AddAnnotation(ctx, "k", "v") })
}

func TestTracer_NilIsNoop(t *testing.T) {
	var tracer *observability.Tracer
	called := false

	err := tracer.TraceFunction(context.Background(), "apininjas", func(context.Context) error {
		called = true
		return nil
	})

	assert.NoError(t, err)
	assert.True(t, called)
}
