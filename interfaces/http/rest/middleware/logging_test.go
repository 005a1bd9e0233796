package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"textanalysis/interfaces/http/rest/middleware"
	"textanalysis/pkg/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogger_DurationFromContextStartTime(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	h := middleware.Logger(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	started := time.Now().Add(-2 * time.Second)
	ctx := common.WithStartTime(common.WithRequestID(req.Context(), "req-1"), started)
	h.ServeHTTP(httptest.NewRecorder(), req.WithContext(ctx))

	entries := logs.FilterMessage("HTTP Request").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, int64(http.StatusTeapot), fields["status"])
	assert.Equal(t, "req-1", fields["requestID"])
	assert.GreaterOrEqual(t, fields["duration"], 2*time.Second)
}

func TestLogger_WithoutRequestIDMiddleware(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	h := middleware.Logger(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, ok := common.GetStartTime(r.Context())
		assert.True(t, ok)
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	entries := logs.All()
	require.Len(t, entries, 1)
	d, ok := entries[0].ContextMap()["duration"].(time.Duration)
	require.True(t, ok)
	assert.Less(t, d, time.Second)
}
