package common_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"textanalysis/pkg/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Text string `json:"text"`
}

func TestParseJSONBody(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		maxBytes int64
		wantErr  bool
		wantText string
	}{
		{name: "valid", body: `{"text":"hi"}`, wantText: "hi"},
		{name: "empty body", body: ``},
		{name: "unknown fields ignored", body: `{"text":"hi","extra":1}`, wantText: "hi"},
		{name: "malformed", body: `{"text":`, wantErr: true},
		{name: "wrong type", body: `{"text":123}`, wantErr: true},
		{name: "too large", body: `{"text":"` + strings.Repeat("a", 64) + `"}`, maxBytes: 16, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			var p payload
			err := common.ParseJSONBody(rec, req, &p, tt.maxBytes)
			if tt.wantErr {
				assert.ErrorIs(t, err, common.ErrInvalidBody)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantText, p.Text)
		})
	}
}

func TestRespondJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	require.NoError(t, common.RespondJSON(rec, http.StatusOK, map[string]string{"status": "ok"}))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestExtractRequestID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Equal(t, "", common.ExtractRequestID(req))

	req.Header.Set("X-Amzn-Trace-Id", "Root=1-abc")
	assert.Equal(t, "Root=1-abc", common.ExtractRequestID(req))

	req.Header.Set("X-Request-ID", "req-1")
	assert.Equal(t, "req-1", common.ExtractRequestID(req))
}

func TestEnrichContext(t *testing.T) {
	ctx := common.EnrichContext(context.Background(), "req-42")

	id, ok := common.GetRequestID(ctx)
	assert.True(t, ok)
	assert.Equal(t, "req-42", id)

	start, ok := common.GetStartTime(ctx)
	assert.True(t, ok)
	assert.WithinDuration(t, time.Now(), start, time.Second)
	assert.GreaterOrEqual(t, common.GetElapsedTime(ctx), time.Duration(0))

	assert.Equal(t, time.Duration(0), common.GetElapsedTime(context.Background()))
}
