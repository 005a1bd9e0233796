// Package external holds the HTTP clients for the third-party APIs the
// service calls: MyMemory for translation and API-Ninjas for sentiment.
package external

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"textanalysis/pkg/common"
	apperrors "textanalysis/pkg/errors"
	"textanalysis/pkg/observability"

	"go.uber.org/zap"
)

// maxResponseBytes caps how much of an upstream body is read
const maxResponseBytes = 1 << 20

const userAgent = "textanalysis/1.0"

// jsonClient performs single-attempt GET requests against one API and
// decodes JSON responses.
type jsonClient struct {
	service string
	baseURL string
	client  *http.Client
	tracer  *observability.Tracer
	logger  *zap.Logger
}

func newJSONClient(
	service, baseURL string,
	timeout time.Duration,
	logger *zap.Logger,
	tracer *observability.Tracer,
) jsonClient {
	if logger == nil {
		logger = zap.NewNop()
	}
	return jsonClient{
		service: service,
		baseURL: baseURL,
		client:  tracer.HTTPClient(&http.Client{Timeout: timeout}),
		tracer:  tracer,
		logger:  logger.With(zap.String("service", service)),
	}
}

// getJSON issues GET baseURL?query and decodes a 2xx body into out. Transport
// failures, non-2xx statuses and undecodable bodies come back as AppErrors.
// The call is recorded as a subsegment named after the service when tracing
// is enabled.
func (c jsonClient) getJSON(ctx context.Context, query url.Values, header http.Header, out interface{}) error {
	return c.tracer.TraceFunction(ctx, c.service, func(ctx context.Context) error {
		return c.do(ctx, query, header, out)
	})
}

func (c jsonClient) do(ctx context.Context, query url.Values, header http.Header, out interface{}) error {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return apperrors.NewInternalError(fmt.Sprintf("invalid %s URL", c.service)).WithCause(err)
	}
	u.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return apperrors.NewInternalError("failed to create request").WithCause(err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	for key, values := range header {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}
	if requestID, ok := common.GetRequestID(ctx); ok {
		req.Header.Set("X-Request-ID", requestID)
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Debug("Request failed", zap.Error(err), zap.Duration("duration", time.Since(start)))
		return apperrors.ClassifyTransportError(c.service, err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return apperrors.ClassifyTransportError(c.service, err)
	}

	c.tracer.AddAnnotation(ctx, "status_code", strconv.Itoa(resp.StatusCode))
	c.logger.Debug("Request completed",
		zap.Int("status", resp.StatusCode),
		zap.Int("bytes", len(data)),
		zap.Duration("duration", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return apperrors.NewExternalError(c.service,
			fmt.Sprintf("Request failed with status code %d", resp.StatusCode))
	}

	if err := json.Unmarshal(data, out); err != nil {
		return apperrors.NewExternalError(c.service, "invalid response body").WithCause(err)
	}

	return nil
}
