package external

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"textanalysis/domain/text"
	"textanalysis/pkg/observability"

	"go.uber.org/zap"
)

// APINinjasService is the name used in logs and metrics
const APINinjasService = "apininjas"

// APINinjasClient implements ports.SentimentProvider against the
// API-Ninjas sentiment endpoint
type APINinjasClient struct {
	api    jsonClient
	apiKey string
}

// NewAPINinjasClient creates a new API-Ninjas client
func NewAPINinjasClient(
	baseURL, apiKey string,
	timeout time.Duration,
	logger *zap.Logger,
	tracer *observability.Tracer,
) *APINinjasClient {
	return &APINinjasClient{
		api:    newJSONClient(APINinjasService, baseURL, timeout, logger, tracer),
		apiKey: apiKey,
	}
}

// Name implements ports.SentimentProvider
func (c *APINinjasClient) Name() string {
	return APINinjasService
}

type apiNinjasResponse struct {
	Score     float64 `json:"score"`
	Sentiment string  `json:"sentiment"`
}

// Analyze implements ports.SentimentProvider
func (c *APINinjasClient) Analyze(ctx context.Context, input string) (text.SentimentResult, error) {
	query := url.Values{}
	query.Set("text", input)

	header := http.Header{}
	header.Set("X-Api-Key", c.apiKey)

	var body apiNinjasResponse
	if err := c.api.getJSON(ctx, query, header, &body); err != nil {
		return text.SentimentResult{}, err
	}

	return text.SentimentResult{
		Score:     text.Clamp(body.Score, -1, 1),
		Sentiment: normalizeLabel(body.Sentiment),
		Source:    text.SourceAPI,
	}, nil
}

// normalizeLabel maps labels like POSITIVE or WEAK_NEGATIVE onto the three
// service labels.
func normalizeLabel(label string) string {
	label = strings.ToLower(label)
	switch {
	case strings.Contains(label, text.SentimentNegative):
		return text.SentimentNegative
	case strings.Contains(label, text.SentimentPositive):
		return text.SentimentPositive
	default:
		return text.SentimentNeutral
	}
}
