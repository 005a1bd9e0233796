package external

import (
	"bytes"
	"context"
	"encoding/json"
	"net/url"
	"strconv"
	"time"

	"textanalysis/application/ports"
	apperrors "textanalysis/pkg/errors"
	"textanalysis/pkg/observability"

	"go.uber.org/zap"
)

// MyMemoryService is the name used in logs and metrics
const MyMemoryService = "mymemory"

// MyMemoryClient implements ports.Translator against the MyMemory API
type MyMemoryClient struct {
	api jsonClient
}

// NewMyMemoryClient creates a new MyMemory client
func NewMyMemoryClient(
	baseURL string,
	timeout time.Duration,
	logger *zap.Logger,
	tracer *observability.Tracer,
) *MyMemoryClient {
	return &MyMemoryClient{
		api: newJSONClient(MyMemoryService, baseURL, timeout, logger, tracer),
	}
}

// Name implements ports.Translator
func (c *MyMemoryClient) Name() string {
	return MyMemoryService
}

type myMemoryResponse struct {
	ResponseData struct {
		TranslatedText string          `json:"translatedText"`
		Match          json.RawMessage `json:"match"`
	} `json:"responseData"`
	ResponseStatus responseStatus `json:"responseStatus"`
}

// responseStatus accepts both 200 and "200"; the API uses either form
type responseStatus int

func (s *responseStatus) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	n, err := strconv.Atoi(string(data))
	if err != nil {
		// Non-numeric statuses are treated as failures, not decode errors.
		*s = 0
		return nil
	}
	*s = responseStatus(n)
	return nil
}

// Translate implements ports.Translator. Only a body reporting
// responseStatus 200 counts as success.
func (c *MyMemoryClient) Translate(ctx context.Context, input, source, target string) (*ports.Translation, error) {
	query := url.Values{}
	query.Set("q", input)
	query.Set("langpair", source+"|"+target)

	var body myMemoryResponse
	if err := c.api.getJSON(ctx, query, nil, &body); err != nil {
		return nil, err
	}

	if body.ResponseStatus != 200 {
		return nil, apperrors.NewExternalError(MyMemoryService, "Translation failed")
	}

	match := body.ResponseData.Match
	if string(match) == "null" {
		match = nil
	}

	return &ports.Translation{
		TranslatedText: body.ResponseData.TranslatedText,
		Source:         source,
		Target:         target,
		Match:          match,
		APISource:      MyMemoryService,
	}, nil
}
