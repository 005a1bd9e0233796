package ports

import (
	"context"
	"encoding/json"

	"textanalysis/domain/text"
)

// Translation is a successful translation returned by a Translator
type Translation struct {
	TranslatedText string          `json:"translatedText"`
	Source         string          `json:"source"`
	Target         string          `json:"target"`
	Match          json.RawMessage `json:"match,omitempty"`
	APISource      string          `json:"apiSource"`
}

// Translator defines the interface for an outbound translation API
// This is a port in hexagonal architecture - the services don't know about the implementation
type Translator interface {
	// Translate translates input from the source to the target language
	Translate(ctx context.Context, input, source, target string) (*Translation, error)

	// Name identifies the API in logs and metrics
	Name() string
}

// SentimentProvider defines the interface for an outbound sentiment API
type SentimentProvider interface {
	// Analyze scores input; Source of the result is set by the provider
	Analyze(ctx context.Context, input string) (text.SentimentResult, error)

	// Name identifies the API in logs and metrics
	Name() string
}
