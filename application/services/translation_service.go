package services

import (
	"context"
	"encoding/json"
	"time"
	"unicode/utf16"

	"textanalysis/application/ports"
	apperrors "textanalysis/pkg/errors"
	"textanalysis/pkg/observability"

	"go.uber.org/zap"
)

// SourceLanguage is the fixed language translations start from
const SourceLanguage = "en"

// TranslationUnavailable is the error label of a failed translation
const TranslationUnavailable = "Translation service unavailable"

// TranslationFailure is reported in place of a translation when the API
// cannot produce one
type TranslationFailure struct {
	Error          string `json:"error"`
	Message        string `json:"message"`
	Original       string `json:"original"`
	TargetLanguage string `json:"targetLanguage"`
}

// TranslationResult holds exactly one of a translation or a failure
type TranslationResult struct {
	Translation *ports.Translation
	Failure     *TranslationFailure
}

// MarshalJSON renders whichever branch is set
func (r TranslationResult) MarshalJSON() ([]byte, error) {
	if r.Failure != nil {
		return json.Marshal(r.Failure)
	}
	return json.Marshal(r.Translation)
}

// TranslationService forwards text to the translation API
type TranslationService struct {
	translator ports.Translator
	maxLength  int
	logger     *zap.Logger
	metrics    *observability.Collector
}

// NewTranslationService creates a new translation service. Inputs longer
// than maxLength UTF-16 code units are truncated before they are sent.
func NewTranslationService(
	translator ports.Translator,
	maxLength int,
	logger *zap.Logger,
	metrics *observability.Collector,
) *TranslationService {
	return &TranslationService{
		translator: translator,
		maxLength:  maxLength,
		logger:     logger,
		metrics:    metrics,
	}
}

// Translate translates input into target. It never returns an error: API
// failures are reported in the result.
func (s *TranslationService) Translate(ctx context.Context, input, target string) TranslationResult {
	start := time.Now()
	translation, err := s.translator.Translate(ctx, truncate(input, s.maxLength), SourceLanguage, target)
	s.metrics.RecordExternalCall(s.translator.Name(), apperrors.Outcome(err), time.Since(start))

	if err != nil {
		s.logger.Warn("Translation failed",
			zap.String("api", s.translator.Name()),
			zap.String("target", target),
			zap.String("outcome", apperrors.Outcome(err)),
			zap.Error(err),
		)
		return TranslationResult{Failure: &TranslationFailure{
			Error:          TranslationUnavailable,
			Message:        apperrors.Describe(err),
			Original:       input,
			TargetLanguage: target,
		}}
	}

	return TranslationResult{Translation: translation}
}

// truncate keeps at most n UTF-16 code units of s without splitting a
// surrogate pair
func truncate(s string, n int) string {
	if n <= 0 {
		return s
	}
	units := 0
	for pos, r := range s {
		units += utf16.RuneLen(r)
		if units > n {
			return s[:pos]
		}
	}
	return s
}
