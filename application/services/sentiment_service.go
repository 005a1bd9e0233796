package services

import (
	"context"
	"time"

	"textanalysis/application/ports"
	"textanalysis/domain/config"
	"textanalysis/domain/text"
	apperrors "textanalysis/pkg/errors"
	"textanalysis/pkg/fallback"
	"textanalysis/pkg/observability"

	"go.uber.org/zap"
)

// SentimentOptions tunes the sentiment service
type SentimentOptions struct {
	// Latency is the artificial delay of the local scorer; zero disables it
	Latency time.Duration
	// Timeout bounds one call to the provider
	Timeout time.Duration
}

// SentimentService scores text either locally or through an external
// provider with the local scorer as fallback. The variant is fixed at
// construction.
type SentimentService struct {
	lexicon  config.Lexicon
	provider ports.SentimentProvider
	opts     SentimentOptions
	logger   *zap.Logger
	metrics  *observability.Collector
}

// NewSentimentService creates a new sentiment service. A nil provider
// selects the local variant.
func NewSentimentService(
	lexicon config.Lexicon,
	provider ports.SentimentProvider,
	opts SentimentOptions,
	logger *zap.Logger,
	metrics *observability.Collector,
) *SentimentService {
	return &SentimentService{
		lexicon:  lexicon,
		provider: provider,
		opts:     opts,
		logger:   logger,
		metrics:  metrics,
	}
}

// Variant names the active scoring strategy
func (s *SentimentService) Variant() string {
	if s.provider == nil {
		return text.SourceLocal
	}
	return s.provider.Name()
}

// Analyze scores input. The API variant never fails because of the provider;
// only cancellation of ctx during the local delay produces an error.
func (s *SentimentService) Analyze(ctx context.Context, input string) (text.SentimentResult, error) {
	if s.provider == nil {
		result, err := s.analyzeLocal(ctx, input)
		if err != nil {
			return text.SentimentResult{}, err
		}
		s.metrics.RecordSentiment(result.Source)
		return result, nil
	}

	res := fallback.Run(ctx, s.opts.Timeout, func(ctx context.Context) (text.SentimentResult, error) {
		return s.provider.Analyze(ctx, input)
	}, func() text.SentimentResult {
		return text.AnalyzeLocalSentiment(input, s.lexicon)
	})

	s.metrics.RecordExternalCall(s.provider.Name(), apperrors.Outcome(res.Err), res.Duration)
	s.metrics.RecordSentiment(res.Value.Source)

	if !res.FromPrimary {
		s.logger.Warn("Sentiment API failed, using local analysis",
			zap.String("provider", s.provider.Name()),
			zap.String("outcome", apperrors.Outcome(res.Err)),
			zap.Duration("duration", res.Duration),
			zap.Error(res.Err),
		)
	}

	return res.Value, nil
}

// analyzeLocal waits out the configured latency, then scores input locally
func (s *SentimentService) analyzeLocal(ctx context.Context, input string) (text.SentimentResult, error) {
	if s.opts.Latency > 0 {
		timer := time.NewTimer(s.opts.Latency)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return text.SentimentResult{}, ctx.Err()
		case <-timer.C:
		}
	}
	return text.AnalyzeLocalSentiment(input, s.lexicon), nil
}
