package di

import (
	"fmt"

	"textanalysis/application/ports"
	"textanalysis/application/services"
	domainconfig "textanalysis/domain/config"
	"textanalysis/infrastructure/config"
	"textanalysis/infrastructure/external"
	"textanalysis/interfaces/http/rest"
	"textanalysis/interfaces/http/rest/handlers"
	apperrors "textanalysis/pkg/errors"
	"textanalysis/pkg/logging"
	"textanalysis/pkg/observability"

	"go.uber.org/zap"
)

// MetricsNamespace prefixes every exported metric
const MetricsNamespace = "textanalysis"

// ServiceName identifies the service in traces
const ServiceName = "textanalysis"

// ProvideLogger creates a new logger instance. The cleanup flushes it and
// closes the log file if one is configured.
func ProvideLogger(cfg *config.Config) (*zap.Logger, func(), error) {
	return logging.New(logging.Options{
		Production: cfg.IsProduction(),
		Level:      cfg.LogLevel,
		FilePath:   cfg.LogFile,
	})
}

// ProvideDomainConfig loads the lexicons, applying LEXICON_FILE if set
func ProvideDomainConfig(cfg *config.Config) (*domainconfig.DomainConfig, error) {
	domainCfg, err := domainconfig.LoadDomainConfig(cfg.LexiconFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load domain config: %w", err)
	}
	return domainCfg, nil
}

// ProvideMetrics creates the Prometheus collector
func ProvideMetrics() *observability.Collector {
	return observability.NewCollector(MetricsNamespace)
}

// ProvideTracer enables X-Ray tracing when running inside Lambda, where the
// runtime supplies the facade segment that subsegments attach to
func ProvideTracer(cfg *config.Config) *observability.Tracer {
	return observability.NewTracer(ServiceName, cfg.IsLambda)
}

// ProvideErrorHandler creates the HTTP error handler
func ProvideErrorHandler(cfg *config.Config, logger *zap.Logger) *apperrors.ErrorHandler {
	return apperrors.NewErrorHandler(logger, !cfg.IsProduction())
}

// ProvideTranslator creates the MyMemory client
func ProvideTranslator(cfg *config.Config, logger *zap.Logger, tracer *observability.Tracer) ports.Translator {
	return external.NewMyMemoryClient(cfg.TranslateAPIURL, cfg.APITimeout(), logger, tracer)
}

// ProvideSentimentProvider returns the external sentiment API, or nil when
// the local scorer is selected.
func ProvideSentimentProvider(
	cfg *config.Config,
	logger *zap.Logger,
	tracer *observability.Tracer,
) ports.SentimentProvider {
	if cfg.SentimentProvider != config.SentimentProviderAPINinjas {
		return nil
	}
	return external.NewAPINinjasClient(cfg.SentimentAPIURL, cfg.SentimentAPIKey, cfg.APITimeout(), logger, tracer)
}

// ProvideTextService creates the text service
func ProvideTextService(domainCfg *domainconfig.DomainConfig, logger *zap.Logger) *services.TextService {
	return services.NewTextService(domainCfg, logger)
}

// ProvideSentimentService creates the sentiment service and logs which
// variant is active
func ProvideSentimentService(
	domainCfg *domainconfig.DomainConfig,
	provider ports.SentimentProvider,
	cfg *config.Config,
	logger *zap.Logger,
	metrics *observability.Collector,
) *services.SentimentService {
	svc := services.NewSentimentService(
		domainCfg.Lexicon(),
		provider,
		services.SentimentOptions{
			Latency: cfg.SentimentLatency(),
			Timeout: cfg.APITimeout(),
		},
		logger,
		metrics,
	)

	logger.Info("Sentiment analysis configured",
		zap.String("variant", svc.Variant()),
		zap.Duration("timeout", cfg.APITimeout()),
	)

	return svc
}

// ProvideTranslationService creates the translation service
func ProvideTranslationService(
	translator ports.Translator,
	domainCfg *domainconfig.DomainConfig,
	logger *zap.Logger,
	metrics *observability.Collector,
) *services.TranslationService {
	return services.NewTranslationService(translator, domainCfg.MaxTranslationLength, logger, metrics)
}

// ProvideTextHandler creates the text handler
func ProvideTextHandler(
	svc *services.TextService,
	errorHandler *apperrors.ErrorHandler,
	cfg *config.Config,
	logger *zap.Logger,
) *handlers.TextHandler {
	return handlers.NewTextHandler(svc, errorHandler, cfg.MaxBodyBytes, logger)
}

// ProvideSentimentHandler creates the sentiment handler
func ProvideSentimentHandler(
	svc *services.SentimentService,
	errorHandler *apperrors.ErrorHandler,
	cfg *config.Config,
	logger *zap.Logger,
) *handlers.SentimentHandler {
	return handlers.NewSentimentHandler(svc, errorHandler, cfg.MaxBodyBytes, logger)
}

// ProvideTranslationHandler creates the translation handler
func ProvideTranslationHandler(
	svc *services.TranslationService,
	errorHandler *apperrors.ErrorHandler,
	cfg *config.Config,
	logger *zap.Logger,
) *handlers.TranslationHandler {
	return handlers.NewTranslationHandler(svc, errorHandler, cfg.MaxBodyBytes, logger)
}

// ProvideRouterOptions maps configuration onto router options
func ProvideRouterOptions(cfg *config.Config) rest.Options {
	return rest.Options{
		EnableCORS:     cfg.EnableCORS,
		AllowedOrigins: cfg.CORSAllowedOrigins,
		EnableMetrics:  cfg.EnableMetrics,
		StaticDir:      cfg.StaticDir,
	}
}
