package di

import (
	"textanalysis/application/services"
	"textanalysis/infrastructure/config"
	"textanalysis/interfaces/http/rest"
	"textanalysis/pkg/observability"

	"go.uber.org/zap"
)

// Container holds all application dependencies
type Container struct {
	Config    *config.Config
	Logger    *zap.Logger
	Metrics   *observability.Collector
	Tracer    *observability.Tracer
	Sentiment *services.SentimentService
	Router    *rest.Router
}
