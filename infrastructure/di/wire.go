//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"
	"textanalysis/infrastructure/config"
	"textanalysis/interfaces/http/rest"
)

// SuperSet is the main provider set containing all providers
var SuperSet = wire.NewSet(
	ProvideLogger,
	ProvideDomainConfig,
	ProvideMetrics,
	ProvideTracer,
	ProvideErrorHandler,
	ProvideTranslator,
	ProvideSentimentProvider,
	ProvideTextService,
	ProvideSentimentService,
	ProvideTranslationService,
	ProvideTextHandler,
	ProvideSentimentHandler,
	ProvideTranslationHandler,
	ProvideRouterOptions,
	rest.NewRouter,
	wire.Struct(new(Container), "*"),
)

// InitializeContainer creates a fully wired container
func InitializeContainer(cfg *config.Config) (*Container, func(), error) {
	wire.Build(SuperSet)
	return nil, nil, nil // Wire will replace this
}
