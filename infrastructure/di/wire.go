//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"
	"go.uber.org/zap"

	"novena-backend/application/services"
	"novena-backend/infrastructure/config"
	"novena-backend/pkg/auth"
	"novena-backend/pkg/observability"
)

// Container holds all application dependencies.
type Container struct {
	Config         *config.Config
	Logger         *zap.Logger
	Metrics        *observability.Collector
	Tracing        *observability.TracerProvider
	CatalogService *services.CatalogService
	MatchService   *services.MatchService
	RulesWatcher   *config.RulesWatcher
	TokenVerifier  auth.TokenVerifier
}

// SuperSet is the main provider set containing all providers.
var SuperSet = wire.NewSet(
	ProvideLogger,
	ProvideCollector,
	ProvideTracerProvider,
	ProvideCatalogCache,
	ProvideSessionProvider,
	ProvideCatalogFetcher,
	ProvideAIClient,
	ProvideReasonCache,
	ProvidePicker,
	ProvideCatalogService,
	ProvideMatchService,
	ProvideRulesWatcher,
	ProvideTokenVerifier,
	wire.Struct(new(Container), "*"),
)

// InitializeContainer creates a fully wired container.
func InitializeContainer(cfg *config.Config) (*Container, error) {
	wire.Build(SuperSet)
	return nil, nil // Wire will replace this
}
