//go:build wireinject
// +build wireinject

package di

import (
	"DomainWorth/pkg/config"
	"DomainWorth/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
    wire.Build(
        ProvideLogger,
        ProvideMetrics,

        // Infrastructure clients
        ProvideCache,
        ProvideSheetsClient,
        ProvideUsageStore,

        // Pool loaders
        ProvideSalesSource,
        ProvideListingSource,

        // Collaborators
        ProvidePriceModel,
        ProvideAIClient,
        ProvideClassifier,
        ProvideInsightGenerator,

        // Core and use case
        ProvideEngine,
        ProvideAppraiser,
        ProvideLimiter,

        // HTTP surface
        ProvideHandler,
        ProvideApp,
    )
    return &server.App{}, nil
}
