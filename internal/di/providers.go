package di

import (
    "context"
    "fmt"
    "time"

    domrepo "DomainWorth/internal/domain/repository"
    domsvc "DomainWorth/internal/domain/service"
    "DomainWorth/internal/handler/api"
    "DomainWorth/internal/repository/sheets"
    "DomainWorth/internal/repository/usage"
    "DomainWorth/internal/service/ratelimit"
    "DomainWorth/internal/services/appraisal"
    "DomainWorth/internal/services/insight"
    "DomainWorth/internal/services/model"
    "DomainWorth/internal/usecase"
    "DomainWorth/pkg/cache"
    "DomainWorth/pkg/config"
    xhttp "DomainWorth/pkg/http"
    applogger "DomainWorth/pkg/logger"
    "DomainWorth/pkg/metrics"
    "DomainWorth/pkg/server"
)

// ProvideLogger creates the application logger.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	format := "json"
	if cfg.Environment == "development" {
		format = "console"
	}
	return applogger.New(&applogger.Config{
		Level:  "info",
		Format: format,
		Output: "stdout",
	})
}

// ProvideCache creates the pool-snapshot cache. With Redis configured it
// layers memory over Redis; otherwise memory alone.
func ProvideCache(cfg *config.Config) (cache.Service, error) {
	if !cfg.Redis.Enabled {
		return cache.NewMemoryCache(), nil
	}
	redisCache, err := cache.NewRedisCache(
		cache.WithRedisAddr(cfg.Redis.Addr),
		cache.WithRedisAuth(cfg.Redis.Password, cfg.Redis.DB),
	)
	if err != nil {
		return nil, fmt.Errorf("redis cache: %w", err)
	}
	return cache.NewLayeredCache(redisCache), nil
}

// ProvideSheetsClient creates the Google Sheets reader.
func ProvideSheetsClient(cfg *config.Config) (*sheets.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	client, err := sheets.NewClient(ctx, cfg.Sheets.CredentialsFile)
	if err != nil {
		return nil, fmt.Errorf("sheets client: %w", err)
	}
	return client, nil
}

// ProvideSalesSource creates the historical-sales loader.
func ProvideSalesSource(client *sheets.Client, c cache.Service, cfg *config.Config, log *applogger.Logger) domrepo.SalesSource {
	return sheets.NewSalesLoader(client, c,
		cfg.Sheets.Sales.SpreadsheetID,
		cfg.Sheets.Sales.SheetName,
		cfg.Sheets.Sales.CacheTTL,
		log,
	)
}

// ProvideListingSource creates the marketplace-listings loader.
func ProvideListingSource(client *sheets.Client, c cache.Service, cfg *config.Config, log *applogger.Logger) domrepo.ListingSource {
	return sheets.NewListingLoader(client, c,
		cfg.Sheets.Listings.SpreadsheetID,
		cfg.Sheets.Listings.SheetName,
		cfg.Sheets.Listings.CacheTTL,
		log,
	)
}

// ProvideUsageStore creates the SQLite daily-quota store.
func ProvideUsageStore(cfg *config.Config, log *applogger.Logger) (domrepo.UsageStore, error) {
	store, err := usage.NewStore(cfg.Usage.DBPath, cfg.Usage.DailyLimit, log)
	if err != nil {
		return nil, fmt.Errorf("usage store: %w", err)
	}
	return store, nil
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() domrepo.Metrics {
	return metrics.New()
}

// ProvidePriceModel loads the regression forest. A missing path disables
// the model; the engine then prices from its fallback base.
func ProvidePriceModel(cfg *config.Config, log *applogger.Logger) domsvc.PriceModel {
	if cfg.Model.Path == "" {
		return nil
	}
	forest, err := model.Load(cfg.Model.Path)
	if err != nil {
		log.Warn("price model unavailable, using fallback base price",
			applogger.String("path", cfg.Model.Path),
			applogger.Error(err),
		)
		return nil
	}
	return forest
}

// ProvideAIClient creates the DeepSeek client, or nil when AI is disabled.
func ProvideAIClient(cfg *config.Config) *insight.Client {
	if !cfg.AI.Enabled || cfg.AI.APIKey == "" {
		return nil
	}
	return insight.NewClient(insight.ClientConfig{
		APIKey:          cfg.AI.APIKey,
		BaseURL:         cfg.AI.BaseURL,
		Model:           cfg.AI.Model,
		ClassifyTimeout: cfg.AI.ClassifyTimeout,
		InsightTimeout:  cfg.AI.InsightTimeout,
	})
}

// ProvideClassifier adapts the AI client to the classifier port. Nil when
// AI is disabled so the engine relies on the keyword table alone.
func ProvideClassifier(client *insight.Client) domsvc.Classifier {
	if client == nil {
		return nil
	}
	return client
}

// ProvideInsightGenerator adapts the AI client to the insight port.
func ProvideInsightGenerator(client *insight.Client) domsvc.InsightGenerator {
	if client == nil {
		return nil
	}
	return client
}

// ProvideEngine creates the appraisal engine.
func ProvideEngine(priceModel domsvc.PriceModel, cfg *config.Config, log *applogger.Logger) *appraisal.Engine {
	opts := []appraisal.EngineOption{appraisal.WithLogger(log)}
	if cfg.Model.FallbackPrice > 0 {
		opts = append(opts, appraisal.WithFallbackBasePrice(cfg.Model.FallbackPrice))
	}
	return appraisal.NewEngine(priceModel, opts...)
}

// ProvideAppraiser creates the appraise use case.
func ProvideAppraiser(
	engine *appraisal.Engine,
	sales domrepo.SalesSource,
	listings domrepo.ListingSource,
	classifier domsvc.Classifier,
	insights domsvc.InsightGenerator,
	m domrepo.Metrics,
	log *applogger.Logger,
) *usecase.Appraiser {
	return usecase.NewAppraiser(engine, sales, listings, classifier, insights, m, log)
}

// ProvideLimiter creates the per-client burst limiter.
func ProvideLimiter(cfg *config.Config) *ratelimit.Limiter {
	return ratelimit.New(float64(cfg.RateLimit.Burst), cfg.RateLimit.RefillPerSec)
}

// ProvideHandler creates the Echo route handler.
func ProvideHandler(
	log *applogger.Logger,
	appraiser *usecase.Appraiser,
	usageStore domrepo.UsageStore,
	limiter *ratelimit.Limiter,
	cfg *config.Config,
) xhttp.Handler {
	return api.NewAppraisalEchoHandler(
		log,
		appraiser,
		usageStore,
		limiter,
		cfg.Usage.DailyLimit,
		cfg.Usage.RetentionDays,
		cfg.Usage.AdminKey,
		cfg.AI.Enabled,
	)
}

// ProvideApp creates the application server.
func ProvideApp(
	cfg *config.Config,
	log *applogger.Logger,
	handler xhttp.Handler,
	usageStore domrepo.UsageStore,
	c cache.Service,
) *server.App {
	return server.New(cfg, log, handler, usageStore, c)
}
