package main

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/travel-planner/internal/domain/culture"
	"github.com/yanqian/travel-planner/internal/domain/eco"
	"github.com/yanqian/travel-planner/internal/domain/itinerary"
	"github.com/yanqian/travel-planner/internal/infra/catalog"
	"github.com/yanqian/travel-planner/internal/infra/config"
	"github.com/yanqian/travel-planner/internal/infra/llm/chatgpt"
	"github.com/yanqian/travel-planner/internal/infra/llm/gemini"
	"github.com/yanqian/travel-planner/internal/infra/trendstore"
)

func provideItineraryConfig(cfg *config.Config) itinerary.Config {
	return itinerary.Config{
		Defaults: itinerary.Defaults{
			City:   cfg.Itinerary.DefaultCity,
			Days:   cfg.Itinerary.DefaultDays,
			Budget: cfg.Itinerary.DefaultBudget,
			Mode:   itinerary.Mode(cfg.Itinerary.DefaultMode),
		},
		MaxDays:       cfg.Itinerary.MaxDays,
		TrendingLimit: cfg.Itinerary.TrendingLimit,
	}
}

func provideCultureConfig(cfg *config.Config) culture.Config {
	return culture.Config{
		Prompt:     cfg.LLM.Prompt,
		MaxHistory: cfg.LLM.MaxHistory,
	}
}

func noop() {}

// provideChatClient returns a nil interface when no API key is configured so
// the culture chat keeps its canned replies.
func provideChatClient(cfg *config.Config, logger *slog.Logger) (culture.ChatClient, func()) {
	if strings.TrimSpace(cfg.LLM.APIKey) == "" {
		logger.Info("llm api key not set, culture chat uses canned replies")
		return nil, noop
	}
	switch strings.ToLower(strings.TrimSpace(cfg.LLM.Provider)) {
	case config.ProviderGemini:
		guide, err := gemini.NewGuide(context.Background(), cfg.LLM.APIKey, cfg.LLM.Model, cfg.LLM.Temperature)
		if err != nil {
			logger.Error("failed to create gemini client, culture chat uses canned replies", "error", err)
			return nil, noop
		}
		logger.Info("culture chat backed by gemini", "model", cfg.LLM.Model)
		return guide, func() { _ = guide.Close() }
	default:
		client, err := chatgpt.NewClient(cfg.LLM.APIKey, cfg.LLM.BaseURL)
		if err != nil {
			logger.Error("failed to create chatgpt client, culture chat uses canned replies", "error", err)
			return nil, noop
		}
		logger.Info("culture chat backed by chatgpt", "model", cfg.LLM.Model)
		return chatgpt.NewGuide(client, cfg.LLM.Model, cfg.LLM.Temperature), noop
	}
}

// provideCatalog serves sights and eco hotels from Postgres when a DSN is
// configured and reachable, otherwise from the built-in data.
func provideCatalog(cfg *config.Config, logger *slog.Logger) (catalogSource, func()) {
	fallback := catalog.NewMemoryCatalog()
	dsn := strings.TrimSpace(cfg.Catalog.Postgres.DSN)
	if dsn == "" {
		logger.Info("catalog postgres dsn not set, using built-in catalog")
		return fallback, noop
	}
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Error("invalid postgres dsn, using built-in catalog", "error", err)
		return fallback, noop
	}
	if cfg.Catalog.Postgres.MaxConns > 0 {
		poolConfig.MaxConns = cfg.Catalog.Postgres.MaxConns
	}
	if cfg.Catalog.Postgres.MinConns > 0 {
		poolConfig.MinConns = cfg.Catalog.Postgres.MinConns
	}
	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		logger.Error("failed to initialize postgres pool, using built-in catalog", "error", err)
		return fallback, noop
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		logger.Error("postgres ping failed, using built-in catalog", "error", err)
		pool.Close()
		return fallback, noop
	}
	logger.Info("catalog postgres enabled")
	return catalog.NewPostgresCatalog(pool), pool.Close
}

type catalogSource interface {
	culture.SightRepository
	eco.HotelRepository
}

func provideSightRepository(src catalogSource) culture.SightRepository {
	return src
}

func provideHotelRepository(src catalogSource) eco.HotelRepository {
	return src
}

func provideTrendStore(cfg *config.Config, logger *slog.Logger) (itinerary.Store, func()) {
	if cfg.Cache.Valkey.Enabled {
		opt, err := buildValkeyOptions(cfg.Cache.Valkey.Addr)
		if err != nil {
			logger.Error("invalid valkey configuration, falling back to memory store", "error", err)
			return trendstore.NewMemoryStore(), noop
		}
		client, err := valkey.NewClient(opt)
		if err != nil {
			logger.Error("failed to create valkey client, falling back to memory store", "error", err)
			return trendstore.NewMemoryStore(), noop
		}
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
			logger.Error("valkey ping failed, falling back to memory store", "error", err)
			client.Close()
		} else {
			logger.Info("trending valkey store enabled", "addr", cfg.Cache.Valkey.Addr)
			return trendstore.NewValkeyStore(client, cfg.Cache.Valkey.Prefix), client.Close
		}
	}
	return trendstore.NewMemoryStore(), noop
}

func buildValkeyOptions(addr string) (valkey.ClientOption, error) {
	if strings.Contains(addr, "://") {
		return valkey.ParseURL(addr)
	}
	return valkey.ClientOption{InitAddress: []string{addr}}, nil
}
