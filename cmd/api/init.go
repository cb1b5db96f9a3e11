package main

import (
	"context"
	"fmt"

	"bmi-calculator/internal/calculator"
	"bmi-calculator/internal/config"
	"bmi-calculator/internal/observability"
	"bmi-calculator/internal/session"

	"go.uber.org/zap"
)

// initMetrics initialises the metric provider and the calculator's
// instruments.
func initMetrics(ctx context.Context) (func(context.Context) error, error) {
	shutdown, err := observability.InitMetrics(ctx)
	if err != nil {
		return nil, err
	}

	if err := calculator.InitMetrics(); err != nil {
		return nil, err
	}

	return shutdown, nil
}

// newStore picks the history backend: Redis when REDIS_URL is set, process
// memory otherwise. The returned close func is never nil.
func newStore(ctx context.Context, cfg config.Config) (session.Store, func() error, error) {
	if cfg.RedisURL == "" {
		observability.Logger.Info("using in-memory session store", zap.Duration("session_ttl", cfg.SessionTTL))
		return session.NewMemoryStore(cfg.SessionTTL), func() error { return nil }, nil
	}

	store, err := session.NewRedisStore(ctx, cfg.RedisURL, cfg.SessionTTL)
	if err != nil {
		return nil, nil, fmt.Errorf("init redis session store: %w", err)
	}

	observability.Logger.Info("using redis session store", zap.Duration("session_ttl", cfg.SessionTTL))
	return store, store.Close, nil
}
