package main

import (
	"context"
	"fmt"

	"github.com/jonathan/candidate-matcher/internal/config"
	"github.com/jonathan/candidate-matcher/internal/db"
)

// openStore opens the configured score store. It returns nil when persistence
// is disabled.
func openStore(ctx context.Context, cfg config.StoreConfig) (db.Store, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		database, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		return database, nil
	case config.DriverSQLite:
		database, err := db.OpenSQLite(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return database, nil
	case config.DriverNone, "":
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}
}

// saveScores persists scores when a store is configured and reports how many were written.
func saveScores(ctx context.Context, cfg config.StoreConfig, scores ...db.MatchScore) (int, error) {
	store, err := openStore(ctx, cfg)
	if err != nil {
		return 0, err
	}
	if store == nil {
		return 0, fmt.Errorf("no score store configured (set store.driver)")
	}
	defer store.Close()

	for _, score := range scores {
		if err := store.SaveMatchScore(ctx, score); err != nil {
			return 0, err
		}
	}
	return len(scores), nil
}
