package cmd

import (
	"context"
	"fmt"

	"github.com/ziadkadry99/usuarios-api/internal/config"
	"github.com/ziadkadry99/usuarios-api/internal/db"
	"github.com/ziadkadry99/usuarios-api/internal/users"
)

// loadConfig reads and validates the configuration file.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// openStore builds the user store selected by cfg. The returned close
// function releases the backing database, if any.
func openStore(ctx context.Context, cfg *config.Config) (users.Store, func(), error) {
	var seed []users.User
	if cfg.Seed {
		seed = users.DefaultSeed()
	}
	policy := cfg.IDPolicy

	switch cfg.Storage {
	case config.StorageSQLite:
		database, err := db.OpenMemory()
		if err != nil {
			return nil, nil, fmt.Errorf("opening database: %w", err)
		}
		store, err := users.NewSQLStore(ctx, database, policy, seed)
		if err != nil {
			database.Close()
			return nil, nil, fmt.Errorf("creating sqlite store: %w", err)
		}
		return store, func() { database.Close() }, nil
	default:
		return users.NewMemoryStore(policy, seed), func() {}, nil
	}
}
