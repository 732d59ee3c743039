package repository

import (
	"context"
	"fmt"

	"github.com/dafibh/dompet/dompet-backend/internal/config"
	"github.com/dafibh/dompet/dompet-backend/internal/domain"
	"github.com/dafibh/dompet/dompet-backend/internal/repository/memory"
	"github.com/dafibh/dompet/dompet-backend/internal/repository/redisstore"
	"github.com/dafibh/dompet/dompet-backend/internal/repository/sqlstore"
)

// CloseFunc releases the resources held by a store
type CloseFunc func() error

func noClose() error { return nil }

// OpenTransactionStore opens the transaction store selected by cfg.StoreBackend
func OpenTransactionStore(ctx context.Context, cfg *config.Config) (domain.TransactionStore, CloseFunc, error) {
	switch cfg.StoreBackend {
	case config.StoreMemory:
		return memory.NewStore(), noClose, nil

	case config.StoreSQLite:
		store, err := sqlstore.OpenSQLite(ctx, cfg.SQLitePath, cfg.StorageKey)
		if err != nil {
			return nil, nil, err
		}
		return store, store.Close, nil

	case config.StorePostgres:
		store, err := sqlstore.OpenPostgres(ctx, cfg.DatabaseURL, cfg.StorageKey)
		if err != nil {
			return nil, nil, err
		}
		return store, store.Close, nil

	case config.StoreRedis:
		store, err := redisstore.Open(ctx, cfg.RedisURL, cfg.StorageKey)
		if err != nil {
			return nil, nil, err
		}
		return store, store.Close, nil
	}

	return nil, nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
}
