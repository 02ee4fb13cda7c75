package store

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/noah-isme/school-portal-api/pkg/config"
)

// Store is the key-value port every repository persists through. Values are
// opaque byte slices; Get returns errors.ErrKeyNotFound for absent keys and
// Set surfaces write failures instead of swallowing them.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}

// Open builds the store selected by STORAGE_DRIVER.
func Open(cfg *config.Config, logger *zap.Logger) (Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Info("opening store", zap.String("driver", cfg.Storage.Driver))

	switch cfg.Storage.Driver {
	case config.DriverMemory, "":
		return NewMemory(), nil
	case config.DriverRedis:
		return NewRedis(cfg.Redis)
	case config.DriverPostgres:
		db, err := NewPostgresDB(cfg.Database)
		if err != nil {
			return nil, err
		}
		return NewPostgres(db), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}
