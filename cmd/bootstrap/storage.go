package bootstrap

import (
	"fmt"

	"levelup-cart/internal/infra/storage"
	"levelup-cart/internal/pkg/config"

	"go.uber.org/fx"
)

var StorageModule = fx.Module("storage",
	fx.Provide(
		NewPartitionStore,
	),
)

// NewPartitionStore selects the cart partition backend. The file store keeps
// one JSON document per partition key and survives restarts; the memory store
// is for tests and throwaway runs.
func NewPartitionStore(cfg config.Config) (storage.Store, error) {
	switch cfg.Storage.Backend {
	case "memory":
		return storage.NewMemoryStore(), nil
	case "file":
		return storage.NewFileStore(cfg.Storage.Dir)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}
