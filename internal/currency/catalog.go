package currency

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"budget/internal/cache"
	"budget/internal/core"
	"budget/internal/localstore"
)

// Catalog reads and writes the currency lists persisted under the
// enabledCurrencies / allCurrencies state keys. Admin currency management
// writes them; registration and profile pickers read them. Reads go through a
// small TTL cache to skip re-parsing on every picker render.
type Catalog struct {
	storage localstore.Store
	cache   cache.Cache[[]core.CurrencyOption]
	logger  *slog.Logger
}

func NewCatalog(storage localstore.Store, logger *slog.Logger) *Catalog {
	if logger == nil {
		logger = slog.Default()
	}
	return &Catalog{
		storage: storage,
		cache:   cache.NewLRUCache[[]core.CurrencyOption](2, 5*time.Minute),
		logger:  logger,
	}
}

// Enabled returns the enabled currency set, falling back to the built-in
// defaults when nothing has been persisted or the record is unreadable.
func (c *Catalog) Enabled() []core.CurrencyOption {
	return c.read(localstore.KeyEnabledCurrencies)
}

// All returns the full currency catalog with enabled flags, falling back to
// the defaults (all enabled) when nothing has been persisted.
func (c *Catalog) All() []core.CurrencyOption {
	options := c.read(localstore.KeyAllCurrencies)
	return options
}

func (c *Catalog) read(key string) []core.CurrencyOption {
	if cached, ok := c.cache.Get(key); ok {
		return cached
	}

	raw, ok, err := c.storage.Get(key)
	if err != nil {
		c.logger.Warn("Failed to read currency catalog, using defaults", "key", key, "error", err)
		return core.DefaultCurrencies()
	}
	if !ok {
		return core.DefaultCurrencies()
	}

	var options []core.CurrencyOption
	if err := json.Unmarshal([]byte(raw), &options); err != nil {
		c.logger.Warn("Stored currency catalog is corrupt, using defaults", "key", key, "error", err)
		return core.DefaultCurrencies()
	}

	c.cache.Set(key, options)
	return options
}

// SaveEnabled replaces the persisted enabled currency list.
func (c *Catalog) SaveEnabled(options []core.CurrencyOption) error {
	return c.write(localstore.KeyEnabledCurrencies, options)
}

// SaveAll replaces the persisted full catalog.
func (c *Catalog) SaveAll(options []core.CurrencyOption) error {
	return c.write(localstore.KeyAllCurrencies, options)
}

func (c *Catalog) write(key string, options []core.CurrencyOption) error {
	raw, err := json.Marshal(options)
	if err != nil {
		return fmt.Errorf("encode currency catalog: %w", err)
	}
	if err := c.storage.Set(key, string(raw)); err != nil {
		return fmt.Errorf("persist currency catalog: %w", err)
	}
	c.cache.Delete(key)
	return nil
}
