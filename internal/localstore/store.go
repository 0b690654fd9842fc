// Package localstore is the durable client-side state store: the place where
// the session token, the serialized user record and the currency catalog live
// between runs.
package localstore

// State keys shared across the client. These names are a persistence contract;
// other tooling reads the same records.
const (
	KeyToken             = "token"
	KeyUser              = "user"
	KeyEnabledCurrencies = "enabledCurrencies"
	KeyAllCurrencies     = "allCurrencies"
)

// Store is a keyed string store. Every write is a complete record; readers
// never observe a partially written value.
type Store interface {
	// Get returns the value for key and whether it was present.
	Get(key string) (string, bool, error)

	// Set writes value under key, replacing any previous value.
	Set(key, value string) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(key string) error

	// Clear removes every key.
	Clear() error

	// Close releases underlying resources.
	Close() error
}
