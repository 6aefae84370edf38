package bankroll

import "fmt"

// Keys of the four persisted records.
const (
	KeyAccounts    = "accounts"
	KeySnapshots   = "snapshots"
	KeyAlerts      = "alerts"
	KeyAlertConfig = "alert_config"
)

// Store is a local key-value store holding the JSON records of a book.
//
// Get returns ErrNotFound for a key that was never written. A Store is used by
// a single Book at a time.
type Store interface {
	Get(key string) ([]byte, error)
	Put(key string, value []byte) error
	Close() error
}

// Backend names accepted by OpenStore.
const (
	BackendDir    = "dir"
	BackendSQLite = "sqlite"
	BackendMemory = "mem"
)

// OpenStore opens a store of the given backend at path.
func OpenStore(backend, path string) (Store, error) {
	switch backend {
	case BackendDir, "":
		return NewDirStore(path)
	case BackendSQLite:
		return NewSQLiteStore(path)
	case BackendMemory:
		return NewMemStore(), nil
	}
	return nil, fmt.Errorf("unknown store backend %q, want %q, %q or %q", backend, BackendDir, BackendSQLite, BackendMemory)
}
