package store

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// ErrNotFound is returned by Get when the key is absent.
var ErrNotFound = errors.New("key not found")

// Store defines the key-value operations used by the app.
type Store interface {
	Ping() error
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Remove(key string) error
	Close() error
}

// Backend selects the Store implementation. It satisfies pflag.Value so it
// can be bound directly to a command line flag.
type Backend string

const (
	BackendBolt   Backend = "bolt"
	BackendSQLite Backend = "sqlite"
	BackendMemory Backend = "memory"
)

var _ pflag.Value = (*Backend)(nil)

func (b *Backend) String() string {
	return string(*b)
}

func (b *Backend) Set(v string) error {
	switch Backend(strings.ToLower(v)) {
	case BackendBolt, BackendSQLite, BackendMemory:
		*b = Backend(strings.ToLower(v))
		return nil
	default:
		return fmt.Errorf("unknown backend %q (want bolt, sqlite or memory)", v)
	}
}

func (b *Backend) Type() string {
	return "backend"
}

// Open returns the store for the given backend. The path is ignored by the
// memory backend.
func Open(backend Backend, path string) (Store, error) {
	switch backend {
	case BackendBolt, "":
		return NewBolt(path)
	case BackendSQLite:
		return NewSQLite(path)
	case BackendMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown backend %q", backend)
	}
}
