package store

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.etcd.io/bbolt"
)

const boltBucket = "droneplan" // key: name -> raw value

type Bolt struct {
	storage *bbolt.DB
}

// NewBolt opens or creates a Bolt database at the specified path.
func NewBolt(path string) (*Bolt, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}

	instance, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("opening bolt database %s: %w", path, err)
	}

	if err := instance.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(boltBucket))
		return err
	}); err != nil {
		_ = instance.Close()

		return nil, err
	}

	return &Bolt{storage: instance}, nil
}

func (b *Bolt) Ping() error {
	return b.storage.View(func(tx *bbolt.Tx) error {
		return nil
	})
}

func (b *Bolt) Get(key string) ([]byte, error) {
	var out []byte

	err := b.storage.View(func(tx *bbolt.Tx) error {
		v := tx.Bucket([]byte(boltBucket)).Get([]byte(key))
		if v == nil {
			return ErrNotFound
		}

		// v is only valid for the life of the transaction
		out = append([]byte(nil), v...)

		return nil
	})

	return out, err
}

func (b *Bolt) Set(key string, value []byte) error {
	return b.storage.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(boltBucket)).Put([]byte(key), value)
	})
}

func (b *Bolt) Remove(key string) error {
	return b.storage.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(boltBucket)).Delete([]byte(key))
	})
}

// Close closes the database.
func (b *Bolt) Close() error {
	return b.storage.Close()
}
