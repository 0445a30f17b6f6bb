// Package store provides the key-value substrate droneplan persists into.
//
// The package defines the [Store] interface, a deliberately small surface
// of Get, Set and Remove on string keys. Three backends implement it:
//   - BoltDB (default), one bucket holding every key
//   - SQLite, a single kv table
//   - Memory, used by tests and by --backend memory
//
// # Opening a store
//
// Use [Open] with a [Backend] and a file path:
//
//	s, err := store.Open(store.BackendBolt, path)
//	if err != nil {
//	    return err
//	}
//	defer s.Close()
//
// A missing key is reported as [ErrNotFound].
package store
