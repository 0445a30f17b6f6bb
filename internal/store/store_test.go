package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inovacc/droneplan/internal/model"
)

func openBackends(t *testing.T) map[string]Store {
	t.Helper()

	dir := t.TempDir()

	bolt, err := NewBolt(filepath.Join(dir, "test.bolt"))
	require.NoError(t, err)

	sqlite, err := NewSQLite(filepath.Join(dir, "test.db"))
	require.NoError(t, err)

	stores := map[string]Store{
		"bolt":   bolt,
		"sqlite": sqlite,
		"memory": NewMemory(),
	}

	t.Cleanup(func() {
		for name, s := range stores {
			if err := s.Close(); err != nil {
				t.Logf("failed to close %s store: %v", name, err)
			}
		}
	})

	return stores
}

func TestStore_Ping(t *testing.T) {
	for name, s := range openBackends(t) {
		t.Run(name, func(t *testing.T) {
			assert.NoError(t, s.Ping())
		})
	}
}

func TestStore_GetMissing(t *testing.T) {
	for name, s := range openBackends(t) {
		t.Run(name, func(t *testing.T) {
			_, err := s.Get("plans")
			assert.ErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestStore_SetGetOverwrite(t *testing.T) {
	for name, s := range openBackends(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, s.Set("plans", []byte(`[1]`)))

			got, err := s.Get("plans")
			require.NoError(t, err)
			assert.Equal(t, `[1]`, string(got))

			require.NoError(t, s.Set("plans", []byte(`[1,2]`)))

			got, err = s.Get("plans")
			require.NoError(t, err)
			assert.Equal(t, `[1,2]`, string(got))
		})
	}
}

func TestStore_Remove(t *testing.T) {
	for name, s := range openBackends(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, s.Set("plans", []byte(`[]`)))
			require.NoError(t, s.Set("other", []byte(`x`)))
			require.NoError(t, s.Remove("plans"))

			_, err := s.Get("plans")
			assert.ErrorIs(t, err, ErrNotFound)

			// removing twice is not an error
			assert.NoError(t, s.Remove("plans"))

			got, err := s.Get("other")
			require.NoError(t, err)
			assert.Equal(t, "x", string(got))
		})
	}
}

func TestBolt_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reopen.bolt")

	b, err := NewBolt(path)
	require.NoError(t, err)
	require.NoError(t, b.Set("plans", []byte(`[]`)))
	require.NoError(t, b.Close())

	b, err = NewBolt(path)
	require.NoError(t, err)

	defer func() { _ = b.Close() }()

	got, err := b.Get("plans")
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(got))
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		backend Backend
		path    string
		wantErr bool
	}{
		{name: "bolt", backend: BackendBolt, path: filepath.Join(dir, "a.bolt")},
		{name: "default is bolt", backend: "", path: filepath.Join(dir, "b.bolt")},
		{name: "sqlite", backend: BackendSQLite, path: filepath.Join(dir, "c.db")},
		{name: "bolt in new directory", backend: BackendBolt, path: filepath.Join(dir, "new", "dir", "x.bolt")},
		{name: "sqlite in new directory", backend: BackendSQLite, path: filepath.Join(dir, "other", "x.db")},
		{name: "memory", backend: BackendMemory},
		{name: "unknown", backend: "redis", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Open(tt.backend, tt.path)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.NoError(t, s.Ping())
			assert.NoError(t, s.Close())
		})
	}
}

func TestBackend_Set(t *testing.T) {
	var b Backend

	require.NoError(t, b.Set("SQLite"))
	assert.Equal(t, BackendSQLite, b)
	assert.Equal(t, "sqlite", b.String())
	assert.Equal(t, "backend", b.Type())

	assert.Error(t, b.Set("postgres"))
	assert.Equal(t, BackendSQLite, b)
}

func TestConfig_DefaultsAndSave(t *testing.T) {
	s := NewMemory()

	cfg, err := GetConfig(s)
	require.NoError(t, err)
	assert.Equal(t, model.DefaultConfig(), *cfg)

	cfg.ZoomLevel = 12
	cfg.Locator = model.LocatorFixed
	require.NoError(t, SaveConfig(s, cfg))

	got, err := GetConfig(s)
	require.NoError(t, err)
	assert.Equal(t, 12, got.ZoomLevel)
	assert.Equal(t, model.LocatorFixed, got.Locator)

	assert.Error(t, SaveConfig(s, nil))
}

func TestConfig_Corrupt(t *testing.T) {
	s := NewMemory()
	require.NoError(t, s.Set(ConfigKey, []byte(`{not json`)))

	_, err := GetConfig(s)
	assert.Error(t, err)
}
