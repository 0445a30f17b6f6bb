package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/inovacc/droneplan/internal/logging"
	"github.com/inovacc/droneplan/internal/params"
	"github.com/inovacc/droneplan/internal/persist"
	"github.com/inovacc/droneplan/internal/store"
)

// Opened once per invocation by the root command and closed on finalize.
var (
	db      store.Store
	logger  = logging.Discard()
	logSink io.Closer
)

func openEnv(cmd *cobra.Command, _ []string) error {
	logPath := logFile
	if logPath == "" {
		p, err := params.LogPath()
		if err != nil {
			return err
		}

		logPath = p
	} else {
		p, err := expandPath(logPath)
		if err != nil {
			return err
		}

		logPath = p
	}

	l, sink, err := logging.New(logging.Options{Path: logPath, Level: logLevel, Format: logFormat})
	if err != nil {
		return err
	}

	logger, logSink = l, sink

	path, err := storePath(backend, dbPath)
	if err != nil {
		return err
	}

	s, err := openStore(backend, path)
	if err != nil {
		return err
	}

	db = s

	logger.Debug("store opened", "backend", backend.String(), "path", path, "command", cmd.Name())

	return nil
}

// openStore opens the backend and checks it answers before any command uses
// it.
func openStore(b store.Backend, path string) (store.Store, error) {
	s, err := store.Open(b, path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s store: %w", b.String(), err)
	}

	if err := s.Ping(); err != nil {
		_ = s.Close()
		return nil, fmt.Errorf("%s store is not usable: %w", b.String(), err)
	}

	return s, nil
}

// storePath resolves the database file for a backend. The memory backend
// has none.
func storePath(b store.Backend, path string) (string, error) {
	if b == store.BackendMemory {
		return "", nil
	}

	if path != "" {
		return expandPath(path)
	}

	if b == store.BackendSQLite {
		return params.SQLitePath()
	}

	return params.BoltPath()
}

func closeEnv() {
	if db != nil {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close store", "error", err)
		}

		db = nil
	}

	if logSink != nil {
		_ = logSink.Close()
		logSink = nil
	}

	logger = logging.Discard()
}

func planStorage() *persist.Adapter {
	return persist.NewAdapter(db, logger)
}
