package params

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/inovacc/droneplan/internal/application"
)

const (
	boltFile   = "droneplan.bolt"
	sqliteFile = "droneplan.db"
	logFile    = "droneplan.log"
)

// AppdataDir returns the application data directory, creating it if needed.
func AppdataDir() (string, error) {
	dir, err := application.GetApplicationDirectory()
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("failed to create data directory %s: %w", dir, err)
	}

	return dir, nil
}

// BoltPath is the default location of the bbolt database.
func BoltPath() (string, error) {
	return inAppdata(boltFile)
}

// SQLitePath is the default location of the SQLite database.
func SQLitePath() (string, error) {
	return inAppdata(sqliteFile)
}

// LogPath is the default location of the rotated log file.
func LogPath() (string, error) {
	return inAppdata(logFile)
}

func inAppdata(name string) (string, error) {
	dir, err := AppdataDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, name), nil
}
