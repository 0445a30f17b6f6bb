package store

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/inovacc/droneplan/internal/model"
)

// ConfigKey holds the JSON encoded model.Config.
const ConfigKey = "config"

// GetConfig returns the stored config, or the defaults when none was saved.
func GetConfig(s Store) (*model.Config, error) {
	data, err := s.Get(ConfigKey)
	if errors.Is(err, ErrNotFound) {
		cfg := model.DefaultConfig()
		return &cfg, nil
	}

	if err != nil {
		return nil, err
	}

	cfg := model.DefaultConfig()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	return &cfg, nil
}

// SaveConfig persists the config.
func SaveConfig(s Store, cfg *model.Config) error {
	if cfg == nil {
		return errors.New("config is required")
	}

	data, err := json.Marshal(cfg)
	if err != nil {
		return err
	}

	return s.Set(ConfigKey, data)
}
