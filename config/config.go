package config

import (
	"path/filepath"

	"restaurants/pkg/config"
)

// LoadConfig reads path, an empty path falls back to ~/.restaurants.yaml then ./.restaurants.yaml
func LoadConfig(path string) error {
	if path == "" {
		return config.LoadConfig()
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	return config.LoadConfig(config.WithConfigFile(abs))
}
