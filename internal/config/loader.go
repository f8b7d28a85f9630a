package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
)

// EnvHelp describes the environment overrides understood by Load.
func EnvHelp() string {
	var cfg GameConfig
	help, err := cleanenv.GetDescription(&cfg, nil)
	if err != nil {
		return ""
	}
	return help
}

// Load loads a game's configuration.
// Search order: customPath -> ~/.chicken/configs/<id>.yaml -> ./configs/<id>.yaml -> embedded default.
// Files are layered over the embedded default, so partial files are fine.
// CHICKEN_* environment variables override whatever was loaded.
// The first file found must parse; the result must pass Validate.
func Load(gameID, customPath string) (GameConfig, error) {
	cfg, err := Default(gameID)
	if err != nil {
		return cfg, err
	}

	path := customPath
	if path == "" {
		for _, p := range searchPaths(gameID) {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path != "" {
		// ReadConfig applies the environment after the file
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to load %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return cfg, fmt.Errorf("config: failed to read environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: invalid %s config: %w", gameID, err)
	}
	return cfg, nil
}

// searchPaths lists user and local config locations for a game.
func searchPaths(gameID string) []string {
	filename := gameID + ".yaml"
	var paths []string
	if p := userConfigPath(filename); p != "" {
		paths = append(paths, p)
	}
	return append(paths, filepath.Join("configs", filename))
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".chicken", "configs", filename)
}
