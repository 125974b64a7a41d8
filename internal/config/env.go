// Package config loads server settings from the environment.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
)

// AppName names the per-user data directory.
const AppName = "dungeon-crawl"

// Config holds every tunable of the server. Flags in cmd/server may override
// the listen settings after parsing.
type Config struct {
	SSHPort     int    `env:"DUNGEON_SSH_PORT" envDefault:"2222"`
	HostKeyPath string `env:"DUNGEON_HOST_KEY" envDefault:"host_key"`
	WSAddr      string `env:"DUNGEON_WS_ADDR" envDefault:":8080"`

	// Backend is one of memory, sqlite, postgres or file.
	Backend     string `env:"DUNGEON_STORE" envDefault:"sqlite"`
	SQLitePath  string `env:"DUNGEON_SQLITE_PATH" envDefault:"dungeon.db"`
	DatabaseURL string `env:"DATABASE_URL"`
	DataDir     string `env:"DUNGEON_DATA_DIR"`

	Winter   bool          `env:"DUNGEON_WINTER" envDefault:"true"`
	LobbyTTL time.Duration `env:"DUNGEON_LOBBY_TTL" envDefault:"10m"`
	LogLevel slog.Level    `env:"DUNGEON_LOG_LEVEL" envDefault:"info"`
	Seed     int64         `env:"DUNGEON_SEED"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load parses a Config from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// DataDir returns the directory for local data files. An explicit override
// wins; otherwise it follows the XDG Base Directory spec:
// $XDG_DATA_HOME/dungeon-crawl, defaulting to ~/.local/share/dungeon-crawl.
func DataDir(override string) (string, error) {
	if override != "" {
		return override, nil
	}
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, AppName), nil
}
