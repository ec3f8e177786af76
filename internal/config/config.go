package config

import (
	"errors"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	DefaultConfigFileName = "config.toml"
	DefaultDataPath       = "data/dudu.txt"
	DefaultTrashDBPath    = "data/trash.db"
	DefaultWrapWidth      = 72
)

// UI selects how input lines reach the session.
const (
	UIPlain = "plain" // read stdin line by line
	UITUI   = "tui"   // interactive terminal UI
)

type Config struct {
	DataPath    string `toml:"data_path"`
	TrashDBPath string `toml:"trash_db_path"`
	UI          string `toml:"ui"`
	WrapWidth   int    `toml:"wrap_width"`
}

// ResolveConfigPath prefers the per-user config directory and falls back to
// the working directory when that is unavailable.
func ResolveConfigPath() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return DefaultConfigFileName
	}
	return filepath.Join(base, "dudu", DefaultConfigFileName)
}

// LoadOrCreate reads the config file, writing one with defaults first if it
// does not exist yet. Missing fields fall back to defaults.
func LoadOrCreate(path string) (Config, error) {
	cfg := defaultConfig()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := write(path, cfg); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if cfg.DataPath == "" {
		cfg.DataPath = DefaultDataPath
	}
	if cfg.TrashDBPath == "" {
		cfg.TrashDBPath = DefaultTrashDBPath
	}
	if cfg.UI == "" {
		cfg.UI = UIPlain
	}
	if cfg.WrapWidth <= 0 {
		cfg.WrapWidth = DefaultWrapWidth
	}
	return cfg, nil
}

func write(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil && !errors.Is(err, os.ErrExist) {
		return err
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func defaultConfig() Config {
	return Config{
		DataPath:    DefaultDataPath,
		TrashDBPath: DefaultTrashDBPath,
		UI:          UIPlain,
		WrapWidth:   DefaultWrapWidth,
	}
}
