package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// PathEnv names the environment variable holding the config file path.
const PathEnv = "CONFIG_PATH"

const defaultPath = "./config.yaml"

// Load reads configuration with priority ENV > YAML > env-default tags.
// The file comes from CONFIG_PATH, falling back to ./config.yaml. A missing
// fallback file is not an error; a missing CONFIG_PATH file is.
func Load() (*Config, error) {
	if path := os.Getenv(PathEnv); path != "" {
		return LoadFrom(path)
	}

	cfg, err := LoadFrom(defaultPath)
	if errors.Is(err, fs.ErrNotExist) {
		return loadEnv()
	}
	return cfg, err
}

// LoadFrom reads the YAML file at path, applies ENV overrides and validates.
func LoadFrom(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config: file %s: %w", path, err)
	}

	var cfg Config
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return validated(&cfg)
}

func loadEnv() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}
	return validated(&cfg)
}

func validated(cfg *Config) (*Config, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return cfg, nil
}

// Describe lists every environment variable the service reads, with defaults.
func Describe() (string, error) {
	header := "Environment variables (override " + PathEnv + " file values):"
	return cleanenv.GetDescription(&Config{}, &header)
}
