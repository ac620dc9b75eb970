package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const defaultPath = "./config.yaml"

// Load reads the service configuration and validates it.
// Priority: ENV > YAML > defaults (via env-default tags).
// The YAML file is CONFIG_PATH, or ./config.yaml when unset. Only an
// explicit CONFIG_PATH has to exist.
func Load() (*Config, error) {
	var cfg Config

	path := os.Getenv("CONFIG_PATH")
	required := path != ""
	if !required {
		path = defaultPath
	}

	if err := ReadInto(path, required, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}

// ReadInto fills dst, a pointer to a cleanenv-tagged struct, from the YAML
// file at path and the environment. A missing file is an error only when
// required is set; otherwise dst comes from ENV and defaults alone.
func ReadInto(path string, required bool, dst any) error {
	if path == "" {
		if required {
			return errors.New("config path is empty")
		}
		return readEnv(dst)
	}

	_, err := os.Stat(path)
	switch {
	case err == nil:
		if err := cleanenv.ReadConfig(path, dst); err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		return nil
	case required || !errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("file %s: %w", path, err)
	default:
		return readEnv(dst)
	}
}

func readEnv(dst any) error {
	if err := cleanenv.ReadEnv(dst); err != nil {
		return fmt.Errorf("read env: %w", err)
	}
	return nil
}
