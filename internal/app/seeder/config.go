package seeder

import (
	"fmt"

	"github.com/vndialect/tudien-backend/internal/config"
)

// Config holds seeder settings.
type Config struct {
	// DatasetPath overrides the embedded dataset with a YAML file.
	DatasetPath   string `yaml:"dataset_path"   env:"SEEDER_DATASET_PATH"`
	AdminEmail    string `yaml:"admin_email"    env:"SEEDER_ADMIN_EMAIL"    env-default:"admin@tudien.local"`
	AdminName     string `yaml:"admin_name"     env:"SEEDER_ADMIN_NAME"     env-default:"Admin"`
	AdminPassword string `yaml:"admin_password" env:"SEEDER_ADMIN_PASSWORD"`
	DryRun        bool   `yaml:"dry_run"        env:"SEEDER_DRY_RUN"`
}

// LoadConfig reads seeder settings from the YAML file at path, when given,
// and the environment.
func LoadConfig(path string) (*Config, error) {
	var cfg Config
	if err := config.ReadInto(path, path != "", &cfg); err != nil {
		return nil, fmt.Errorf("seeder config: %w", err)
	}
	return &cfg, nil
}
