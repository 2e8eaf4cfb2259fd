package seeder

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds demo data settings.
type Config struct {
	Password   string `env:"SEEDER_PASSWORD"    env-default:"password123"`
	BcryptCost int    `env:"SEEDER_BCRYPT_COST" env-default:"10"`
	Reset      bool   `env:"SEEDER_RESET"`
}

// LoadConfig reads seeder configuration from environment variables.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("seeder config: read env: %w", err)
	}
	return &cfg, nil
}
