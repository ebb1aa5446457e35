package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds process configuration, sourced from the environment.
type Config struct {
	DatabaseURL string `env:"DATABASE_URL,required"`
	AppPort     string `env:"APP_PORT" envDefault:"8080"`
	JWTSecret   string `env:"JWT_SECRET" envDefault:"dev-secret-change-me"`
}

// Load reads a .env file when one is present, then parses the environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
