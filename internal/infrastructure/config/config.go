package config

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	API   APIConfig
	Redis RedisConfig
}

// APIConfig points the gateway at the LanhCare backend. The default base
// URL is the hosted deployment, matching the dashboard's historical
// fallback.
type APIConfig struct {
	BaseURL string        `env:"API_BASE_URL, default=https://lanhcare.onrender.com"`
	Timeout time.Duration `env:"API_TIMEOUT,  default=30s"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(log zerolog.Logger) *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	return &cfg
}
