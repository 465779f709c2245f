package config

import (
	"errors"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"agrofund/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library. The
// nested structs are tagged with envPrefix so their fields are parsed with
// the given prefix. See the individual types in the configs package for
// default values and options. Use Load to construct a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev).
	Env string `env:"ENV" envDefault:"prod"`

	// SeedDemo populates an empty record book with demo campaigns on start.
	SeedDemo bool `env:"SEED_DEMO" envDefault:"false"`

	// HTTP holds configuration for the HTTP server. Environment variables
	// prefixed with HTTP_ will populate this struct.
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger. Environment variables prefixed
	// with LOG_ will populate this struct.
	Log configs.Logger `envPrefix:"LOG_"`

	// Store selects the record store backend.
	Store configs.Store `envPrefix:"STORE_"`

	// Psql configures the PostgreSQL connection. Environment variables
	// prefixed with PSQL_ will populate this struct.
	Psql configs.Postgres `envPrefix:"PSQL_"`

	SQLite configs.SQLite `envPrefix:"SQLITE_"`
	Redis  configs.Redis  `envPrefix:"REDIS_"`

	// Ledger selects and configures the ledger gateway.
	Ledger configs.Ledger `envPrefix:"LEDGER_"`
	Retry  configs.Retry  `envPrefix:"RETRY_"`

	Kafka configs.Kafka `envPrefix:"KAFKA_"`
	Auth  configs.Auth  `envPrefix:"AUTH_"`
	Vault configs.Vault `envPrefix:"VAULT_"`
}

// Load reads configuration from environment variables into a Config. A
// .env file in the working directory is read first when present; variables
// already set in the environment win. All fields are loaded with their
// specified defaults when no environment variable is provided.
func Load() (Config, error) {
	var cfg Config
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, err
	}
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
