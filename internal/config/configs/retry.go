package configs

import "time"

// Retry configures the backoff applied to read-only ledger calls.
type Retry struct {
	MaxAttempts  int           `env:"MAX_ATTEMPTS" envDefault:"3"`
	InitialDelay time.Duration `env:"INITIAL_DELAY" envDefault:"200ms"`
	MaxDelay     time.Duration `env:"MAX_DELAY" envDefault:"5s"`
	Multiplier   float64       `env:"MULTIPLIER" envDefault:"2"`
}
