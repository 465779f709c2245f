package configs

import (
	"fmt"
	"time"
)

// SQLite configures the embedded sqlite record store.
type SQLite struct {
	Path          string        `env:"PATH" envDefault:"data/agrofund.db"`
	BusyTimeout   time.Duration `env:"BUSY_TIMEOUT" envDefault:"5s"`
	RunMigrations bool          `env:"RUN_MIGRATIONS" envDefault:"true"`
}

// DSN returns the go-sqlite3 data source name with foreign keys enabled.
func (c SQLite) DSN() string {
	return fmt.Sprintf("file:%s?_busy_timeout=%d&_foreign_keys=on", c.Path, c.BusyTimeout.Milliseconds())
}
