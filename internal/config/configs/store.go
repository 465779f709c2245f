package configs

import "strings"

// Store selects the record store backend.
type Store struct {
	// Driver is one of memory, json, sqlite, postgres or redis.
	Driver string `env:"DRIVER" envDefault:"json"`
	// JSONPath is the storage file used by the json driver.
	JSONPath string `env:"JSON_PATH" envDefault:"data/storage.json"`
}

// Normalized returns the lower-cased driver name, falling back to json.
func (c Store) Normalized() string {
	switch d := strings.ToLower(c.Driver); d {
	case "memory", "json", "sqlite", "postgres", "redis":
		return d
	default:
		return "json"
	}
}
