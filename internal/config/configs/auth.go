package configs

import "time"

// Auth configures the HS256 tokens guarding admin routes.
type Auth struct {
	JWTSecret string        `env:"JWT_SECRET"`
	Issuer    string        `env:"ISSUER" envDefault:"agrofund"`
	TokenTTL  time.Duration `env:"TOKEN_TTL" envDefault:"1h"`
}
