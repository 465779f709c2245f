package configs

// Redis configures the redis record store. The whole state is kept under
// Key and updated with optimistic WATCH/MULTI transactions.
type Redis struct {
	Addr     string `env:"ADDRESS" envDefault:"localhost:6379"`
	Password string `env:"PASSWORD"`
	DB       int    `env:"DB" envDefault:"0"`
	Key      string `env:"KEY" envDefault:"agrofund:state"`
}
