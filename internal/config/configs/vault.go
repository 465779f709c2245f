package configs

// Vault configures at-rest sealing of farmer wallet seeds. Key is a hex
// encoded 32 byte secretbox key. Without a key seeds are stored as given.
type Vault struct {
	Key string `env:"KEY"`
}
