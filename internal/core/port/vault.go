package port

// SeedVault protects wallet seeds persisted alongside business records.
type SeedVault interface {
	Seal(seed string) (string, error)
	Open(sealed string) (string, error)
}
