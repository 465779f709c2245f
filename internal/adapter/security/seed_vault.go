// Package security protects wallet seeds that are stored next to business
// records.
package security

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/nacl/secretbox"

	"agrofund/internal/core/port"
)

// sealedPrefix marks a seed sealed by SeedVault. Values without it are
// treated as plaintext written before a key was configured.
const sealedPrefix = "sealed:v1:"

const nonceSize = 24

var (
	ErrInvalidKey    = errors.New("seed vault key must be 32 bytes hex encoded")
	ErrSealedNoKey   = errors.New("seed is sealed but no vault key is configured")
	ErrCorruptSealed = errors.New("sealed seed cannot be opened")
)

// SeedVault seals seeds with NaCl secretbox.
type SeedVault struct {
	key *[32]byte
}

// NewSeedVault returns a vault for the hex encoded key. An empty key yields
// a vault that stores seeds as given.
func NewSeedVault(hexKey string) (*SeedVault, error) {
	hexKey = strings.TrimSpace(hexKey)
	if hexKey == "" {
		return &SeedVault{}, nil
	}
	raw, err := hex.DecodeString(hexKey)
	if err != nil || len(raw) != 32 {
		return nil, ErrInvalidKey
	}
	var key [32]byte
	copy(key[:], raw)
	return &SeedVault{key: &key}, nil
}

var _ port.SeedVault = (*SeedVault)(nil)

// Enabled reports whether seeds are sealed.
func (v *SeedVault) Enabled() bool {
	return v.key != nil
}

func (v *SeedVault) Seal(seed string) (string, error) {
	if v.key == nil {
		return seed, nil
	}
	var nonce [nonceSize]byte
	if _, err := rand.Read(nonce[:]); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}
	box := secretbox.Seal(nonce[:], []byte(seed), &nonce, v.key)
	return sealedPrefix + base64.RawURLEncoding.EncodeToString(box), nil
}

func (v *SeedVault) Open(stored string) (string, error) {
	if !strings.HasPrefix(stored, sealedPrefix) {
		return stored, nil
	}
	if v.key == nil {
		return "", ErrSealedNoKey
	}
	box, err := base64.RawURLEncoding.DecodeString(strings.TrimPrefix(stored, sealedPrefix))
	if err != nil || len(box) < nonceSize+secretbox.Overhead {
		return "", ErrCorruptSealed
	}
	var nonce [nonceSize]byte
	copy(nonce[:], box[:nonceSize])
	plain, ok := secretbox.Open(nil, box[nonceSize:], &nonce, v.key)
	if !ok {
		return "", ErrCorruptSealed
	}
	return string(plain), nil
}
