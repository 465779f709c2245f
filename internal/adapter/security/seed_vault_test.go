package security

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKey = "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"

func TestSeedVault_RoundTrip(t *testing.T) {
	v, err := NewSeedVault(testKey)
	require.NoError(t, err)
	require.True(t, v.Enabled())

	sealed, err := v.Seal("SBSEEDEXAMPLE")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(sealed, sealedPrefix))
	assert.NotContains(t, sealed, "SBSEEDEXAMPLE")

	again, err := v.Seal("SBSEEDEXAMPLE")
	require.NoError(t, err)
	assert.NotEqual(t, sealed, again, "nonce must differ per seal")

	opened, err := v.Open(sealed)
	require.NoError(t, err)
	assert.Equal(t, "SBSEEDEXAMPLE", opened)
}

func TestSeedVault_WithoutKeyStoresPlaintext(t *testing.T) {
	v, err := NewSeedVault("")
	require.NoError(t, err)
	assert.False(t, v.Enabled())

	sealed, err := v.Seal("SBSEED")
	require.NoError(t, err)
	assert.Equal(t, "SBSEED", sealed)

	opened, err := v.Open("SBSEED")
	require.NoError(t, err)
	assert.Equal(t, "SBSEED", opened)
}

func TestSeedVault_OpensLegacyPlaintext(t *testing.T) {
	v, err := NewSeedVault(testKey)
	require.NoError(t, err)

	opened, err := v.Open("SBLEGACY")
	require.NoError(t, err)
	assert.Equal(t, "SBLEGACY", opened)
}

func TestSeedVault_Errors(t *testing.T) {
	_, err := NewSeedVault("abcd")
	require.ErrorIs(t, err, ErrInvalidKey)

	keyed, err := NewSeedVault(testKey)
	require.NoError(t, err)
	sealed, err := keyed.Seal("SBSEED")
	require.NoError(t, err)

	plain, err := NewSeedVault("")
	require.NoError(t, err)
	_, err = plain.Open(sealed)
	require.ErrorIs(t, err, ErrSealedNoKey)

	other, err := NewSeedVault(strings.Repeat("ff", 32))
	require.NoError(t, err)
	_, err = other.Open(sealed)
	require.ErrorIs(t, err, ErrCorruptSealed)

	_, err = keyed.Open(sealedPrefix + "!!!")
	require.ErrorIs(t, err, ErrCorruptSealed)
}
