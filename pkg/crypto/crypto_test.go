package crypto

import (
	"bytes"
	"context"
	"crypto/sha256"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemeFlagsAndLengths(t *testing.T) {
	assert.Equal(t, byte(0x00), Ed25519.Flag())
	assert.Equal(t, byte(0x01), Secp256k1.Flag())
	assert.Equal(t, byte(0x02), Secp256r1.Flag())

	assert.Equal(t, 32, Ed25519.PublicKeyLength())
	assert.Equal(t, 33, Secp256k1.PublicKeyLength())
	assert.Equal(t, 33, Secp256r1.PublicKeyLength())
}

func TestDeriveAddressIsDeterministic(t *testing.T) {
	pub := make([]byte, 33)
	pub[0] = 0x02
	pub[1] = 0x7F

	first, err := DeriveAddress(pub, Secp256k1)
	require.NoError(t, err)
	second, err := DeriveAddress(pub, Secp256k1)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.NotEqual(t, [32]byte{}, [32]byte(first))
}

func TestDeriveAddressSchemeFlagMatters(t *testing.T) {
	// Same key bytes under different flags must land on different
	// addresses.
	pub := make([]byte, 33)
	pub[0] = 0x03

	k1, err := DeriveAddress(pub, Secp256k1)
	require.NoError(t, err)
	r1, err := DeriveAddress(pub, Secp256r1)
	require.NoError(t, err)

	assert.NotEqual(t, k1, r1)
}

func TestDeriveAddressRejectsWrongLength(t *testing.T) {
	_, err := DeriveAddress(make([]byte, 33), Ed25519)

	var lenErr *InvalidKeyLengthError
	require.ErrorAs(t, err, &lenErr)
	assert.Equal(t, Ed25519, lenErr.Scheme)
	assert.Equal(t, 32, lenErr.Want)
	assert.Equal(t, 33, lenErr.Got)
}

func TestNewSecp256k1SignerRejectsWrongLength(t *testing.T) {
	_, err := NewSecp256k1Signer(make([]byte, 31))

	var lenErr *InvalidKeyLengthError
	require.ErrorAs(t, err, &lenErr)
	assert.Equal(t, 32, lenErr.Want)
}

func TestSecp256k1SignVerify(t *testing.T) {
	signer, err := GenerateSecp256k1Signer()
	require.NoError(t, err)
	assert.Equal(t, Secp256k1, signer.Scheme())

	ctx := context.Background()
	digest := sha256.Sum256([]byte("transaction bytes"))

	sig, err := signer.Sign(ctx, digest[:])
	require.NoError(t, err)
	assert.Len(t, sig, CompactSignatureLength)

	pub, err := signer.PublicKey(ctx)
	require.NoError(t, err)
	assert.Len(t, pub, 33)

	ok, err := VerifyCompact(pub, digest[:], sig)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestSecp256k1SignIsDeterministic(t *testing.T) {
	key := bytes.Repeat([]byte{0x11}, 32)
	signer, err := NewSecp256k1Signer(key)
	require.NoError(t, err)

	digest := sha256.Sum256([]byte("same message"))

	first, err := signer.Sign(context.Background(), digest[:])
	require.NoError(t, err)
	second, err := signer.Sign(context.Background(), digest[:])
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestVerifyCompactRejectsTamperedDigest(t *testing.T) {
	signer, err := GenerateSecp256k1Signer()
	require.NoError(t, err)

	ctx := context.Background()
	digest := sha256.Sum256([]byte("original"))
	sig, err := signer.Sign(ctx, digest[:])
	require.NoError(t, err)
	pub, err := signer.PublicKey(ctx)
	require.NoError(t, err)

	other := sha256.Sum256([]byte("tampered"))
	ok, err := VerifyCompact(pub, other[:], sig)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSecp256k1SignRejectsBadDigestLength(t *testing.T) {
	signer, err := GenerateSecp256k1Signer()
	require.NoError(t, err)

	_, err = signer.Sign(context.Background(), []byte("short"))
	assert.Error(t, err)
}

func TestSignerAddressMatchesDerivation(t *testing.T) {
	signer, err := GenerateSecp256k1Signer()
	require.NoError(t, err)

	pub, err := signer.PublicKey(context.Background())
	require.NoError(t, err)

	want, err := DeriveAddress(pub, Secp256k1)
	require.NoError(t, err)
	assert.Equal(t, want, signer.Address())
}
