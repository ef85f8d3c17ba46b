package crypto

import (
	"github.com/minio/blake2b-simd"

	"github.com/suffix-labs/sui-txkit/pkg/types"
)

// DeriveAddress computes the ledger address controlled by a public key:
// Blake2b-256 over the scheme flag byte followed by the serialized public
// key. The flag byte keeps addresses distinct across schemes even when
// two schemes could share key bytes.
func DeriveAddress(publicKey []byte, scheme Scheme) (types.Address, error) {
	if want := scheme.PublicKeyLength(); len(publicKey) != want {
		return types.Address{}, &InvalidKeyLengthError{
			Scheme: scheme,
			Want:   want,
			Got:    len(publicKey),
		}
	}

	h, err := blake2b.New(&blake2b.Config{Size: types.AddressLength})
	if err != nil {
		return types.Address{}, err
	}
	h.Write([]byte{scheme.Flag()})
	h.Write(publicKey)

	var addr types.Address
	copy(addr[:], h.Sum(nil))
	return addr, nil
}
