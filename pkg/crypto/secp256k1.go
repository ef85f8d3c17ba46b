package crypto

import (
	"context"
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"

	"github.com/suffix-labs/sui-txkit/pkg/types"
)

// CompactSignatureLength is the length of the fixed-size r||s signature
// this package produces and verifies.
const CompactSignatureLength = 64

// Secp256k1Signer signs digests with a locally held secp256k1 private
// key. It satisfies the signing.Signer interface.
type Secp256k1Signer struct {
	key *secp256k1.PrivateKey
}

// NewSecp256k1Signer creates a signer from a raw 32-byte private key.
func NewSecp256k1Signer(keyBytes []byte) (*Secp256k1Signer, error) {
	if len(keyBytes) != 32 {
		return nil, &InvalidKeyLengthError{Scheme: Secp256k1, Want: 32, Got: len(keyBytes)}
	}
	return &Secp256k1Signer{key: secp256k1.PrivKeyFromBytes(keyBytes)}, nil
}

// GenerateSecp256k1Signer creates a signer with a fresh random key.
func GenerateSecp256k1Signer() (*Secp256k1Signer, error) {
	key, err := secp256k1.GeneratePrivateKey()
	if err != nil {
		return nil, fmt.Errorf("generate secp256k1 key: %w", err)
	}
	return &Secp256k1Signer{key: key}, nil
}

// Scheme returns Secp256k1.
func (s *Secp256k1Signer) Scheme() Scheme {
	return Secp256k1
}

// Sign produces a deterministic (RFC 6979) fixed-size r||s signature over
// the 32-byte digest.
func (s *Secp256k1Signer) Sign(_ context.Context, digest []byte) ([]byte, error) {
	if len(digest) != 32 {
		return nil, fmt.Errorf("signing digest must be 32 bytes, got %d", len(digest))
	}

	// SignCompact prepends a recovery byte; the wire format carries the
	// public key alongside the signature, so recovery is never needed.
	compact := ecdsa.SignCompact(s.key, digest, true)
	return compact[1:], nil
}

// PublicKey returns the 33-byte compressed public key.
func (s *Secp256k1Signer) PublicKey(_ context.Context) ([]byte, error) {
	return s.key.PubKey().SerializeCompressed(), nil
}

// Address returns the ledger address derived from the signer's public key.
func (s *Secp256k1Signer) Address() types.Address {
	addr, _ := DeriveAddress(s.key.PubKey().SerializeCompressed(), Secp256k1)
	return addr
}

// VerifyCompact verifies a 64-byte r||s signature over digest against a
// compressed public key.
func VerifyCompact(publicKey, digest, signature []byte) (bool, error) {
	if len(signature) != CompactSignatureLength {
		return false, fmt.Errorf("compact signature must be %d bytes, got %d",
			CompactSignatureLength, len(signature))
	}

	pub, err := secp256k1.ParsePubKey(publicKey)
	if err != nil {
		return false, fmt.Errorf("parse public key: %w", err)
	}

	var r, s secp256k1.ModNScalar
	if overflow := r.SetByteSlice(signature[:32]); overflow {
		return false, fmt.Errorf("signature r overflows curve order")
	}
	if overflow := s.SetByteSlice(signature[32:]); overflow {
		return false, fmt.Errorf("signature s overflows curve order")
	}

	return ecdsa.NewSignature(&r, &s).Verify(digest, pub), nil
}
