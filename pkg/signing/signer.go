// Package signing turns an unsigned TransactionData into a submittable
// signed transaction: canonical serialization, intent wrapping, the
// two-stage digest, and signature blob assembly.
//
// The digest and envelope layout correspond to the Rust definitions in
// sui/crates/sui-types/src/intent.rs and
// sui/crates/shared-crypto/src/intent.rs.
package signing

import (
	"context"

	"github.com/suffix-labs/sui-txkit/pkg/crypto"
)

// Signer produces signatures over prepared 32-byte digests. The key
// material stays behind the interface; implementations may hold a local
// key (crypto.Secp256k1Signer) or proxy to a remote KMS, which is why
// both methods take a context.
type Signer interface {
	// Sign signs a prepared 32-byte digest and returns the scheme's
	// fixed-size signature (64 bytes for every supported scheme).
	Sign(ctx context.Context, digest []byte) ([]byte, error)

	// PublicKey returns the serialized public key matching the scheme's
	// expected length.
	PublicKey(ctx context.Context) ([]byte, error)

	// Scheme identifies the signature scheme the signer implements.
	Scheme() crypto.Scheme
}
