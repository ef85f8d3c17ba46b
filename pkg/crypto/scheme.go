// Package crypto implements signature schemes and address derivation.
//
// The ledger accepts several signature schemes side by side; every scheme
// is identified on the wire by a one-byte flag that prefixes both public
// keys (for address derivation) and assembled signature blobs. This
// corresponds to the Rust definitions in
// sui/crates/sui-types/src/crypto.rs (SignatureScheme).
package crypto

import (
	"fmt"
)

// Scheme identifies a signature scheme. The constant values are the wire
// flag bytes.
type Scheme byte

const (
	Ed25519   Scheme = 0x00
	Secp256k1 Scheme = 0x01
	Secp256r1 Scheme = 0x02
)

// Flag returns the one-byte wire flag for the scheme.
func (s Scheme) Flag() byte {
	return byte(s)
}

// PublicKeyLength returns the serialized public key length the scheme
// uses: 32 bytes for Ed25519, 33 (compressed) for the ECDSA schemes.
func (s Scheme) PublicKeyLength() int {
	switch s {
	case Ed25519:
		return 32
	case Secp256k1, Secp256r1:
		return 33
	default:
		return 0
	}
}

func (s Scheme) String() string {
	switch s {
	case Ed25519:
		return "ed25519"
	case Secp256k1:
		return "secp256k1"
	case Secp256r1:
		return "secp256r1"
	default:
		return fmt.Sprintf("scheme(0x%02x)", byte(s))
	}
}
