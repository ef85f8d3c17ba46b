// Package types defines the leaf value types of the transaction model:
// 32-byte addresses and digests, versioned object references, gas
// configuration, and spendable coins.
//
// These correspond to the core identifier types in the ledger's Rust
// implementation:
//   - sui/crates/sui-types/src/base_types.rs (SuiAddress, ObjectID, ObjectRef)
//   - sui/crates/sui-types/src/transaction.rs (GasData)
//
// Addresses and digests are fixed 32-byte arrays. The human-facing
// encodings differ: addresses travel as 0x-prefixed hex, digests arrive
// from the RPC layer as base58 or base64 depending on the call site. The
// normalizers in this package convert every textual form into the
// canonical 32-byte representation.
package types

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/btcsuite/btcutil/base58"
)

// AddressLength is the size of every account and object identifier.
const AddressLength = 32

// DigestLength is the size of every object content digest.
const DigestLength = 32

// MistPerSui is the number of minor units in one major unit of the native
// currency. All transaction amounts are denominated in minor units.
const MistPerSui uint64 = 1_000_000_000

// Address is a 32-byte account or object namespace identifier.
//
// The textual form is always "0x" followed by 64 lowercase hex characters.
// Short hex input is left-zero-padded during parsing, never right-padded:
// "0x1" is the address ending in a single 0x01 byte.
type Address [AddressLength]byte

// ParseAddress converts a hex address string into its canonical 32-byte
// form. The "0x" prefix is optional and input shorter than 64 hex digits
// is left-zero-padded. Input decoding to more than 32 bytes is rejected
// with *InvalidAddressLengthError.
func ParseAddress(text string) (Address, error) {
	var addr Address

	s := strings.TrimPrefix(strings.TrimPrefix(text, "0x"), "0X")
	if s == "" {
		return addr, fmt.Errorf("address %q: empty hex payload", text)
	}
	if len(s)%2 != 0 {
		s = "0" + s
	}

	raw, err := hex.DecodeString(s)
	if err != nil {
		return addr, fmt.Errorf("address %q: %w", text, err)
	}
	if len(raw) > AddressLength {
		return addr, &InvalidAddressLengthError{Got: len(raw)}
	}

	copy(addr[AddressLength-len(raw):], raw)
	return addr, nil
}

// MustParseAddress is ParseAddress for trusted constants; it panics on
// invalid input.
func MustParseAddress(text string) Address {
	addr, err := ParseAddress(text)
	if err != nil {
		panic(err)
	}
	return addr
}

// String returns the canonical textual form: "0x" + 64 lowercase hex chars.
func (a Address) String() string {
	return "0x" + hex.EncodeToString(a[:])
}

// Bytes returns a copy of the raw 32 bytes.
func (a Address) Bytes() []byte {
	out := make([]byte, AddressLength)
	copy(out, a[:])
	return out
}

// Digest is the canonical 32-byte content digest of an on-ledger object.
type Digest [DigestLength]byte

// NormalizeDigest converts a digest received from the RPC layer into its
// canonical 32-byte form.
//
// Different RPC calls return digests in different encodings, so decoding is
// tried in order: base58 first, then standard base64. A 33-byte decode
// drops its first byte (observed ledger behavior for that encoding), a
// shorter decode is right-padded with zeros, and a longer one is truncated
// to the first 32 bytes. This policy is copied from observed wire captures
// rather than a protocol guarantee; it is deliberately concentrated here
// so a future clarification only touches this function.
func NormalizeDigest(text string) (Digest, error) {
	var digest Digest

	if text == "" {
		return digest, &InvalidDigestEncodingError{Value: text}
	}

	raw := base58.Decode(text)
	if len(raw) == 0 {
		decoded, err := base64.StdEncoding.DecodeString(text)
		if err != nil || len(decoded) == 0 {
			return digest, &InvalidDigestEncodingError{Value: text}
		}
		raw = decoded
	}

	if len(raw) == DigestLength+1 {
		raw = raw[1:]
	}
	if len(raw) > DigestLength {
		raw = raw[:DigestLength]
	}
	copy(digest[:], raw)
	return digest, nil
}

// String returns the base58 form, the encoding the submission RPC expects.
func (d Digest) String() string {
	return base58.Encode(d[:])
}

// ObjectRef is a versioned pointer to a specific on-ledger object state.
type ObjectRef struct {
	ObjectID Address // Object identifier
	Version  uint64  // Monotonic sequence number of the referenced state
	Digest   Digest  // Content digest of that state
}

// GasData is the gas payment configuration for one transaction.
//
// Payment objects must be owned by Owner; that ownership is enforced by
// the ledger at execution time, not locally.
type GasData struct {
	Payment []ObjectRef // Objects that fund gas
	Owner   Address     // Owner of the payment objects
	Price   uint64      // Gas unit price in minor units
	Budget  uint64      // Maximum spend in minor units
}

// Coin is a spendable value-bearing object: an object reference plus the
// balance it carries. Coins are fetched from the ledger and passed into
// the core as read-only facts.
type Coin struct {
	ObjectRef
	Balance uint64 // Balance in minor units
}
