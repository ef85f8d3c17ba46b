// Package tx implements the transaction data model, the programmable
// transaction builder, and the canonical BCS serializer.
//
// The types here correspond to the Rust definitions in:
//   - sui/crates/sui-types/src/transaction.rs (TransactionData, GasData,
//     TransactionKind, ProgrammableTransaction, Command, CallArg, Argument)
//   - sui/crates/sui-types/src/type_input.rs (type tags)
//
// A programmable transaction is a tiny register-machine-like intermediate
// representation: an ordered list of typed inputs and an ordered list of
// commands that reference those inputs, and each other's results, by
// plain integer index. The index-based design keeps the model acyclic and
// makes serialization trivial; the Builder validates every index at build
// time so a malformed transaction never reaches the wire.
package tx

import (
	"github.com/suffix-labs/sui-txkit/pkg/types"
)

// TransactionDataVersion is the only transaction data version this module
// produces. It selects the command tag table used during serialization.
const TransactionDataVersion uint8 = 1

// CallArg is a transaction-level input: either an already-BCS-encoded
// scalar/array (Pure) or a reference to an on-ledger object.
type CallArg interface {
	callArg()
}

// Pure is an opaque, pre-encoded BCS value. The builder never inspects the
// bytes; callers encode them with the bcs package (u64 little-endian for
// amounts, raw 32 bytes for addresses).
type Pure struct {
	Bytes []byte
}

// Object is an input referencing a versioned on-ledger object.
type Object struct {
	Ref types.ObjectRef
}

func (Pure) callArg()   {}
func (Object) callArg() {}

// Argument is a reference used inside a command: the gas coin, a
// transaction input by position, or a previous command's result.
type Argument interface {
	argument()
}

// GasCoin refers to the coin object funding gas for this transaction.
type GasCoin struct{}

// Input refers to the transaction input at the given position.
type Input struct {
	Index uint16
}

// Result refers to the single result of an earlier command.
type Result struct {
	Index uint16
}

// NestedResult refers to one element of an earlier command's result tuple.
type NestedResult struct {
	Command uint16 // Index of the producing command
	Result  uint16 // Position within that command's results
}

func (GasCoin) argument()      {}
func (Input) argument()        {}
func (Result) argument()       {}
func (NestedResult) argument() {}

// Command is one instruction in a programmable transaction. Commands
// execute in sequence; wire tag values are fixed by the protocol and kept
// in the versioned tag table, never inline.
type Command interface {
	command()
}

// MoveCall invokes an entry function of a published package.
type MoveCall struct {
	Package  types.Address // Package object the module lives in
	Module   string        // Module name within the package
	Function string        // Entry function name
	TypeArgs []TypeTag     // Generic type arguments
	Args     []Argument    // Value arguments
}

// TransferObjects sends a list of objects to one address. Address is an
// Argument (typically an Input carrying a pure 32-byte address).
type TransferObjects struct {
	Objects []Argument
	Address Argument
}

// SplitCoins splits amounts off a coin, producing one new coin per amount.
type SplitCoins struct {
	Coin    Argument
	Amounts []Argument
}

// MergeCoins merges the balances of Sources into Destination.
type MergeCoins struct {
	Destination Argument
	Sources     []Argument
}

// Publish uploads compiled module bytecode as a new package.
type Publish struct {
	Modules      [][]byte        // Compiled module bytes
	Dependencies []types.Address // Packages the modules link against
}

// MakeMoveVec assembles a vector value from individual elements. Type is
// required when Elements is empty and optional otherwise.
type MakeMoveVec struct {
	Type     *TypeTag
	Elements []Argument
}

// Upgrade replaces the bytecode of an existing package.
type Upgrade struct {
	Modules      [][]byte
	Dependencies []types.Address
	Package      types.Address // Package being upgraded
	Ticket       Argument      // Upgrade capability ticket
}

func (MoveCall) command()        {}
func (TransferObjects) command() {}
func (SplitCoins) command()      {}
func (MergeCoins) command()      {}
func (Publish) command()         {}
func (MakeMoveVec) command()     {}
func (Upgrade) command()         {}

// TransactionKind is the transaction body. ProgrammableTransaction is the
// only kind this module produces.
type TransactionKind interface {
	transactionKind()
}

// ProgrammableTransaction is an ordered list of inputs and an ordered list
// of commands addressing them by position. Order is semantically
// significant on both lists.
type ProgrammableTransaction struct {
	Inputs   []CallArg
	Commands []Command
}

func (ProgrammableTransaction) transactionKind() {}

// Expiration bounds the epochs in which a transaction may execute. The
// zero value means no expiration.
type Expiration struct {
	Epoch *uint64 // nil = no expiration
}

// ExpireAtEpoch returns an Expiration bound to the given epoch.
func ExpireAtEpoch(epoch uint64) Expiration {
	return Expiration{Epoch: &epoch}
}

// TransactionData is a complete unsigned transaction. Instances are
// produced once by the Builder and never mutated; every downstream stage
// (serialize, hash, sign) is a pure function of the value.
type TransactionData struct {
	Version    uint8
	Sender     types.Address
	GasData    types.GasData
	Kind       TransactionKind
	Expiration Expiration
}

// SignedTransaction pairs a transaction with one or more signature blobs
// (scheme flag + signature + recovery material, see the signing package).
type SignedTransaction struct {
	Data       *TransactionData
	Signatures [][]byte
}

// Valid reports whether the transaction carries at least one signature.
// This is a structural check only; it does not verify the signatures
// cryptographically.
func (s *SignedTransaction) Valid() bool {
	return len(s.Signatures) > 0
}
