package tx

import (
	"github.com/hashicorp/go-multierror"

	"github.com/suffix-labs/sui-txkit/pkg/types"
)

// Builder assembles a programmable transaction incrementally and produces
// an immutable TransactionData.
//
// The builder is arena-style: it holds two growable ordered sequences
// (inputs and commands) and every cross-reference is a plain integer index
// into one of them, never a pointer. Add methods return the index of the
// appended element so callers can wire later commands to earlier results.
//
// A builder moves through three states: empty, assembling, built. Build is
// terminal; calling an add method after Build panics, and calling Build
// again returns ErrAlreadyBuilt. Builders are not safe for concurrent use,
// but distinct builders share no state and may run concurrently.
type Builder struct {
	inputs   []CallArg
	commands []Command
	built    bool
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// AddPureInput appends an already-BCS-encoded value as a transaction input
// and returns its position. The bytes are opaque to the builder; encode
// them with the bcs package.
func (b *Builder) AddPureInput(raw []byte) uint16 {
	b.assertAssembling()
	b.inputs = append(b.inputs, Pure{Bytes: raw})
	return uint16(len(b.inputs) - 1)
}

// AddObjectInput appends an object reference as a transaction input and
// returns its position.
func (b *Builder) AddObjectInput(ref types.ObjectRef) uint16 {
	b.assertAssembling()
	b.inputs = append(b.inputs, Object{Ref: ref})
	return uint16(len(b.inputs) - 1)
}

// MoveCall appends a MoveCall command and returns its command index.
func (b *Builder) MoveCall(pkg types.Address, module, function string, typeArgs []TypeTag, args []Argument) uint16 {
	return b.appendCommand(MoveCall{
		Package:  pkg,
		Module:   module,
		Function: function,
		TypeArgs: typeArgs,
		Args:     args,
	})
}

// TransferObjects appends a TransferObjects command and returns its
// command index.
func (b *Builder) TransferObjects(objects []Argument, recipient Argument) uint16 {
	return b.appendCommand(TransferObjects{Objects: objects, Address: recipient})
}

// SplitCoins appends a SplitCoins command and returns its command index.
func (b *Builder) SplitCoins(coin Argument, amounts []Argument) uint16 {
	return b.appendCommand(SplitCoins{Coin: coin, Amounts: amounts})
}

// MergeCoins appends a MergeCoins command and returns its command index.
func (b *Builder) MergeCoins(destination Argument, sources []Argument) uint16 {
	return b.appendCommand(MergeCoins{Destination: destination, Sources: sources})
}

// Publish appends a Publish command and returns its command index.
func (b *Builder) Publish(modules [][]byte, dependencies []types.Address) uint16 {
	return b.appendCommand(Publish{Modules: modules, Dependencies: dependencies})
}

// MakeMoveVec appends a MakeMoveVec command and returns its command index.
func (b *Builder) MakeMoveVec(elemType *TypeTag, elements []Argument) uint16 {
	return b.appendCommand(MakeMoveVec{Type: elemType, Elements: elements})
}

// Upgrade appends an Upgrade command and returns its command index.
func (b *Builder) Upgrade(modules [][]byte, dependencies []types.Address, pkg types.Address, ticket Argument) uint16 {
	return b.appendCommand(Upgrade{Modules: modules, Dependencies: dependencies, Package: pkg, Ticket: ticket})
}

func (b *Builder) appendCommand(cmd Command) uint16 {
	b.assertAssembling()
	b.commands = append(b.commands, cmd)
	return uint16(len(b.commands) - 1)
}

func (b *Builder) assertAssembling() {
	if b.built {
		panic("tx: builder already built")
	}
}

// Build validates every argument reference, snapshots the accumulated
// inputs and commands, and returns an immutable TransactionData with
// version 1 and no expiration.
//
// Validation is eager and complete: each Input index must name an existing
// transaction input, and each Result/NestedResult must name a strictly
// earlier command. All violations are collected and returned together so
// a whole transaction can be fixed in one pass.
func (b *Builder) Build(sender types.Address, gas types.GasData) (*TransactionData, error) {
	if b.built {
		return nil, ErrAlreadyBuilt
	}
	if err := b.validate(); err != nil {
		return nil, err
	}
	b.built = true

	inputs := make([]CallArg, len(b.inputs))
	copy(inputs, b.inputs)
	commands := make([]Command, len(b.commands))
	copy(commands, b.commands)

	return &TransactionData{
		Version: TransactionDataVersion,
		Sender:  sender,
		GasData: gas,
		Kind: ProgrammableTransaction{
			Inputs:   inputs,
			Commands: commands,
		},
		Expiration: Expiration{},
	}, nil
}

func (b *Builder) validate() error {
	var result *multierror.Error

	for ci, cmd := range b.commands {
		for _, arg := range commandArguments(cmd) {
			switch a := arg.(type) {
			case Input:
				if int(a.Index) >= len(b.inputs) {
					result = multierror.Append(result, &InputRangeError{
						Command: ci,
						Index:   a.Index,
						Inputs:  len(b.inputs),
					})
				}
			case Result:
				if int(a.Index) >= ci {
					result = multierror.Append(result, &ResultRangeError{Command: ci, Target: a.Index})
				}
			case NestedResult:
				if int(a.Command) >= ci {
					result = multierror.Append(result, &ResultRangeError{Command: ci, Target: a.Command})
				}
			}
		}
	}

	return result.ErrorOrNil()
}

// commandArguments flattens every Argument a command carries, in the order
// it appears on the wire.
func commandArguments(cmd Command) []Argument {
	switch c := cmd.(type) {
	case MoveCall:
		return c.Args
	case TransferObjects:
		return append(append([]Argument{}, c.Objects...), c.Address)
	case SplitCoins:
		return append([]Argument{c.Coin}, c.Amounts...)
	case MergeCoins:
		return append([]Argument{c.Destination}, c.Sources...)
	case MakeMoveVec:
		return c.Elements
	case Upgrade:
		return []Argument{c.Ticket}
	default:
		return nil
	}
}
