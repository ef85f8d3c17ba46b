package tx

import (
	"fmt"

	"github.com/suffix-labs/sui-txkit/pkg/bcs"
	"github.com/suffix-labs/sui-txkit/pkg/types"
)

// Serialize encodes a TransactionData into its canonical BCS byte
// sequence, the exact image the ledger hashes and verifies signatures
// over.
//
// Field order is fixed by the wire protocol:
//
//	kind tag || inputs || commands || sender || gas data || expiration
//
// Counts and variant tags are ULEB128; versions, amounts, and gas fields
// are u64 little-endian; argument indices inside commands are u16
// little-endian. The function is pure: identical input always yields
// identical bytes.
func Serialize(data *TransactionData) ([]byte, error) {
	tags, ok := commandTags[data.Version]
	if !ok {
		return nil, &UnsupportedVersionError{Version: data.Version}
	}

	enc := bcs.NewEncoder()

	switch kind := data.Kind.(type) {
	case ProgrammableTransaction:
		enc.WriteULEB128(uint64(tagKindProgrammable))
		if err := serializeProgrammable(enc, tags, kind); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown transaction kind %T", data.Kind)
	}

	if err := enc.WriteFixedBytes(data.Sender[:], types.AddressLength); err != nil {
		return nil, err
	}
	if err := serializeGasData(enc, &data.GasData); err != nil {
		return nil, err
	}
	serializeExpiration(enc, data.Expiration)

	return enc.Bytes(), nil
}

func serializeProgrammable(enc *bcs.Encoder, tags commandTagTable, pt ProgrammableTransaction) error {
	enc.WriteULEB128(uint64(len(pt.Inputs)))
	for i, input := range pt.Inputs {
		if err := serializeCallArg(enc, input); err != nil {
			return fmt.Errorf("input %d: %w", i, err)
		}
	}

	enc.WriteULEB128(uint64(len(pt.Commands)))
	for i, cmd := range pt.Commands {
		if err := serializeCommand(enc, tags, cmd); err != nil {
			return fmt.Errorf("command %d: %w", i, err)
		}
	}
	return nil
}

func serializeCallArg(enc *bcs.Encoder, arg CallArg) error {
	switch a := arg.(type) {
	case Pure:
		enc.WriteULEB128(uint64(tagCallArgPure))
		enc.WriteBytes(a.Bytes)
		return nil
	case Object:
		enc.WriteULEB128(uint64(tagCallArgObject))
		return serializeObjectRef(enc, a.Ref)
	default:
		return fmt.Errorf("unknown call arg type %T", arg)
	}
}

func serializeObjectRef(enc *bcs.Encoder, ref types.ObjectRef) error {
	if err := enc.WriteFixedBytes(ref.ObjectID[:], types.AddressLength); err != nil {
		return err
	}
	enc.WriteU64LE(ref.Version)
	enc.WriteBytes(ref.Digest[:])
	return nil
}

func serializeArgument(enc *bcs.Encoder, arg Argument) error {
	switch a := arg.(type) {
	case GasCoin:
		enc.WriteULEB128(uint64(tagArgGasCoin))
	case Input:
		enc.WriteULEB128(uint64(tagArgInput))
		enc.WriteU16LE(a.Index)
	case Result:
		enc.WriteULEB128(uint64(tagArgResult))
		enc.WriteU16LE(a.Index)
	case NestedResult:
		enc.WriteULEB128(uint64(tagArgNestedResult))
		enc.WriteU16LE(a.Command)
		enc.WriteU16LE(a.Result)
	default:
		return fmt.Errorf("unknown argument type %T", arg)
	}
	return nil
}

func serializeArguments(enc *bcs.Encoder, args []Argument) error {
	enc.WriteULEB128(uint64(len(args)))
	for _, arg := range args {
		if err := serializeArgument(enc, arg); err != nil {
			return err
		}
	}
	return nil
}

func serializeCommand(enc *bcs.Encoder, tags commandTagTable, cmd Command) error {
	tag, err := tags.commandTag(cmd)
	if err != nil {
		return err
	}
	enc.WriteULEB128(uint64(tag))

	switch c := cmd.(type) {
	case MoveCall:
		if err := enc.WriteFixedBytes(c.Package[:], types.AddressLength); err != nil {
			return err
		}
		enc.WriteString(c.Module)
		enc.WriteString(c.Function)
		enc.WriteULEB128(uint64(len(c.TypeArgs)))
		for _, ta := range c.TypeArgs {
			if err := serializeTypeTag(enc, ta); err != nil {
				return err
			}
		}
		return serializeArguments(enc, c.Args)

	case TransferObjects:
		if err := serializeArguments(enc, c.Objects); err != nil {
			return err
		}
		return serializeArgument(enc, c.Address)

	case SplitCoins:
		if err := serializeArgument(enc, c.Coin); err != nil {
			return err
		}
		return serializeArguments(enc, c.Amounts)

	case MergeCoins:
		if err := serializeArgument(enc, c.Destination); err != nil {
			return err
		}
		return serializeArguments(enc, c.Sources)

	case Publish:
		serializeModules(enc, c.Modules)
		return serializeAddresses(enc, c.Dependencies)

	case MakeMoveVec:
		if c.Type == nil {
			enc.WriteU8(0x00)
		} else {
			enc.WriteU8(0x01)
			if err := serializeTypeTag(enc, *c.Type); err != nil {
				return err
			}
		}
		return serializeArguments(enc, c.Elements)

	case Upgrade:
		serializeModules(enc, c.Modules)
		if err := serializeAddresses(enc, c.Dependencies); err != nil {
			return err
		}
		if err := enc.WriteFixedBytes(c.Package[:], types.AddressLength); err != nil {
			return err
		}
		return serializeArgument(enc, c.Ticket)

	default:
		return fmt.Errorf("unknown command type %T", cmd)
	}
}

func serializeModules(enc *bcs.Encoder, modules [][]byte) {
	enc.WriteULEB128(uint64(len(modules)))
	for _, m := range modules {
		enc.WriteBytes(m)
	}
}

func serializeAddresses(enc *bcs.Encoder, addrs []types.Address) error {
	enc.WriteULEB128(uint64(len(addrs)))
	for _, a := range addrs {
		if err := enc.WriteFixedBytes(a[:], types.AddressLength); err != nil {
			return err
		}
	}
	return nil
}

func serializeTypeTag(enc *bcs.Encoder, tag TypeTag) error {
	enc.WriteULEB128(uint64(tag.Kind))
	switch tag.Kind {
	case TypeVector:
		if tag.Vector == nil {
			return fmt.Errorf("vector type tag missing element type")
		}
		return serializeTypeTag(enc, *tag.Vector)
	case TypeStruct:
		if tag.Struct == nil {
			return fmt.Errorf("struct type tag missing struct")
		}
		st := tag.Struct
		if err := enc.WriteFixedBytes(st.Address[:], types.AddressLength); err != nil {
			return err
		}
		enc.WriteString(st.Module)
		enc.WriteString(st.Name)
		enc.WriteULEB128(uint64(len(st.TypeParams)))
		for _, p := range st.TypeParams {
			if err := serializeTypeTag(enc, p); err != nil {
				return err
			}
		}
	}
	return nil
}

func serializeGasData(enc *bcs.Encoder, gas *types.GasData) error {
	enc.WriteULEB128(uint64(len(gas.Payment)))
	for _, ref := range gas.Payment {
		if err := serializeObjectRef(enc, ref); err != nil {
			return err
		}
	}
	if err := enc.WriteFixedBytes(gas.Owner[:], types.AddressLength); err != nil {
		return err
	}
	enc.WriteU64LE(gas.Price)
	enc.WriteU64LE(gas.Budget)
	return nil
}

func serializeExpiration(enc *bcs.Encoder, exp Expiration) {
	if exp.Epoch == nil {
		enc.WriteULEB128(uint64(tagExpirationNone))
		return
	}
	enc.WriteULEB128(uint64(tagExpirationEpoch))
	enc.WriteU64LE(*exp.Epoch)
}
