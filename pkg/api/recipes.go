package api

import (
	"github.com/suffix-labs/sui-txkit/pkg/bcs"
	"github.com/suffix-labs/sui-txkit/pkg/tx"
	"github.com/suffix-labs/sui-txkit/pkg/types"
)

// BuildCoinTransfer assembles the canonical coin transfer: split the
// requested amount off the gas coin, then transfer the new coin to the
// recipient.
func BuildCoinTransfer(sender, recipient types.Address, amount uint64, gas types.GasData) (*tx.TransactionData, error) {
	b := tx.NewBuilder()
	amt := b.AddPureInput(bcs.EncodeU64LE(amount))
	rcpt := b.AddPureInput(recipient[:])
	split := b.SplitCoins(tx.GasCoin{}, []tx.Argument{tx.Input{Index: amt}})
	b.TransferObjects([]tx.Argument{tx.Result{Index: split}}, tx.Input{Index: rcpt})
	return b.Build(sender, gas)
}

// BuildObjectTransfer assembles a transfer of whole objects to one
// recipient.
func BuildObjectTransfer(sender, recipient types.Address, objects []types.ObjectRef, gas types.GasData) (*tx.TransactionData, error) {
	b := tx.NewBuilder()
	rcpt := b.AddPureInput(recipient[:])

	args := make([]tx.Argument, len(objects))
	for i, ref := range objects {
		args[i] = tx.Input{Index: b.AddObjectInput(ref)}
	}
	b.TransferObjects(args, tx.Input{Index: rcpt})
	return b.Build(sender, gas)
}

// BuildMergeCoins assembles a merge of source coins into a destination
// coin.
func BuildMergeCoins(sender types.Address, destination types.ObjectRef, sources []types.ObjectRef, gas types.GasData) (*tx.TransactionData, error) {
	b := tx.NewBuilder()
	dst := b.AddObjectInput(destination)

	args := make([]tx.Argument, len(sources))
	for i, ref := range sources {
		args[i] = tx.Input{Index: b.AddObjectInput(ref)}
	}
	b.MergeCoins(tx.Input{Index: dst}, args)
	return b.Build(sender, gas)
}

// MoveCallParams names the target and arguments of a single MoveCall
// transaction.
type MoveCallParams struct {
	Package  types.Address
	Module   string
	Function string
	TypeArgs []tx.TypeTag
	Pure     [][]byte          // BCS-encoded value arguments, in call order
	Objects  []types.ObjectRef // Object arguments, appended after Pure
}

// BuildMoveCall assembles a transaction invoking one entry function. Pure
// arguments precede object arguments in the call's argument list.
func BuildMoveCall(sender types.Address, call MoveCallParams, gas types.GasData) (*tx.TransactionData, error) {
	b := tx.NewBuilder()

	args := make([]tx.Argument, 0, len(call.Pure)+len(call.Objects))
	for _, raw := range call.Pure {
		args = append(args, tx.Input{Index: b.AddPureInput(raw)})
	}
	for _, ref := range call.Objects {
		args = append(args, tx.Input{Index: b.AddObjectInput(ref)})
	}

	b.MoveCall(call.Package, call.Module, call.Function, call.TypeArgs, args)
	return b.Build(sender, gas)
}
