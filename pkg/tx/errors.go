package tx

import (
	"errors"
	"fmt"
)

// ErrAlreadyBuilt is returned by Build when the builder has already
// produced its TransactionData. Builders are single-shot.
var ErrAlreadyBuilt = errors.New("builder already built")

// InputRangeError reports a command argument referencing a transaction
// input position that does not exist.
type InputRangeError struct {
	Command int    // Index of the referencing command
	Index   uint16 // The out-of-range input index
	Inputs  int    // Number of inputs actually present
}

func (e *InputRangeError) Error() string {
	return fmt.Sprintf("command %d references input %d, but only %d inputs exist",
		e.Command, e.Index, e.Inputs)
}

// ResultRangeError reports a Result or NestedResult referencing a command
// that does not execute before the referencing command. Commands run in
// sequence, so a result reference must point strictly backwards.
type ResultRangeError struct {
	Command int    // Index of the referencing command
	Target  uint16 // The referenced command index
}

func (e *ResultRangeError) Error() string {
	return fmt.Sprintf("command %d references result of command %d, which does not precede it",
		e.Command, e.Target)
}

// UnsupportedVersionError reports a TransactionData version with no
// command tag table, which cannot be serialized.
type UnsupportedVersionError struct {
	Version uint8
}

func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("unsupported transaction data version %d", e.Version)
}
