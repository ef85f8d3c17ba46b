package coins

import (
	"fmt"
)

// InsufficientBalanceError reports that the owned coins cannot cover the
// requested amount.
type InsufficientBalanceError struct {
	Needed    uint64 // Amount requested, in mist
	Available uint64 // Sum of all owned coin balances, in mist
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance: need %d mist, have %d mist",
		e.Needed, e.Available)
}
