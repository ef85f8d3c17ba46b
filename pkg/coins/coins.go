// Package coins selects coin objects to fund a payment.
//
// Corresponds to the gas/coin selection logic in
// sui/crates/sui-sdk/src/apis.rs (select_coins).
package coins

import (
	"sort"

	"github.com/suffix-labs/sui-txkit/pkg/types"
)

// Select picks coins from available whose balances sum to at least target.
//
// Selection is greedy over descending balance, so it returns the fewest
// coins a largest-first strategy can achieve. The input slice is never
// modified, and coins with equal balance keep their relative order, which
// makes selection deterministic for a fixed input.
//
// If the total balance of available is below target, no selection is
// attempted and an InsufficientBalanceError reports both sides of the
// shortfall.
func Select(available []types.Coin, target uint64) ([]types.Coin, error) {
	var total uint64
	for _, c := range available {
		total += c.Balance
	}
	if total < target {
		return nil, &InsufficientBalanceError{Needed: target, Available: total}
	}

	sorted := make([]types.Coin, len(available))
	copy(sorted, available)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Balance > sorted[j].Balance
	})

	var selected []types.Coin
	var sum uint64
	for _, c := range sorted {
		if sum >= target {
			break
		}
		selected = append(selected, c)
		sum += c.Balance
	}
	return selected, nil
}
