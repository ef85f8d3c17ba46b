// Package api provides the high-level entry points for building, signing,
// and submitting programmable transactions.
//
// The package composes the lower layers end to end:
//
//  1. Fetch owned coins and object references over the injected fetchers
//  2. Select coins covering the payment (coins package)
//  3. Assemble the transaction with a builder recipe (tx package)
//  4. Digest and sign (signing package)
//  5. Submit the serialized bytes and base64 signatures
//
// Network access stays behind small interfaces so the package works
// against any RPC transport and tests run against in-memory fakes.
package api

import (
	"context"

	"github.com/suffix-labs/sui-txkit/pkg/types"
)

// CoinFetcher retrieves the coin objects an address owns.
type CoinFetcher interface {
	FetchCoins(ctx context.Context, owner types.Address) ([]types.Coin, error)
}

// ObjectFetcher resolves an object ID to its current versioned reference.
type ObjectFetcher interface {
	FetchObject(ctx context.Context, id types.Address) (types.ObjectRef, error)
}

// Submitter sends a signed transaction to the ledger. Signatures are
// base64-encoded blobs; the returned string is the transaction digest
// assigned by the ledger.
type Submitter interface {
	SubmitSigned(ctx context.Context, txBytes []byte, signatures []string) (string, error)
}
