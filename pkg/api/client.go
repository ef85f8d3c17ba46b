package api

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/suffix-labs/sui-txkit/pkg/coins"
	"github.com/suffix-labs/sui-txkit/pkg/crypto"
	"github.com/suffix-labs/sui-txkit/pkg/signing"
	"github.com/suffix-labs/sui-txkit/pkg/tx"
	"github.com/suffix-labs/sui-txkit/pkg/types"
)

// Default gas parameters, applied unless overridden with options.
const (
	DefaultGasPrice  uint64 = 1000
	DefaultGasBudget uint64 = 10_000_000
)

// Option configures a Client.
type Option func(*Client)

// WithGasPrice overrides the gas price attached to built transactions.
func WithGasPrice(price uint64) Option {
	return func(c *Client) {
		c.gasPrice = price
	}
}

// WithGasBudget overrides the gas budget attached to built transactions.
func WithGasBudget(budget uint64) Option {
	return func(c *Client) {
		c.gasBudget = budget
	}
}

// Client drives the full transaction lifecycle for one signer: coin
// selection, transaction assembly, signing, and submission.
type Client struct {
	log     zerolog.Logger
	coins   CoinFetcher
	objects ObjectFetcher
	submit  Submitter
	signer  signing.Signer

	gasPrice  uint64
	gasBudget uint64
}

// New creates a Client around the given fetchers, submitter, and signer.
func New(log zerolog.Logger, coins CoinFetcher, objects ObjectFetcher, submit Submitter, signer signing.Signer, opts ...Option) *Client {
	c := &Client{
		log:       log.With().Str("component", "client").Logger(),
		coins:     coins,
		objects:   objects,
		submit:    submit,
		signer:    signer,
		gasPrice:  DefaultGasPrice,
		gasBudget: DefaultGasBudget,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Address returns the ledger address controlled by the client's signer.
func (c *Client) Address(ctx context.Context) (types.Address, error) {
	pub, err := c.signer.PublicKey(ctx)
	if err != nil {
		return types.Address{}, fmt.Errorf("get signer public key: %w", err)
	}
	return crypto.DeriveAddress(pub, c.signer.Scheme())
}

// TransferCoins sends amount mist to recipient, funding both the payment
// and gas from the sender's owned coins. It returns the transaction
// digest assigned by the ledger.
func (c *Client) TransferCoins(ctx context.Context, recipient types.Address, amount uint64) (string, error) {
	sender, err := c.Address(ctx)
	if err != nil {
		return "", err
	}

	gas, err := c.selectGas(ctx, sender, amount+c.gasBudget)
	if err != nil {
		return "", err
	}

	data, err := BuildCoinTransfer(sender, recipient, amount, gas)
	if err != nil {
		return "", fmt.Errorf("build transfer: %w", err)
	}

	c.log.Debug().
		Str("sender", sender.String()).
		Str("recipient", recipient.String()).
		Uint64("amount", amount).
		Int("gas_coins", len(gas.Payment)).
		Msg("transfer assembled")

	return c.execute(ctx, data)
}

// TransferObjects sends the objects with the given IDs to recipient. The
// current version and digest of each object are resolved through the
// object fetcher.
func (c *Client) TransferObjects(ctx context.Context, recipient types.Address, ids []types.Address) (string, error) {
	sender, err := c.Address(ctx)
	if err != nil {
		return "", err
	}

	refs := make([]types.ObjectRef, len(ids))
	for i, id := range ids {
		ref, err := c.objects.FetchObject(ctx, id)
		if err != nil {
			return "", fmt.Errorf("fetch object %s: %w", id, err)
		}
		refs[i] = ref
	}

	gas, err := c.selectGas(ctx, sender, c.gasBudget)
	if err != nil {
		return "", err
	}

	data, err := BuildObjectTransfer(sender, recipient, refs, gas)
	if err != nil {
		return "", fmt.Errorf("build object transfer: %w", err)
	}

	return c.execute(ctx, data)
}

// MoveCall signs and submits a single MoveCall transaction.
func (c *Client) MoveCall(ctx context.Context, call MoveCallParams) (string, error) {
	sender, err := c.Address(ctx)
	if err != nil {
		return "", err
	}

	gas, err := c.selectGas(ctx, sender, c.gasBudget)
	if err != nil {
		return "", err
	}

	data, err := BuildMoveCall(sender, call, gas)
	if err != nil {
		return "", fmt.Errorf("build move call: %w", err)
	}

	return c.execute(ctx, data)
}

// selectGas fetches the sender's coins, selects enough to cover target,
// and packages the selection as gas data.
func (c *Client) selectGas(ctx context.Context, sender types.Address, target uint64) (types.GasData, error) {
	owned, err := c.coins.FetchCoins(ctx, sender)
	if err != nil {
		return types.GasData{}, fmt.Errorf("fetch coins: %w", err)
	}

	selected, err := coins.Select(owned, target)
	if err != nil {
		return types.GasData{}, err
	}

	payment := make([]types.ObjectRef, len(selected))
	for i, coin := range selected {
		payment[i] = coin.ObjectRef
	}

	return types.GasData{
		Payment: payment,
		Owner:   sender,
		Price:   c.gasPrice,
		Budget:  c.gasBudget,
	}, nil
}

// execute signs a built transaction and submits it.
func (c *Client) execute(ctx context.Context, data *tx.TransactionData) (string, error) {
	signed, err := signing.SignTransaction(ctx, data, c.signer)
	if err != nil {
		return "", err
	}

	raw, err := tx.Serialize(data)
	if err != nil {
		return "", fmt.Errorf("serialize transaction: %w", err)
	}

	digest, err := c.submit.SubmitSigned(ctx, raw, signing.EncodeSignatures(signed.Signatures))
	if err != nil {
		return "", fmt.Errorf("submit transaction: %w", err)
	}

	c.log.Info().
		Str("digest", digest).
		Int("tx_bytes", len(raw)).
		Msg("transaction submitted")

	return digest, nil
}
