// sui-txkit CLI - offline transaction construction and signing.
//
// The CLI runs entirely offline: it derives addresses from keys and
// builds, signs, and prints transfer transactions without contacting a
// node. Object versions and digests for the gas coin are supplied on the
// command line.
//
// Example usage:
//
//	# Derive the address controlled by a secp256k1 key
//	sui-txkit derive-address --key <64 hex chars>
//
//	# Build and sign a coin transfer, printing base64 tx bytes and signature
//	sui-txkit build-transfer \
//	  --key <64 hex chars> \
//	  --to 0x42... \
//	  --amount 1000000000 \
//	  --gas-object 0xaa...:7:9wzsChGkfH6XjZZwvFE8JLLUVH6hAXM7Lu3YqeWkbGt5
package main

import (
	"context"
	"encoding/base64"
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/suffix-labs/sui-txkit/pkg/api"
	"github.com/suffix-labs/sui-txkit/pkg/crypto"
	"github.com/suffix-labs/sui-txkit/pkg/signing"
	"github.com/suffix-labs/sui-txkit/pkg/tx"
	"github.com/suffix-labs/sui-txkit/pkg/types"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	log := zerolog.New(os.Stderr).With().Timestamp().Logger()

	var err error
	switch command := os.Args[1]; command {
	case "derive-address":
		err = cmdDeriveAddress(os.Args[2:])
	case "build-transfer":
		err = cmdBuildTransfer(os.Args[2:])
	case "version":
		fmt.Println("sui-txkit v0.1.0")
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
	if err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`sui-txkit - offline transaction construction and signing

Usage:
  sui-txkit <command> [options]

Commands:
  derive-address    Derive the ledger address for a secp256k1 private key
  build-transfer    Build and sign a coin transfer offline
  version           Show version information
  help              Show this help message

Examples:
  sui-txkit derive-address --key 1111...1111

  sui-txkit build-transfer \
    --key 1111...1111 \
    --to 0x42 \
    --amount 1000000000 \
    --gas-object 0xaa:7:9wzsChGkfH6XjZZwvFE8JLLUVH6hAXM7Lu3YqeWkbGt5 \
    --gas-price 1000 \
    --gas-budget 10000000`)
}

func cmdDeriveAddress(args []string) error {
	fs := flag.NewFlagSet("derive-address", flag.ExitOnError)
	keyHex := fs.String("key", "", "secp256k1 private key, 64 hex chars")
	if err := fs.Parse(args); err != nil {
		return err
	}

	signer, err := signerFromHex(*keyHex)
	if err != nil {
		return err
	}

	fmt.Println(signer.Address())
	return nil
}

func cmdBuildTransfer(args []string) error {
	fs := flag.NewFlagSet("build-transfer", flag.ExitOnError)
	keyHex := fs.String("key", "", "secp256k1 private key, 64 hex chars")
	to := fs.String("to", "", "recipient address")
	amount := fs.Uint64("amount", 0, "amount in mist")
	gasObject := fs.String("gas-object", "", "gas coin as id:version:digest")
	gasPrice := fs.Uint64("gas-price", api.DefaultGasPrice, "gas price in mist")
	gasBudget := fs.Uint64("gas-budget", api.DefaultGasBudget, "gas budget in mist")
	if err := fs.Parse(args); err != nil {
		return err
	}

	signer, err := signerFromHex(*keyHex)
	if err != nil {
		return err
	}
	recipient, err := types.ParseAddress(*to)
	if err != nil {
		return fmt.Errorf("parse recipient: %w", err)
	}
	gasRef, err := parseObjectRef(*gasObject)
	if err != nil {
		return fmt.Errorf("parse gas object: %w", err)
	}

	sender := signer.Address()
	data, err := api.BuildCoinTransfer(sender, recipient, *amount, types.GasData{
		Payment: []types.ObjectRef{gasRef},
		Owner:   sender,
		Price:   *gasPrice,
		Budget:  *gasBudget,
	})
	if err != nil {
		return fmt.Errorf("build transfer: %w", err)
	}

	signed, err := signing.SignTransaction(context.Background(), data, signer)
	if err != nil {
		return err
	}
	raw, err := tx.Serialize(data)
	if err != nil {
		return err
	}

	fmt.Printf("sender:    %s\n", sender)
	fmt.Printf("tx_bytes:  %s\n", base64.StdEncoding.EncodeToString(raw))
	fmt.Printf("signature: %s\n", signing.EncodeSignatures(signed.Signatures)[0])
	return nil
}

func signerFromHex(keyHex string) (*crypto.Secp256k1Signer, error) {
	raw, err := hex.DecodeString(strings.TrimPrefix(keyHex, "0x"))
	if err != nil {
		return nil, fmt.Errorf("decode private key hex: %w", err)
	}
	return crypto.NewSecp256k1Signer(raw)
}

// parseObjectRef parses an id:version:digest triple.
func parseObjectRef(s string) (types.ObjectRef, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return types.ObjectRef{}, fmt.Errorf("want id:version:digest, got %q", s)
	}

	id, err := types.ParseAddress(parts[0])
	if err != nil {
		return types.ObjectRef{}, err
	}
	version, err := strconv.ParseUint(parts[1], 10, 64)
	if err != nil {
		return types.ObjectRef{}, fmt.Errorf("parse version: %w", err)
	}
	digest, err := types.NormalizeDigest(parts[2])
	if err != nil {
		return types.ObjectRef{}, err
	}

	return types.ObjectRef{ObjectID: id, Version: version, Digest: digest}, nil
}
