package signing

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"fmt"

	"github.com/minio/blake2b-simd"

	"github.com/suffix-labs/sui-txkit/pkg/crypto"
	"github.com/suffix-labs/sui-txkit/pkg/tx"
)

// Pipeline stages, used by PipelineError to attribute failures.
const (
	StageSerialize = "serialize"
	StageDigest    = "digest"
	StageSign      = "sign"
	StagePublicKey = "public-key"
	StageAssemble  = "assemble"
)

// PipelineError wraps a failure with the signing stage it occurred in.
type PipelineError struct {
	Stage string
	Err   error
}

func (e *PipelineError) Error() string {
	return fmt.Sprintf("signing pipeline: %s: %v", e.Stage, e.Err)
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

// HashLengthMismatchError reports a hash primitive producing a digest of
// unexpected length.
type HashLengthMismatchError struct {
	Algorithm string
	Want      int
	Got       int
}

func (e *HashLengthMismatchError) Error() string {
	return fmt.Sprintf("%s digest must be %d bytes, got %d", e.Algorithm, e.Want, e.Got)
}

// SigningDigest computes the 32-byte digest a signer signs for a
// transaction: BCS-serialize, prepend the intent envelope, Blake2b-256,
// then SHA-256 over that hash. The second stage matches what ECDSA
// verifiers on the ledger recompute before checking the signature.
func SigningDigest(data *tx.TransactionData) ([32]byte, error) {
	var zero [32]byte

	raw, err := tx.Serialize(data)
	if err != nil {
		return zero, &PipelineError{Stage: StageSerialize, Err: err}
	}

	inner, err := blakeSum256(MessageWithIntent(raw))
	if err != nil {
		return zero, &PipelineError{Stage: StageDigest, Err: err}
	}

	return sha256.Sum256(inner[:]), nil
}

func blakeSum256(msg []byte) ([32]byte, error) {
	var out [32]byte

	h, err := blake2b.New(&blake2b.Config{Size: 32})
	if err != nil {
		return out, err
	}
	h.Write(msg)

	sum := h.Sum(nil)
	if len(sum) != 32 {
		return out, &HashLengthMismatchError{Algorithm: "blake2b", Want: 32, Got: len(sum)}
	}
	copy(out[:], sum)
	return out, nil
}

// AssembleSignature builds the wire signature blob:
//
//	scheme flag (1) || signature (64) || public key (scheme length)
//
// The public key travels with the signature so verifiers can both check
// the signature and re-derive the sender address.
func AssembleSignature(scheme crypto.Scheme, signature, publicKey []byte) ([]byte, error) {
	if len(signature) != crypto.CompactSignatureLength {
		return nil, fmt.Errorf("signature must be %d bytes, got %d",
			crypto.CompactSignatureLength, len(signature))
	}
	if want := scheme.PublicKeyLength(); len(publicKey) != want {
		return nil, &crypto.InvalidKeyLengthError{Scheme: scheme, Want: want, Got: len(publicKey)}
	}

	blob := make([]byte, 0, 1+len(signature)+len(publicKey))
	blob = append(blob, scheme.Flag())
	blob = append(blob, signature...)
	return append(blob, publicKey...), nil
}

// SignTransaction runs the full pipeline: digest the transaction, obtain
// a signature and public key from the signer, and assemble the signed
// transaction. Failures carry the stage they occurred in.
func SignTransaction(ctx context.Context, data *tx.TransactionData, signer Signer) (*tx.SignedTransaction, error) {
	digest, err := SigningDigest(data)
	if err != nil {
		return nil, err
	}

	sig, err := signer.Sign(ctx, digest[:])
	if err != nil {
		return nil, &PipelineError{Stage: StageSign, Err: err}
	}

	pub, err := signer.PublicKey(ctx)
	if err != nil {
		return nil, &PipelineError{Stage: StagePublicKey, Err: err}
	}

	blob, err := AssembleSignature(signer.Scheme(), sig, pub)
	if err != nil {
		return nil, &PipelineError{Stage: StageAssemble, Err: err}
	}

	return &tx.SignedTransaction{
		Data:       data,
		Signatures: [][]byte{blob},
	}, nil
}

// EncodeSignatures renders signature blobs in standard base64 with
// padding, the encoding the RPC surface expects.
func EncodeSignatures(blobs [][]byte) []string {
	out := make([]string, len(blobs))
	for i, blob := range blobs {
		out[i] = base64.StdEncoding.EncodeToString(blob)
	}
	return out
}
