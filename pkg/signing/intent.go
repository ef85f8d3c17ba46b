package signing

// intentEnvelope is the three-byte intent prefix for transaction data:
// scope (TransactionData = 0), version (V0 = 0), app id (Sui = 0). It
// domain-separates transaction signatures from other signed payloads
// such as personal messages or checkpoint attestations.
var intentEnvelope = [3]byte{0x00, 0x00, 0x00}

// MessageWithIntent prepends the transaction intent envelope to
// serialized transaction bytes. The result is what the first-stage hash
// runs over.
func MessageWithIntent(txBytes []byte) []byte {
	out := make([]byte, 0, len(intentEnvelope)+len(txBytes))
	out = append(out, intentEnvelope[:]...)
	return append(out, txBytes...)
}
