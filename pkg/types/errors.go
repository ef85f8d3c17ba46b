package types

import "fmt"

// InvalidAddressLengthError is returned when hex input decodes to more
// than the 32 bytes an address can hold. Shorter input is not an error;
// it is left-zero-padded.
type InvalidAddressLengthError struct {
	Got int // Decoded byte length
}

func (e *InvalidAddressLengthError) Error() string {
	return fmt.Sprintf("invalid address length: need at most %d bytes, got %d", AddressLength, e.Got)
}

// InvalidDigestEncodingError is returned when digest text decodes under
// neither base58 nor base64.
type InvalidDigestEncodingError struct {
	Value string // The undecodable input
}

func (e *InvalidDigestEncodingError) Error() string {
	return fmt.Sprintf("digest %q is neither valid base58 nor base64", e.Value)
}
