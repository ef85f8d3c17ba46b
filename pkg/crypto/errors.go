package crypto

import (
	"fmt"
)

// InvalidKeyLengthError reports key material whose length does not match
// what its scheme serializes.
type InvalidKeyLengthError struct {
	Scheme Scheme
	Want   int
	Got    int
}

func (e *InvalidKeyLengthError) Error() string {
	return fmt.Sprintf("%s key must be %d bytes, got %d", e.Scheme, e.Want, e.Got)
}
