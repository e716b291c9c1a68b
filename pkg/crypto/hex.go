package crypto

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidHex rejects strings that do not decode as hexadecimal.
var ErrInvalidHex = errors.New("invalid hex string")

// Unhex decodes a hexadecimal string, with or without a 0x prefix. Odd
// lengths and non-hex characters fail; shape checks are the caller's job.
func Unhex(s string) ([]byte, error) {
	b, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidHex, err)
	}
	return b, nil
}
