package keyring

import (
	"fmt"

	"github.com/tyler-smith/go-bip39"
)

// NewRandomPhrase generates a fresh BIP-39 English mnemonic with the given
// number of words: 12, 15, 18, 21 or 24. The result is a secret; the caller
// owns its safe handling from here on.
func NewRandomPhrase(words int) (string, error) {
	if words < 12 || words > 24 || words%3 != 0 {
		return "", fmt.Errorf("mnemonic word count must be 12, 15, 18, 21 or 24, got %d", words)
	}
	entropy, err := bip39.NewEntropy(words / 3 * 32)
	if err != nil {
		return "", fmt.Errorf("generate entropy: %w", err)
	}
	phrase, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", fmt.Errorf("build mnemonic: %w", err)
	}
	return phrase, nil
}
