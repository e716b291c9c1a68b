// Package crypto defines the encryption schemes and signer identities the
// wallet core works with, together with the display-address helpers.
package crypto

import (
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/vedhavyas/go-subkey"
	"github.com/vedhavyas/go-subkey/ecdsa"
	"github.com/vedhavyas/go-subkey/ed25519"
	"github.com/vedhavyas/go-subkey/sr25519"
)

// Encryption identifies one of the signature schemes supported by the wallet.
// The numeric values double as the scheme tags inside encoded keys, so they
// must never be reordered.
type Encryption uint8

const (
	Ed25519 Encryption = iota
	Sr25519
	Ecdsa
	Ethereum
)

// String returns the lowercase scheme name used in logs, JSON and config.
func (e Encryption) String() string {
	switch e {
	case Ed25519:
		return "ed25519"
	case Sr25519:
		return "sr25519"
	case Ecdsa:
		return "ecdsa"
	case Ethereum:
		return "ethereum"
	default:
		return fmt.Sprintf("encryption(%d)", uint8(e))
	}
}

// ParseEncryption maps a scheme name back to its Encryption value.
func ParseEncryption(name string) (Encryption, error) {
	switch name {
	case "ed25519":
		return Ed25519, nil
	case "sr25519":
		return Sr25519, nil
	case "ecdsa":
		return Ecdsa, nil
	case "ethereum":
		return Ethereum, nil
	default:
		return 0, fmt.Errorf("unknown encryption scheme %q", name)
	}
}

// PublicKeyLength returns the exact raw public key length the scheme expects:
// 32 bytes for the edwards/ristretto families, 33 for compressed secp256k1.
// Returns 0 for values outside the supported set.
func (e Encryption) PublicKeyLength() int {
	switch e {
	case Ed25519, Sr25519:
		return 32
	case Ecdsa, Ethereum:
		return 33
	default:
		return 0
	}
}

// Scheme returns the key-derivation scheme backing this encryption value.
// Ethereum derives through the ecdsa scheme; only address rendering differs.
func (e Encryption) Scheme() (subkey.Scheme, error) {
	switch e {
	case Ed25519:
		return ed25519.Scheme{}, nil
	case Sr25519:
		return sr25519.Scheme{}, nil
	case Ecdsa, Ethereum:
		return ecdsa.Scheme{}, nil
	default:
		return nil, fmt.Errorf("unsupported encryption scheme %s", e)
	}
}

// MarshalJSON renders the scheme as its lowercase name.
func (e Encryption) MarshalJSON() ([]byte, error) {
	switch e {
	case Ed25519, Sr25519, Ecdsa, Ethereum:
		return sonic.Marshal(e.String())
	default:
		return nil, fmt.Errorf("unsupported encryption scheme %s", e)
	}
}

// UnmarshalJSON parses the lowercase scheme name.
func (e *Encryption) UnmarshalJSON(data []byte) error {
	var name string
	if err := sonic.Unmarshal(data, &name); err != nil {
		return err
	}
	parsed, err := ParseEncryption(name)
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}
