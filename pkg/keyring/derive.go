package keyring

import (
	"errors"
	"fmt"

	"github.com/vedhavyas/go-subkey"

	"github.com/tensorplex-labs/kagi/pkg/crypto"
)

var (
	// ErrEmptySeed rejects derivation from an empty seed phrase.
	ErrEmptySeed = errors.New("empty seed phrase")

	// ErrSecretDerivation wraps the scheme-specific reason a combined secret
	// string was rejected, such as a bad mnemonic or an unsupported soft
	// junction.
	ErrSecretDerivation = errors.New("secret derivation failed")
)

// DeriveSigner deterministically derives the signer identity for a seed
// phrase and raw derivation path under the given scheme. The path is consumed
// unparsed, so a ///password suffix participates in the derivation. The
// combined secret lives in a single pre-sized buffer that is zeroed before
// return, on failure as well as success.
func DeriveSigner(seedPhrase, path string, enc crypto.Encryption) (crypto.MultiSigner, error) {
	if seedPhrase == "" {
		return crypto.MultiSigner{}, ErrEmptySeed
	}
	secret := newSecretURI(seedPhrase, path)
	defer secret.Wipe()
	return deriveSecret(secret, enc)
}

// deriveSecret runs the scheme deriver over the working buffer. Wiping the
// buffer stays the caller's responsibility.
func deriveSecret(secret *secretURI, enc crypto.Encryption) (crypto.MultiSigner, error) {
	scheme, err := enc.Scheme()
	if err != nil {
		return crypto.MultiSigner{}, fmt.Errorf("%w: %w", ErrSecretDerivation, err)
	}
	pair, err := subkey.DeriveKeyPair(scheme, secret.String())
	if err != nil {
		return crypto.MultiSigner{}, fmt.Errorf("%w: %w", ErrSecretDerivation, err)
	}
	return crypto.NewMultiSigner(pair.Public(), enc)
}
