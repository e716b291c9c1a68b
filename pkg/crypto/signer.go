package crypto

import (
	"bytes"
	"errors"
	"fmt"
)

// ErrWrongPublicKeyLength rejects raw public keys whose length does not match
// the encryption scheme they claim to belong to.
var ErrWrongPublicKeyLength = errors.New("public key length does not match encryption scheme")

// SignerKind tags the variant held inside a MultiSigner. The values double as
// the variant tags inside encoded address keys. Ecdsa and Ethereum keys share
// SignerEcdsa: the key material is identical and the display scheme travels
// separately.
type SignerKind uint8

const (
	SignerEd25519 SignerKind = iota
	SignerSr25519
	SignerEcdsa
)

// MultiSigner is a raw public key tagged with the variant that produced it,
// the network-agnostic identity of an account. The zero value carries no key
// material and is not a valid signer.
type MultiSigner struct {
	kind   SignerKind
	public []byte
}

// NewMultiSigner validates raw public key bytes against the scheme's exact
// expected length and wraps them. The bytes are copied, so later mutation of
// the caller's slice cannot reach the signer.
func NewMultiSigner(public []byte, enc Encryption) (MultiSigner, error) {
	var kind SignerKind
	switch enc {
	case Ed25519:
		kind = SignerEd25519
	case Sr25519:
		kind = SignerSr25519
	case Ecdsa, Ethereum:
		kind = SignerEcdsa
	default:
		return MultiSigner{}, fmt.Errorf("unsupported encryption scheme %s", enc)
	}
	if len(public) != enc.PublicKeyLength() {
		return MultiSigner{}, fmt.Errorf("%w: %s expects %d bytes, got %d",
			ErrWrongPublicKeyLength, enc, enc.PublicKeyLength(), len(public))
	}
	return MultiSigner{kind: kind, public: bytes.Clone(public)}, nil
}

// Kind returns the variant tag.
func (m MultiSigner) Kind() SignerKind { return m.kind }

// PublicKey returns a copy of the raw public key bytes.
func (m MultiSigner) PublicKey() []byte { return bytes.Clone(m.public) }

// Encryption returns the scheme family of the key. Keys derived under the
// Ethereum scheme report Ecdsa here since the variants are shared; the caller
// owns the display scheme tag.
func (m MultiSigner) Encryption() Encryption {
	switch m.kind {
	case SignerSr25519:
		return Sr25519
	case SignerEcdsa:
		return Ecdsa
	default:
		return Ed25519
	}
}

// Equal reports structural equality, same variant and same key bytes.
func (m MultiSigner) Equal(other MultiSigner) bool {
	return m.kind == other.kind && bytes.Equal(m.public, other.public)
}

// IsZero reports whether the signer holds no key material.
func (m MultiSigner) IsZero() bool { return len(m.public) == 0 }
