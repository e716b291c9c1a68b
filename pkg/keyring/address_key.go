package keyring

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/ChainSafe/gossamer/lib/common"

	"github.com/tensorplex-labs/kagi/pkg/crypto"
)

// ErrMalformedKey rejects byte strings that do not decode as an address key.
var ErrMalformedKey = errors.New("malformed address key")

const genesisHashLength = 32

// AddressKey is the canonical store key of one derived identity: the signer
// bound to the genesis hash of the network it lives on, or to nothing for a
// root identity. The encoded form is a signer tag byte, the raw public key,
// an option byte, and the 32-byte hash when the option byte is 1. The zero
// value encodes to garbage that fails decoding; build keys through the
// constructors.
type AddressKey struct {
	signer      crypto.MultiSigner
	genesisHash common.Hash
	hasHash     bool
}

// NewAddressKey binds an already-validated signer to an optional network. A
// nil genesisHash produces a root identity key.
func NewAddressKey(signer crypto.MultiSigner, genesisHash *common.Hash) AddressKey {
	k := AddressKey{signer: signer}
	if genesisHash != nil {
		k.genesisHash = *genesisHash
		k.hasHash = true
	}
	return k
}

// AddressKeyFromParts validates the raw public key against the scheme and
// binds it to an optional network.
func AddressKeyFromParts(public []byte, enc crypto.Encryption, genesisHash *common.Hash) (AddressKey, error) {
	signer, err := crypto.NewMultiSigner(public, enc)
	if err != nil {
		return AddressKey{}, err
	}
	return NewAddressKey(signer, genesisHash), nil
}

// AddressKeyFromBytes decodes a store key. It fails closed: every byte must
// be accounted for by exactly one of the tagged shapes.
func AddressKeyFromBytes(b []byte) (AddressKey, error) {
	if len(b) == 0 {
		return AddressKey{}, fmt.Errorf("%w: empty", ErrMalformedKey)
	}
	var enc crypto.Encryption
	switch crypto.SignerKind(b[0]) {
	case crypto.SignerEd25519:
		enc = crypto.Ed25519
	case crypto.SignerSr25519:
		enc = crypto.Sr25519
	case crypto.SignerEcdsa:
		enc = crypto.Ecdsa
	default:
		return AddressKey{}, fmt.Errorf("%w: unknown signer tag %d", ErrMalformedKey, b[0])
	}
	keyLen := enc.PublicKeyLength()
	rest := b[1:]
	if len(rest) < keyLen+1 {
		return AddressKey{}, fmt.Errorf("%w: truncated", ErrMalformedKey)
	}
	signer, err := crypto.NewMultiSigner(rest[:keyLen], enc)
	if err != nil {
		return AddressKey{}, fmt.Errorf("%w: %w", ErrMalformedKey, err)
	}
	rest = rest[keyLen:]
	switch rest[0] {
	case 0:
		if len(rest) != 1 {
			return AddressKey{}, fmt.Errorf("%w: trailing bytes after empty network option", ErrMalformedKey)
		}
		return NewAddressKey(signer, nil), nil
	case 1:
		if len(rest) != 1+genesisHashLength {
			return AddressKey{}, fmt.Errorf("%w: network option needs a %d-byte genesis hash", ErrMalformedKey, genesisHashLength)
		}
		var hash common.Hash
		copy(hash[:], rest[1:])
		return NewAddressKey(signer, &hash), nil
	default:
		return AddressKey{}, fmt.Errorf("%w: invalid network option byte %d", ErrMalformedKey, rest[0])
	}
}

// AddressKeyFromHex decodes the hex form received from frontends, with or
// without a 0x prefix. Hex errors surface before shape errors.
func AddressKeyFromHex(s string) (AddressKey, error) {
	b, err := crypto.Unhex(s)
	if err != nil {
		return AddressKey{}, err
	}
	return AddressKeyFromBytes(b)
}

// Bytes returns the encoded store key.
func (k AddressKey) Bytes() []byte {
	public := k.signer.PublicKey()
	size := 1 + len(public) + 1
	if k.hasHash {
		size += genesisHashLength
	}
	var tag byte
	switch k.signer.Kind() {
	case crypto.SignerEd25519:
		tag = 0
	case crypto.SignerSr25519:
		tag = 1
	case crypto.SignerEcdsa:
		tag = 2
	}
	out := make([]byte, 0, size)
	out = append(out, tag)
	out = append(out, public...)
	if k.hasHash {
		out = append(out, 1)
		out = append(out, k.genesisHash[:]...)
	} else {
		out = append(out, 0)
	}
	return out
}

// String renders the encoded key as unprefixed lowercase hex.
func (k AddressKey) String() string { return hex.EncodeToString(k.Bytes()) }

// MultiSigner returns the signer identity inside the key.
func (k AddressKey) MultiSigner() crypto.MultiSigner { return k.signer }

// GenesisHash returns the network binding, if any.
func (k AddressKey) GenesisHash() (common.Hash, bool) {
	return k.genesisHash, k.hasHash
}

// PublicKeyEncryption unpacks the raw public key and the scheme family of
// the signer. Ethereum-scheme keys report Ecdsa, matching the shared signer
// variant.
func (k AddressKey) PublicKeyEncryption() ([]byte, crypto.Encryption) {
	return k.signer.PublicKey(), k.signer.Encryption()
}

// Equal reports structural equality of signer and network binding. Encoded
// forms are canonical, so this coincides with byte equality of Bytes().
func (k AddressKey) Equal(other AddressKey) bool {
	if !k.signer.Equal(other.signer) || k.hasHash != other.hasHash {
		return false
	}
	return !k.hasHash || bytes.Equal(k.genesisHash[:], other.genesisHash[:])
}
