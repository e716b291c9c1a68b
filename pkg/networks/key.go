package networks

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/ChainSafe/gossamer/lib/common"
	"github.com/bytedance/sonic"

	"github.com/tensorplex-labs/kagi/pkg/crypto"
)

// ErrMalformedKey rejects byte strings that do not decode as a network specs
// key.
var ErrMalformedKey = errors.New("malformed network specs key")

const genesisHashLength = 32

const networkSpecsKeyLength = 1 + genesisHashLength

// NetworkSpecsKey identifies one (network, encryption scheme) configuration
// in the external store. The encoded form is a scheme tag byte followed by
// the 32-byte genesis hash, injective for every supported scheme. The zero
// value holds no bytes and fails decoding.
type NetworkSpecsKey struct {
	raw []byte
}

// NetworkSpecsKeyFromParts builds the key for a genesis hash under a scheme.
// It panics on an Encryption value outside the supported set, which only a
// programming error can produce.
func NetworkSpecsKeyFromParts(genesisHash common.Hash, enc crypto.Encryption) NetworkSpecsKey {
	var tag byte
	switch enc {
	case crypto.Ed25519:
		tag = 0
	case crypto.Sr25519:
		tag = 1
	case crypto.Ecdsa:
		tag = 2
	case crypto.Ethereum:
		tag = 3
	default:
		panic(fmt.Sprintf("networks: unsupported encryption scheme %d", uint8(enc)))
	}
	raw := make([]byte, 0, networkSpecsKeyLength)
	raw = append(raw, tag)
	raw = append(raw, genesisHash[:]...)
	return NetworkSpecsKey{raw: raw}
}

// NetworkSpecsKeyFromBytes validates raw store-key bytes. Anything that is
// not exactly one known scheme tag plus a 32-byte hash is rejected.
func NetworkSpecsKeyFromBytes(b []byte) (NetworkSpecsKey, error) {
	if _, _, err := decodeNetworkSpecsKey(b); err != nil {
		return NetworkSpecsKey{}, err
	}
	return NetworkSpecsKey{raw: bytes.Clone(b)}, nil
}

// NetworkSpecsKeyFromHex parses the hex form handed over by frontends, with
// or without a 0x prefix. Hex errors surface before shape errors.
func NetworkSpecsKeyFromHex(s string) (NetworkSpecsKey, error) {
	b, err := crypto.Unhex(s)
	if err != nil {
		return NetworkSpecsKey{}, err
	}
	return NetworkSpecsKeyFromBytes(b)
}

// GenesisHashEncryption decodes the key back into its genesis hash and
// scheme.
func (k NetworkSpecsKey) GenesisHashEncryption() (common.Hash, crypto.Encryption, error) {
	return decodeNetworkSpecsKey(k.raw)
}

func decodeNetworkSpecsKey(b []byte) (common.Hash, crypto.Encryption, error) {
	if len(b) != networkSpecsKeyLength {
		return common.Hash{}, 0, fmt.Errorf("%w: expected %d bytes, got %d",
			ErrMalformedKey, networkSpecsKeyLength, len(b))
	}
	var enc crypto.Encryption
	switch b[0] {
	case 0:
		enc = crypto.Ed25519
	case 1:
		enc = crypto.Sr25519
	case 2:
		enc = crypto.Ecdsa
	case 3:
		enc = crypto.Ethereum
	default:
		return common.Hash{}, 0, fmt.Errorf("%w: unknown scheme tag %d", ErrMalformedKey, b[0])
	}
	var hash common.Hash
	copy(hash[:], b[1:])
	return hash, enc, nil
}

// Bytes returns a copy of the opaque store key.
func (k NetworkSpecsKey) Bytes() []byte { return bytes.Clone(k.raw) }

// String renders the key as unprefixed lowercase hex, the form frontends
// display and hand back.
func (k NetworkSpecsKey) String() string { return hex.EncodeToString(k.raw) }

// Equal reports whether both keys address the same (network, scheme) pair.
func (k NetworkSpecsKey) Equal(other NetworkSpecsKey) bool {
	return bytes.Equal(k.raw, other.raw)
}

// MarshalJSON renders the key as its hex string form.
func (k NetworkSpecsKey) MarshalJSON() ([]byte, error) {
	return sonic.Marshal(k.String())
}
