package crypto

import (
	"encoding/hex"
	"fmt"

	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/vedhavyas/go-subkey"
)

const (
	// SubstrateNetworkID is the generic substrate SS58 address prefix.
	SubstrateNetworkID uint16 = 42

	// BareSr25519Prefix and BareEd25519Prefix are the registry prefixes used
	// for scheme-tagged keys that are not bound to any network.
	BareSr25519Prefix uint16 = 1
	BareEd25519Prefix uint16 = 3
)

// AddressString renders the signer for display under the given SS58 network
// prefix. An ecdsa key under the Ethereum scheme renders as a 0x-prefixed
// 20-byte Ethereum address instead; the scheme tag, not the key variant,
// selects the renderer, so the same key shows both faces.
func AddressString(signer MultiSigner, prefix uint16, enc Encryption) (string, error) {
	if signer.kind == SignerEcdsa && enc == Ethereum {
		return ethereumAddress(signer.public)
	}
	return subkey.SS58Encode(signer.public, prefix), nil
}

// BareAddressString renders the signer with its scheme's registry prefix,
// for identities not bound to any network.
func BareAddressString(signer MultiSigner, enc Encryption) (string, error) {
	switch signer.kind {
	case SignerEd25519:
		return subkey.SS58Encode(signer.public, BareEd25519Prefix), nil
	case SignerSr25519:
		return subkey.SS58Encode(signer.public, BareSr25519Prefix), nil
	default:
		if enc == Ethereum {
			return ethereumAddress(signer.public)
		}
		return subkey.SS58Encode(signer.public, SubstrateNetworkID), nil
	}
}

// MultiSignerFromAddress recovers the signer identity behind a display
// address. Ethereum 0x addresses are key hashes and cannot be inverted, so
// under the Ethereum scheme this accepts the SS58 rendering of the compressed
// key instead.
func MultiSignerFromAddress(address string, enc Encryption) (MultiSigner, error) {
	_, public, err := subkey.SS58Decode(address)
	if err != nil {
		return MultiSigner{}, fmt.Errorf("decode ss58 address: %w", err)
	}
	return NewMultiSigner(public, enc)
}

// ethereumAddress derives the 0x-hex account address from a 33-byte
// compressed secp256k1 public key: keccak256 of the uncompressed point
// without its prefix byte, last 20 bytes, lowercase.
func ethereumAddress(compressed []byte) (string, error) {
	public, err := ethcrypto.DecompressPubkey(compressed)
	if err != nil {
		return "", fmt.Errorf("decompress ecdsa public key: %w", err)
	}
	addr := ethcrypto.PubkeyToAddress(*public)
	return "0x" + hex.EncodeToString(addr.Bytes()), nil
}
