package keyring

import (
	"bytes"
	"encoding/hex"

	"github.com/ChainSafe/gossamer/lib/common"
	"github.com/bytedance/sonic"

	"github.com/tensorplex-labs/kagi/pkg/crypto"
	"github.com/tensorplex-labs/kagi/pkg/networks"
)

// AddressDetails is the non-secret metadata the store keeps per address key.
// It is written once per successful derivation and stays immutable except for
// the secret-exposed flag, which can only ever be raised.
type AddressDetails struct {
	// SeedName names the seed the address was derived from. The phrase
	// itself is never part of the record.
	SeedName string

	// Path is the normalized derivation path, soft and hard junctions only.
	Path string

	// HasPassword records whether a ///password took part in the derivation.
	HasPassword bool

	// NetworkID points at the network configuration the address works with.
	// Nil marks a root identity usable as a derivation origin anywhere.
	NetworkID *networks.NetworkSpecsKey

	// Encryption is the scheme of the address.
	Encryption crypto.Encryption

	secretExposed bool
}

// SecretExposed reports whether this address, or an ancestor sharing its
// secret, may have been shown to the outside.
func (d AddressDetails) SecretExposed() bool { return d.secretExposed }

// MarkSecretExposed raises the exposure flag. There is no way back down.
func (d *AddressDetails) MarkSecretExposed() { d.secretExposed = true }

// MarshalJSON renders the record for display, including the unexported
// exposure flag.
func (d AddressDetails) MarshalJSON() ([]byte, error) {
	return sonic.Marshal(struct {
		SeedName      string                    `json:"seedName"`
		Path          string                    `json:"path"`
		HasPassword   bool                      `json:"hasPassword"`
		NetworkID     *networks.NetworkSpecsKey `json:"networkId,omitempty"`
		Encryption    crypto.Encryption         `json:"encryption"`
		SecretExposed bool                      `json:"secretExposed"`
	}{
		SeedName:      d.SeedName,
		Path:          d.Path,
		HasPassword:   d.HasPassword,
		NetworkID:     d.NetworkID,
		Encryption:    d.Encryption,
		SecretExposed: d.secretExposed,
	})
}

// IdentityRecord is the append-only audit fact written whenever an address is
// generated within a known network. Records are never mutated after creation.
type IdentityRecord struct {
	SeedName           string
	Encryption         crypto.Encryption
	PublicKey          []byte
	Path               string
	NetworkGenesisHash common.Hash
}

// NewIdentityRecord assembles a record, copying the public key bytes so the
// caller's slice cannot reach the stored fact.
func NewIdentityRecord(seedName string, enc crypto.Encryption, publicKey []byte, path string, genesisHash common.Hash) IdentityRecord {
	return IdentityRecord{
		SeedName:           seedName,
		Encryption:         enc,
		PublicKey:          bytes.Clone(publicKey),
		Path:               path,
		NetworkGenesisHash: genesisHash,
	}
}

// MarshalJSON renders the public key as unprefixed hex and the genesis hash
// in its usual 0x form.
func (r IdentityRecord) MarshalJSON() ([]byte, error) {
	return sonic.Marshal(struct {
		SeedName           string            `json:"seedName"`
		Encryption         crypto.Encryption `json:"encryption"`
		PublicKey          string            `json:"publicKey"`
		Path               string            `json:"path"`
		NetworkGenesisHash string            `json:"networkGenesisHash"`
	}{
		SeedName:           r.SeedName,
		Encryption:         r.Encryption,
		PublicKey:          hex.EncodeToString(r.PublicKey),
		Path:               r.Path,
		NetworkGenesisHash: r.NetworkGenesisHash.String(),
	})
}
