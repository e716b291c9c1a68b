package keyring

import (
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/tensorplex-labs/kagi/pkg/crypto"
	"github.com/tensorplex-labs/kagi/pkg/networks"
)

// ErrEmptySeedName rejects address creation without a seed name to file the
// records under.
var ErrEmptySeedName = errors.New("empty seed name")

// CreatedAddress bundles everything one successful derivation hands to the
// store: the lookup key, the non-secret details, and, when a network context
// was supplied, the audit record.
type CreatedAddress struct {
	Key     AddressKey
	Details AddressDetails
	Record  *IdentityRecord
}

// CreateAddress derives one address from a seed phrase and a raw derivation
// path. The scheme comes from the network specs, or defaults to Sr25519 when
// no network context is given; with a network context the address key binds
// its genesis hash and an identity record is emitted. The seed phrase never
// outlives the call and never appears in the outputs.
func CreateAddress(specs *networks.NetworkSpecs, seedName, seedPhrase, derivationPath string) (*CreatedAddress, error) {
	if seedName == "" {
		return nil, ErrEmptySeedName
	}
	if seedPhrase == "" {
		return nil, ErrEmptySeed
	}

	enc := crypto.Sr25519
	if specs != nil {
		enc = specs.Encryption
	}

	signer, err := DeriveSigner(seedPhrase, derivationPath, enc)
	if err != nil {
		return nil, err
	}
	path, hasPassword := ParseDerivationPath(derivationPath)

	created := &CreatedAddress{
		Details: AddressDetails{
			SeedName:    seedName,
			Path:        path,
			HasPassword: hasPassword,
			Encryption:  enc,
		},
	}
	if specs != nil {
		networkID := specs.Key()
		created.Details.NetworkID = &networkID
		hash := specs.GenesisHash
		created.Key = NewAddressKey(signer, &hash)
		record := NewIdentityRecord(seedName, enc, signer.PublicKey(), path, specs.GenesisHash)
		created.Record = &record
	} else {
		created.Key = NewAddressKey(signer, nil)
	}

	log.Debug().
		Str("seed_name", seedName).
		Str("encryption", enc.String()).
		Str("path", path).
		Bool("has_password", hasPassword).
		Bool("network_bound", specs != nil).
		Msg("derived address")

	return created, nil
}
