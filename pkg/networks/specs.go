// Package networks holds the per-network configuration records the wallet
// derives addresses against, together with their canonical store keys.
package networks

import (
	"github.com/ChainSafe/gossamer/lib/common"

	"github.com/tensorplex-labs/kagi/pkg/crypto"
)

// NetworkSpecs carries everything needed to derive, format and label
// addresses for one network. The same chain may appear once per encryption
// scheme; such entries are distinct networks as far as the store is
// concerned.
type NetworkSpecs struct {
	// Name is the network name as it appears in chain metadata.
	Name string

	// Title is the display name shown in wallet menus.
	Title string

	// GenesisHash identifies the chain.
	GenesisHash common.Hash

	// Encryption is the scheme addresses on this network use.
	Encryption crypto.Encryption

	// Base58Prefix is the network-specific SS58 address version.
	Base58Prefix uint16

	// Decimals is the order of magnitude between the display token unit and
	// the integer balance unit.
	Decimals uint8

	// Unit is the token symbol.
	Unit string

	// PathID is the canonical derivation path for addresses on this network.
	PathID string

	// Endpoint is the RPC address used to talk to the network.
	Endpoint string

	Logo           string
	Color          string
	SecondaryColor string
}

// Key returns the canonical store key for this configuration.
func (s *NetworkSpecs) Key() NetworkSpecsKey {
	return NetworkSpecsKeyFromParts(s.GenesisHash, s.Encryption)
}
