package networks

import (
	_ "embed"
	"fmt"

	"github.com/ChainSafe/gossamer/lib/common"
	"github.com/bytedance/sonic"

	"github.com/tensorplex-labs/kagi/pkg/crypto"
)

//go:embed defaults.json
var defaultsJSON []byte

var defaultNetworks = mustParseDefaults(defaultsJSON)

// networkSpecsRecord is the raw JSON shape of an embedded default entry.
type networkSpecsRecord struct {
	Name           string `json:"name"`
	Title          string `json:"title"`
	GenesisHash    string `json:"genesisHash"`
	Encryption     string `json:"encryption"`
	Base58Prefix   uint16 `json:"base58Prefix"`
	Decimals       uint8  `json:"decimals"`
	Unit           string `json:"unit"`
	PathID         string `json:"pathId"`
	Endpoint       string `json:"endpoint"`
	Logo           string `json:"logo"`
	Color          string `json:"color"`
	SecondaryColor string `json:"secondaryColor"`
}

// Defaults returns the built-in network configurations: Kusama, Polkadot and
// Westend. The returned slice is a fresh copy on every call, so callers
// cannot mutate the embedded set.
func Defaults() []NetworkSpecs {
	out := make([]NetworkSpecs, len(defaultNetworks))
	copy(out, defaultNetworks)
	return out
}

func mustParseDefaults(raw []byte) []NetworkSpecs {
	var records []networkSpecsRecord
	if err := sonic.Unmarshal(raw, &records); err != nil {
		panic(fmt.Sprintf("networks: parse embedded defaults: %v", err))
	}
	specs := make([]NetworkSpecs, 0, len(records))
	for _, r := range records {
		enc, err := crypto.ParseEncryption(r.Encryption)
		if err != nil {
			panic(fmt.Sprintf("networks: embedded default %q: %v", r.Name, err))
		}
		specs = append(specs, NetworkSpecs{
			Name:           r.Name,
			Title:          r.Title,
			GenesisHash:    common.MustHexToHash(r.GenesisHash),
			Encryption:     enc,
			Base58Prefix:   r.Base58Prefix,
			Decimals:       r.Decimals,
			Unit:           r.Unit,
			PathID:         r.PathID,
			Endpoint:       r.Endpoint,
			Logo:           r.Logo,
			Color:          r.Color,
			SecondaryColor: r.SecondaryColor,
		})
	}
	return specs
}
