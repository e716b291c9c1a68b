package networks

import (
	"testing"

	"github.com/ChainSafe/gossamer/lib/common"
	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tensorplex-labs/kagi/pkg/crypto"
)

var (
	kusamaGenesis   = common.MustHexToHash("0xb0a8d493285c2df73290dfb7e61f870f17b41801197a149ca93654499ea3dafe")
	polkadotGenesis = common.MustHexToHash("0x91b171bb158e2d3848fa23a9f1c25182fb8e20313b2c1eb49219da7a70ce90c3")
	westendGenesis  = common.MustHexToHash("0xe143f23803ac50e8f6f8e62695d1ce9e4e1d68aa36c1cd2cfd15340213f3423e")
)

func TestNetworkSpecsKeyRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		enc  crypto.Encryption
		tag  byte
	}{
		{"ed25519", crypto.Ed25519, 0},
		{"sr25519", crypto.Sr25519, 1},
		{"ecdsa", crypto.Ecdsa, 2},
		{"ethereum", crypto.Ethereum, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := NetworkSpecsKeyFromParts(kusamaGenesis, tt.enc)

			raw := key.Bytes()
			require.Len(t, raw, networkSpecsKeyLength)
			assert.Equal(t, tt.tag, raw[0])
			assert.Equal(t, kusamaGenesis[:], raw[1:])

			decoded, err := NetworkSpecsKeyFromBytes(raw)
			require.NoError(t, err)
			assert.True(t, decoded.Equal(key))

			gotHash, gotEnc, err := decoded.GenesisHashEncryption()
			require.NoError(t, err)
			assert.Equal(t, kusamaGenesis, gotHash)
			assert.Equal(t, tt.enc, gotEnc)
		})
	}
}

func TestNetworkSpecsKeyFromHex(t *testing.T) {
	key := NetworkSpecsKeyFromParts(polkadotGenesis, crypto.Sr25519)

	for _, in := range []string{key.String(), "0x" + key.String()} {
		decoded, err := NetworkSpecsKeyFromHex(in)
		require.NoError(t, err)
		assert.True(t, decoded.Equal(key))
	}

	_, err := NetworkSpecsKeyFromHex("0xzz")
	assert.ErrorIs(t, err, crypto.ErrInvalidHex)

	// Valid hex of the wrong shape.
	_, err = NetworkSpecsKeyFromHex("01b0a8")
	assert.ErrorIs(t, err, ErrMalformedKey)
}

func TestNetworkSpecsKeyRejectsMalformedBytes(t *testing.T) {
	valid := NetworkSpecsKeyFromParts(polkadotGenesis, crypto.Sr25519).Bytes()

	oversized := make([]byte, 0, len(valid)+1)
	oversized = append(oversized, valid...)
	oversized = append(oversized, 0)

	tests := []struct {
		name string
		in   []byte
	}{
		{"nil", nil},
		{"empty", []byte{}},
		{"hash only", valid[1:]},
		{"truncated", valid[:32]},
		{"oversized", oversized},
		{"unknown tag", append([]byte{9}, valid[1:]...)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NetworkSpecsKeyFromBytes(tt.in)
			assert.ErrorIs(t, err, ErrMalformedKey)
		})
	}
}

func TestNetworkSpecsKeyInjective(t *testing.T) {
	key := NetworkSpecsKeyFromParts(kusamaGenesis, crypto.Sr25519)

	assert.False(t, key.Equal(NetworkSpecsKeyFromParts(kusamaGenesis, crypto.Ed25519)),
		"same hash under a different scheme must produce a different key")
	assert.False(t, key.Equal(NetworkSpecsKeyFromParts(polkadotGenesis, crypto.Sr25519)),
		"different hashes under the same scheme must produce different keys")
	assert.True(t, key.Equal(NetworkSpecsKeyFromParts(kusamaGenesis, crypto.Sr25519)))
}

func TestNetworkSpecsKeyFromPartsPanicsOnUnknownScheme(t *testing.T) {
	assert.Panics(t, func() {
		NetworkSpecsKeyFromParts(common.Hash{}, crypto.Encryption(9))
	})
}

func TestNetworkSpecsKeyZeroValue(t *testing.T) {
	var key NetworkSpecsKey
	_, _, err := key.GenesisHashEncryption()
	assert.ErrorIs(t, err, ErrMalformedKey)
}

func TestNetworkSpecsKeyString(t *testing.T) {
	key := NetworkSpecsKeyFromParts(westendGenesis, crypto.Sr25519)
	want := "01e143f23803ac50e8f6f8e62695d1ce9e4e1d68aa36c1cd2cfd15340213f3423e"
	assert.Equal(t, want, key.String())

	data, err := sonic.Marshal(key)
	require.NoError(t, err)
	assert.Equal(t, `"`+want+`"`, string(data))
}
