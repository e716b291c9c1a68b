package keyring

import (
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tensorplex-labs/kagi/pkg/crypto"
)

func TestNewIdentityRecordCopiesPublicKey(t *testing.T) {
	public, err := crypto.Unhex(alicePublicHex)
	require.NoError(t, err)

	record := NewIdentityRecord("dev", crypto.Sr25519, public, "//Alice", westendGenesis)

	// Mutating the caller's slice after construction must not reach the
	// stored fact.
	public[0] ^= 0xff
	assert.Equal(t, byte(0xd4), record.PublicKey[0])
}

func TestIdentityRecordJSON(t *testing.T) {
	public, err := crypto.Unhex(alicePublicHex)
	require.NoError(t, err)

	record := NewIdentityRecord("dev", crypto.Sr25519, public, "//Alice", westendGenesis)

	data, err := sonic.Marshal(record)
	require.NoError(t, err)

	want := `{"seedName":"dev","encryption":"sr25519","publicKey":"` + alicePublicHex +
		`","path":"//Alice","networkGenesisHash":"` + westendGenesis.String() + `"}`
	assert.JSONEq(t, want, string(data))
}

func TestAddressDetailsJSONShape(t *testing.T) {
	details := AddressDetails{
		SeedName:   "dev",
		Path:       "//Alice",
		Encryption: crypto.Sr25519,
	}

	data, err := sonic.Marshal(details)
	require.NoError(t, err)

	// A root identity omits the network pointer and reports the exposure
	// flag despite the unexported field.
	want := `{"seedName":"dev","path":"//Alice","hasPassword":false,` +
		`"encryption":"sr25519","secretExposed":false}`
	assert.JSONEq(t, want, string(data))

	details.MarkSecretExposed()
	data, err = sonic.Marshal(details)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"secretExposed":true`)
}
