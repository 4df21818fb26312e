package lib

import (
	"encoding/json"
	"testing"

	ec "github.com/bsv-blockchain/go-sdk/primitives/ec"
	"github.com/bsv-blockchain/go-sdk/script"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetworkFromString(t *testing.T) {
	assert.Equal(t, Testnet, NetworkFromString("test"))
	assert.Equal(t, Mainnet, NetworkFromString("main"))
	assert.Equal(t, Mainnet, NetworkFromString(""))
	assert.False(t, Testnet.IsMainnet())
}

func TestPKHashAddress(t *testing.T) {
	add, err := Mainnet.PKHashAddress(make([]byte, 20))
	require.NoError(t, err)
	assert.Equal(t, "1111111111111111111114oLvT2", add)

	testAdd, err := Testnet.PKHashAddress(make([]byte, 20))
	require.NoError(t, err)
	assert.NotEqual(t, add, testAdd)

	_, err = Mainnet.PKHashAddress(make([]byte, 19))
	assert.ErrorIs(t, err, ErrBadPublicKeyHash)
}

func TestPubKeyAddress(t *testing.T) {
	priv, err := ec.NewPrivateKey()
	require.NoError(t, err)
	expected, err := script.NewAddressFromPublicKey(priv.PubKey(), true)
	require.NoError(t, err)

	add, err := Mainnet.PubKeyAddress(priv.PubKey().Compressed())
	require.NoError(t, err)
	assert.Equal(t, expected.AddressString, add)

	_, err = Mainnet.PubKeyAddress([]byte{0x02, 0x01})
	assert.Error(t, err)
}

func TestPKHash_JSON(t *testing.T) {
	p := PKHash(make([]byte, 20))
	b, err := json.Marshal(p)
	require.NoError(t, err)
	assert.Equal(t, `"1111111111111111111114oLvT2"`, string(b))

	var decoded PKHash
	require.NoError(t, json.Unmarshal(b, &decoded))
	assert.Equal(t, p, decoded)
}

func TestByteString(t *testing.T) {
	b, err := NewByteStringFromHex(" 0a0b\n")
	require.NoError(t, err)
	assert.Equal(t, ByteString{0x0a, 0x0b}, b)
	assert.Equal(t, "0a0b", b.String())

	out, err := json.Marshal(b)
	require.NoError(t, err)
	assert.Equal(t, `"0a0b"`, string(out))

	_, err = NewByteStringFromHex("zz")
	assert.Error(t, err)
}
