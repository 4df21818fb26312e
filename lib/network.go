package lib

import (
	"errors"

	ec "github.com/bsv-blockchain/go-sdk/primitives/ec"
	"github.com/bsv-blockchain/go-sdk/script"
)

type Network string

var (
	Mainnet Network = "main"
	Testnet Network = "test"
)

var ErrBadPublicKeyHash = errors.New("invalid public key hash")

func NetworkFromString(s string) Network {
	if s == string(Testnet) {
		return Testnet
	}
	return Mainnet
}

func (n Network) IsMainnet() bool {
	return n != Testnet
}

// PubKeyAddress derives the P2PKH address of a serialized public key.
func (n Network) PubKeyAddress(pubKey []byte) (string, error) {
	pub, err := ec.PublicKeyFromBytes(pubKey)
	if err != nil {
		return "", err
	}
	add, err := script.NewAddressFromPublicKey(pub, n.IsMainnet())
	if err != nil {
		return "", err
	}
	return add.AddressString, nil
}

// PKHashAddress derives the P2PKH address of a 20 byte public key hash.
func (n Network) PKHashAddress(pkhash []byte) (string, error) {
	p := PKHash(pkhash)
	return p.Address(n)
}
