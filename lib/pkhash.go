package lib

import (
	"encoding/json"

	"github.com/bsv-blockchain/go-sdk/script"
)

type PKHash []byte

func (p *PKHash) Address(network ...Network) (string, error) {
	if len(*p) != 20 {
		return "", ErrBadPublicKeyHash
	}
	mainnet := true
	if len(network) > 0 {
		mainnet = network[0].IsMainnet()
	}
	add, err := script.NewAddressFromPublicKeyHash(*p, mainnet)
	if err != nil {
		return "", err
	}
	return add.AddressString, nil
}

// MarshalJSON serializes PKHash as a mainnet address
func (p PKHash) MarshalJSON() ([]byte, error) {
	add, err := p.Address()
	if err != nil {
		return nil, err
	}
	return json.Marshal(add)
}

func (p *PKHash) FromAddress(a string) error {
	if add, err := script.NewAddressFromString(a); err != nil {
		return err
	} else {
		*p = PKHash(add.PublicKeyHash)
	}
	return nil
}

func (p *PKHash) UnmarshalJSON(data []byte) error {
	var add string
	err := json.Unmarshal(data, &add)
	if err != nil {
		return err
	}
	return p.FromAddress(add)
}
