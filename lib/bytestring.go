package lib

import (
	"encoding/hex"
	"encoding/json"
	"strings"
)

// ByteString is a byte array that serializes to hex
type ByteString []byte

func NewByteStringFromHex(s string) (ByteString, error) {
	b, err := hex.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return nil, err
	}
	return ByteString(b), nil
}

func (s ByteString) String() string {
	return hex.EncodeToString(s)
}

// MarshalJSON serializes ByteArray to hex
func (s ByteString) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON deserializes ByteArray to hex
func (s *ByteString) UnmarshalJSON(data []byte) error {
	var x string
	err := json.Unmarshal(data, &x)
	if err != nil {
		return err
	}
	b, err := NewByteStringFromHex(x)
	if err != nil {
		return err
	}
	*s = b
	return nil
}
