package bpu

import (
	"bytes"

	"github.com/shruggr/go-bpu/lib"
)

// IncludeType controls where a matched delimiter lands relative to the
// boundary it creates.
//   - IncludeL merges the delimiter into the tape it closes
//   - IncludeR starts the next tape with the delimiter
//   - IncludeC puts the delimiter in a standalone tape
type IncludeType string

const (
	IncludeL IncludeType = "l"
	IncludeR IncludeType = "r"
	IncludeC IncludeType = "c"
)

// Token describes the cell a split rule matches. Any non-nil field may match.
type Token struct {
	Op  *uint8  `json:"op,omitempty" mapstructure:"op"`
	Ops *string `json:"ops,omitempty" mapstructure:"ops"`
	B   []byte  `json:"b,omitempty" mapstructure:"b"`
	S   *string `json:"s,omitempty" mapstructure:"s"`
}

type SplitConfig struct {
	Token   *Token      `json:"token,omitempty" mapstructure:"token"`
	Include IncludeType `json:"include,omitempty" mapstructure:"include"`
}

// Transform rewrites a cell at construction time. It must not have side
// effects.
type Transform func(cell Cell, tok ScriptToken) Cell

// AddressDeriver turns key material found in scripts into addresses.
type AddressDeriver interface {
	PubKeyAddress(pubKey []byte) (string, error)
	PKHashAddress(pkhash []byte) (string, error)
}

type ParseConfig struct {
	Split     []SplitConfig  `json:"split,omitempty"`
	Transform Transform      `json:"-"`
	Addresses AddressDeriver `json:"-"`
	// MaxDepth bounds conditional nesting in parsed scripts. Zero disables
	// the check.
	MaxDepth   int  `json:"-"`
	IncludeRaw bool `json:"-"`
}

func (cfg *ParseConfig) addresses() AddressDeriver {
	if cfg.Addresses == nil {
		return lib.Mainnet
	}
	return cfg.Addresses
}

func (t *Token) matchOp(op byte, ops string) bool {
	if t == nil {
		return false
	}
	return (t.Op != nil && *t.Op == op) || (t.Ops != nil && *t.Ops == ops)
}

func (t *Token) matchPush(b []byte, s string) bool {
	if t == nil {
		return false
	}
	return (t.B != nil && bytes.Equal(t.B, b)) || (t.S != nil && *t.S == s)
}

// splitter returns the include policy of the last rule matching tok.
func splitter(rules []SplitConfig, tok ScriptToken, cell *Cell) (IncludeType, bool) {
	var include IncludeType
	found := false
	for _, rule := range rules {
		var match bool
		if tok.Kind == KindPush {
			match = rule.Token.matchPush(tok.Data, *cell.S)
		} else {
			match = rule.Token.matchOp(tok.Op, *cell.Ops)
		}
		if match {
			include = rule.Include
			found = true
		}
	}
	if found && include == "" {
		include = IncludeL
	}
	return include, found
}
