package bpu

import (
	"encoding/base64"
	"strings"

	"github.com/bsv-blockchain/go-sdk/script"
)

// Cell is a single script token as it appears in a tape.
type Cell struct {
	Op  *uint8  `json:"op,omitempty"`
	Ops *string `json:"ops,omitempty"`
	B   *string `json:"b,omitempty"`
	S   *string `json:"s,omitempty"`
	II  int     `json:"ii"`
	I   int     `json:"i"`

	// linked-data enrichment, filled in by downstream consumers
	H  *string `json:"h,omitempty"`
	F  *string `json:"f,omitempty"`
	LS *string `json:"ls,omitempty"`
	LH *string `json:"lh,omitempty"`
	LF *string `json:"lf,omitempty"`
	LB *string `json:"lb,omitempty"`
}

// Bytes returns the decoded push data of the cell, or nil for opcode cells.
func (c *Cell) Bytes() []byte {
	if c.B == nil {
		return nil
	}
	b, err := base64.StdEncoding.DecodeString(*c.B)
	if err != nil {
		return nil
	}
	return b
}

func (c *Cell) IsOpCode() bool {
	return c.Op != nil
}

// Tape is one delimiter-bounded run of cells.
type Tape struct {
	Cell []Cell `json:"cell"`
	I    int    `json:"i"`
}

// OpName renders an opcode the way script ASM does, e.g. OP_RETURN.
func OpName(op byte) string {
	s := script.Script([]byte{op})
	return s.ToASM()
}

// LossyString decodes b as UTF-8, replacing invalid sequences with U+FFFD.
func LossyString(b []byte) string {
	return strings.ToValidUTF8(string(b), "\uFFFD")
}

func newCell(tok ScriptToken, chunkIndex, cellIndex int) Cell {
	cell := Cell{
		II: chunkIndex,
		I:  cellIndex,
	}
	if tok.Kind == KindPush {
		b := base64.StdEncoding.EncodeToString(tok.Data)
		s := LossyString(tok.Data)
		cell.B = &b
		cell.S = &s
	} else {
		op := tok.Op
		ops := OpName(op)
		cell.Op = &op
		cell.Ops = &ops
	}
	return cell
}
