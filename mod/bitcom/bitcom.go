package bitcom

import (
	"github.com/bsv-blockchain/go-sdk/script"
	"github.com/shruggr/go-bpu/bpu"
	"github.com/shruggr/go-bpu/idx"
	"github.com/shruggr/go-bpu/mod/bob"
)

const BITCOM_TAG = "bitcom"

// Bitcom is one protocol segment of an output: the protocol prefix and the
// cells that follow it up to the next delimiter.
type Bitcom struct {
	Protocol string     `json:"protocol"`
	Cells    []bpu.Cell `json:"cells"`
	Tape     int        `json:"tape"`
}

// Output collects the bitcom protocols of one transaction output.
type Output struct {
	Vout      int       `json:"vout"`
	Protocols []*Bitcom `json:"protocols"`
	B         []*B      `json:"b,omitempty"`
	MAP       Map       `json:"map,omitempty"`
}

func Config() bpu.ParseConfig {
	return bob.Config()
}

func FromRawTx(rawtx string) (*bpu.BPU, error) {
	return bpu.FromRawTx(rawtx, Config())
}

func isDelimiter(cell *bpu.Cell) bool {
	if cell.Op != nil {
		return *cell.Op == script.OpRETURN
	}
	return cell.S != nil && *cell.S == bob.Pipe
}

// Protocols walks the tapes of a pipe/OP_RETURN split output. Every tape that
// follows a delimiter-terminated tape opens with a protocol prefix.
func Protocols(io *bpu.IO) []*Bitcom {
	var bitcoms []*Bitcom
	for i := 1; i < len(io.Tape); i++ {
		prev := io.Tape[i-1].Cell
		if len(prev) == 0 || !isDelimiter(&prev[len(prev)-1]) {
			continue
		}
		cells := io.Tape[i].Cell
		if len(cells) == 0 || cells[0].S == nil {
			continue
		}
		body := cells[1:]
		if len(body) > 0 && isDelimiter(&body[len(body)-1]) && body[len(body)-1].Op == nil {
			body = body[:len(body)-1]
		}
		bitcoms = append(bitcoms, &Bitcom{
			Protocol: *cells[0].S,
			Cells:    body,
			Tape:     io.Tape[i].I,
		})
	}
	return bitcoms
}

// Parse decodes the known bitcom protocols of every output.
func Parse(b *bpu.BPU) []*Output {
	outputs := make([]*Output, 0, len(b.Out))
	for i := range b.Out {
		protocols := Protocols(&b.Out[i])
		if len(protocols) == 0 {
			continue
		}
		out := &Output{
			Vout:      b.Out[i].I,
			Protocols: protocols,
		}
		mp := Map{}
		for _, bc := range protocols {
			switch bc.Protocol {
			case B_PROTO:
				out.B = append(out.B, ParseB(bc))
			case MAP_PROTO:
				ParseMAP(mp, bc)
			}
		}
		if len(mp) > 0 {
			out.MAP = mp
		}
		outputs = append(outputs, out)
	}
	return outputs
}

type BitcomIndexer struct {
	idx.BaseIndexer
}

func (i *BitcomIndexer) Tag() string {
	return BITCOM_TAG
}

func (i *BitcomIndexer) Parse(idxCtx *idx.IndexContext) any {
	if outputs := Parse(idxCtx.BPU); len(outputs) > 0 {
		return outputs
	}
	return nil
}
