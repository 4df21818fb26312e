package p2pkh

import (
	"github.com/bsv-blockchain/go-sdk/script"
	"github.com/shruggr/go-bpu/bpu"
	"github.com/shruggr/go-bpu/idx"
)

const P2PKH_TAG = "p2pkh"

type P2PKH struct {
	Vout    uint32 `json:"vout"`
	Address string `json:"address"`
}

// Match reports whether the leading cells of a tape spell out a pay to
// public key hash template, returning the hash.
func Match(tape *bpu.Tape) ([]byte, bool) {
	c := tape.Cell
	if len(c) < 5 {
		return nil, false
	}
	isOp := func(cell *bpu.Cell, op byte) bool {
		return cell.Op != nil && *cell.Op == op
	}
	if !isOp(&c[0], script.OpDUP) || !isOp(&c[1], script.OpHASH160) ||
		!isOp(&c[3], script.OpEQUALVERIFY) || !isOp(&c[4], script.OpCHECKSIG) {
		return nil, false
	}
	if hash := c[2].Bytes(); len(hash) == 20 {
		return hash, true
	}
	return nil, false
}

type P2PKHIndexer struct {
	idx.BaseIndexer
}

func (i *P2PKHIndexer) Tag() string {
	return P2PKH_TAG
}

func (i *P2PKHIndexer) Parse(idxCtx *idx.IndexContext) any {
	var owners []*P2PKH
	for _, out := range idxCtx.BPU.Out {
		if len(out.Tape) == 0 {
			continue
		}
		hash, ok := Match(&out.Tape[0])
		if !ok {
			continue
		}
		if add, err := idxCtx.Network.PKHashAddress(hash); err == nil {
			owners = append(owners, &P2PKH{
				Vout:    uint32(out.I),
				Address: add,
			})
		}
	}
	if len(owners) == 0 {
		return nil
	}
	return owners
}
