package bob

import (
	"github.com/bsv-blockchain/go-sdk/script"
	"github.com/shruggr/go-bpu/bpu"
)

const BOB_TAG = "bob"

// Pipe separates protocols within one OP_RETURN.
const Pipe = "|"

// Config splits on the pipe delimiter and on OP_RETURN, both merged left.
func Config() bpu.ParseConfig {
	pipe := Pipe
	opReturn := uint8(script.OpRETURN)
	return bpu.ParseConfig{
		Split: []bpu.SplitConfig{
			{
				Include: bpu.IncludeL,
				Token:   &bpu.Token{S: &pipe},
			},
			{
				Include: bpu.IncludeL,
				Token:   &bpu.Token{Op: &opReturn},
			},
		},
	}
}

func FromRawTx(rawtx string) (*bpu.BPU, error) {
	return bpu.FromRawTx(rawtx, Config())
}
