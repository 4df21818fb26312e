package bpu

import (
	"encoding/json"

	"github.com/bsv-blockchain/go-sdk/transaction"
)

// NoAddress is recorded when no address could be recovered from a script.
const NoAddress = "false"

// BPU is a transaction projected into tapes and cells.
type BPU struct {
	In   []IO   `json:"in"`
	Out  []IO   `json:"out"`
	Tx   Tx     `json:"tx"`
	Blk  *Block `json:"blk,omitempty"`
	Lock uint32 `json:"lock"`
}

type Tx struct {
	H string `json:"h,omitempty"`
	R string `json:"r,omitempty"`
}

type Block struct {
	I uint32 `json:"i"`
}

// SendRecv describes where an input came from or where an output goes.
type SendRecv struct {
	H *string `json:"h,omitempty"`
	I uint32  `json:"i"`
	V *uint64 `json:"v,omitempty"`
	A *string `json:"a,omitempty"`
}

// IO is a transaction input or output.
type IO struct {
	I    int       `json:"i"`
	Tape []Tape    `json:"tape"`
	E    *SendRecv `json:"e,omitempty"`
	Seq  *uint32   `json:"seq,omitempty"`
}

func (b *BPU) String() string {
	out, _ := json.Marshal(b)
	return string(out)
}

func FromRawTx(rawtx string, cfg ParseConfig) (*BPU, error) {
	tx, err := transaction.NewTransactionFromHex(rawtx)
	if err != nil {
		return nil, &Error{Stage: StageDecode, Err: err}
	}
	return Collect(tx, cfg)
}

func FromBytes(rawtx []byte, cfg ParseConfig) (*BPU, error) {
	tx, err := transaction.NewTransactionFromBytes(rawtx)
	if err != nil {
		return nil, &Error{Stage: StageDecode, Err: err}
	}
	return Collect(tx, cfg)
}

// Collect projects every input and output of tx, in transaction order.
func Collect(tx *transaction.Transaction, cfg ParseConfig) (*BPU, error) {
	result := &BPU{
		In:   make([]IO, 0, len(tx.Inputs)),
		Out:  make([]IO, 0, len(tx.Outputs)),
		Tx:   Tx{H: tx.TxID().String()},
		Lock: tx.LockTime,
	}
	if cfg.IncludeRaw {
		result.Tx.R = tx.Hex()
	}
	if tx.MerklePath != nil {
		result.Blk = &Block{I: tx.MerklePath.BlockHeight}
	}

	for i, input := range tx.Inputs {
		tokens, err := ParseScript(input.UnlockingScript, cfg.MaxDepth)
		if err != nil {
			return nil, err
		}
		address := inputAddress(tokens, cfg.addresses())
		var prevTxid *string
		if input.SourceTXID != nil {
			h := input.SourceTXID.String()
			prevTxid = &h
		}
		seq := input.SequenceNumber
		result.In = append(result.In, IO{
			I:    i,
			Tape: Split(Flatten(tokens), cfg.Split, cfg.Transform),
			E: &SendRecv{
				H: prevTxid,
				I: input.SourceTxOutIndex,
				A: &address,
			},
			Seq: &seq,
		})
	}

	for i, output := range tx.Outputs {
		tokens, err := ParseScript(output.LockingScript, cfg.MaxDepth)
		if err != nil {
			return nil, err
		}
		address := outputAddress(tokens, cfg.addresses())
		sats := output.Satoshis
		result.Out = append(result.Out, IO{
			I:    i,
			Tape: Split(Flatten(tokens), cfg.Split, cfg.Transform),
			E: &SendRecv{
				I: uint32(i),
				V: &sats,
				A: &address,
			},
		})
	}

	return result, nil
}

// inputAddress recovers the spender from the second element of an unlocking
// script: either a compressed public key or a bare public key hash.
func inputAddress(tokens []ScriptToken, addresses AddressDeriver) string {
	if len(tokens) < 2 || tokens[1].Kind != KindPush {
		return NoAddress
	}
	buf := tokens[1].Data
	var add string
	var err error
	switch {
	case len(buf) == 33 && (buf[0] == 2 || buf[0] == 3):
		add, err = addresses.PubKeyAddress(buf)
	case len(buf) == 20:
		add, err = addresses.PKHashAddress(buf)
	default:
		return NoAddress
	}
	if err != nil {
		return NoAddress
	}
	return add
}

// outputAddress recovers the recipient from the third element of a locking
// script, which holds the public key hash in P2PKH.
func outputAddress(tokens []ScriptToken, addresses AddressDeriver) string {
	if len(tokens) < 3 || tokens[2].Kind != KindPush || len(tokens[2].Data) != 20 {
		return NoAddress
	}
	add, err := addresses.PKHashAddress(tokens[2].Data)
	if err != nil {
		return NoAddress
	}
	return add
}
