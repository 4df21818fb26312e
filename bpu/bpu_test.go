package bpu

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/bsv-blockchain/go-sdk/chainhash"
	ec "github.com/bsv-blockchain/go-sdk/primitives/ec"
	"github.com/bsv-blockchain/go-sdk/script"
	"github.com/bsv-blockchain/go-sdk/transaction"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// zeroAddress is the mainnet P2PKH address of an all-zero hash.
const zeroAddress = "1111111111111111111114oLvT2"

func p2pkhScript(pkh []byte) *script.Script {
	return build(script.OpDUP, script.OpHASH160, pkh, script.OpEQUALVERIFY, script.OpCHECKSIG)
}

func testTx(t *testing.T, unlocking *script.Script, outputs ...*script.Script) *transaction.Transaction {
	prev, err := chainhash.NewHashFromHex("a1b2c3d4e5f60718293a4b5c6d7e8f90a1b2c3d4e5f60718293a4b5c6d7e8f90")
	require.NoError(t, err)
	tx := &transaction.Transaction{
		Version: 1,
		Inputs: []*transaction.TransactionInput{{
			SourceTXID:       prev,
			SourceTxOutIndex: 2,
			UnlockingScript:  unlocking,
			SequenceNumber:   0xfffffffe,
		}},
		LockTime: 800000,
	}
	for i, out := range outputs {
		tx.Outputs = append(tx.Outputs, &transaction.TransactionOutput{
			Satoshis:      uint64(1000 + i),
			LockingScript: out,
		})
	}
	return tx
}

func TestCollect(t *testing.T) {
	priv, err := ec.NewPrivateKey()
	require.NoError(t, err)
	pub := priv.PubKey()
	sig := bytes.Repeat([]byte{0x30}, 71)
	expectedIn, err := script.NewAddressFromPublicKey(pub, true)
	require.NoError(t, err)

	tx := testTx(t,
		build(sig, pub.Compressed()),
		p2pkhScript(make([]byte, 20)),
		build(script.OpFALSE, script.OpRETURN, "hello", "|", "world"),
	)
	b, err := Collect(tx, ParseConfig{Split: []SplitConfig{pipeRule(IncludeL), returnRule(IncludeL)}})
	require.NoError(t, err)

	assert.Equal(t, tx.TxID().String(), b.Tx.H)
	assert.Empty(t, b.Tx.R)
	assert.Equal(t, uint32(800000), b.Lock)
	assert.Nil(t, b.Blk)

	require.Len(t, b.In, 1)
	in := b.In[0]
	assert.Equal(t, 0, in.I)
	assert.Equal(t, expectedIn.AddressString, *in.E.A)
	assert.Equal(t, "a1b2c3d4e5f60718293a4b5c6d7e8f90a1b2c3d4e5f60718293a4b5c6d7e8f90", *in.E.H)
	assert.Equal(t, uint32(2), in.E.I)
	assert.Nil(t, in.E.V)
	assert.Equal(t, uint32(0xfffffffe), *in.Seq)
	require.Len(t, in.Tape, 1)
	assert.Len(t, in.Tape[0].Cell, 2)

	require.Len(t, b.Out, 2)
	assert.Equal(t, zeroAddress, *b.Out[0].E.A)
	assert.Equal(t, uint64(1000), *b.Out[0].E.V)
	assert.Equal(t, uint32(0), b.Out[0].E.I)
	assert.Nil(t, b.Out[0].Seq)

	out := b.Out[1]
	assert.Equal(t, 1, out.I)
	assert.Equal(t, NoAddress, *out.E.A)
	assert.Equal(t, uint64(1001), *out.E.V)
	require.Len(t, out.Tape, 3)
	assert.Equal(t, "hello", *out.Tape[1].Cell[0].S)
	assert.Equal(t, "world", *out.Tape[2].Cell[0].S)
	assert.Equal(t, 4, out.Tape[2].Cell[0].II)
}

func TestCollect_PKHashInput(t *testing.T) {
	tx := testTx(t, build([]byte{1}, make([]byte, 20)), p2pkhScript(make([]byte, 20)))
	b, err := Collect(tx, ParseConfig{})
	require.NoError(t, err)
	assert.Equal(t, zeroAddress, *b.In[0].E.A)
}

func TestCollect_NoAddress(t *testing.T) {
	tx := testTx(t,
		build([]byte{1}, bytes.Repeat([]byte{9}, 33)),
		build(script.OpRETURN),
	)
	b, err := Collect(tx, ParseConfig{})
	require.NoError(t, err)
	assert.Equal(t, NoAddress, *b.In[0].E.A)
	assert.Equal(t, NoAddress, *b.Out[0].E.A)
}

func TestCollect_DecodeError(t *testing.T) {
	bad := script.Script([]byte{0x4c})
	tx := testTx(t, build("x"), &bad)
	_, err := Collect(tx, ParseConfig{})
	require.Error(t, err)
	assert.Equal(t, StageDecode, StageOf(err))
}

func TestCollect_IncludeRaw(t *testing.T) {
	tx := testTx(t, build("x"), build(script.OpRETURN))
	b, err := Collect(tx, ParseConfig{IncludeRaw: true})
	require.NoError(t, err)
	assert.Equal(t, tx.Hex(), b.Tx.R)
}

func TestCollect_MerklePath(t *testing.T) {
	tx := testTx(t, build("x"), build(script.OpRETURN))
	isTxid := true
	tx.MerklePath = transaction.NewMerklePath(800000, [][]*transaction.PathElement{{
		{Offset: 0, Hash: tx.TxID(), Txid: &isTxid},
	}})
	b, err := Collect(tx, ParseConfig{})
	require.NoError(t, err)
	require.NotNil(t, b.Blk)
	assert.Equal(t, uint32(800000), b.Blk.I)
	assert.Contains(t, b.String(), `"blk":{"i":800000}`)
}

func TestCollect_NoSourceTxid(t *testing.T) {
	tx := testTx(t, build("x"), build(script.OpRETURN))
	tx.Inputs[0].SourceTXID = nil
	b, err := Collect(tx, ParseConfig{})
	require.NoError(t, err)
	assert.Nil(t, b.In[0].E.H)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(b.String()), &decoded))
	e := decoded["in"].([]any)[0].(map[string]any)["e"].(map[string]any)
	assert.NotContains(t, e, "h")
	assert.Equal(t, float64(2), e["i"])
}

func TestFromRawTx_RoundTrip(t *testing.T) {
	tx := testTx(t, build("x"), p2pkhScript(make([]byte, 20)))
	b, err := FromRawTx(tx.Hex(), ParseConfig{})
	require.NoError(t, err)
	assert.Equal(t, tx.TxID().String(), b.Tx.H)

	b, err = FromBytes(tx.Bytes(), ParseConfig{})
	require.NoError(t, err)
	assert.Equal(t, tx.TxID().String(), b.Tx.H)
}

func TestFromRawTx_Invalid(t *testing.T) {
	_, err := FromRawTx("zz", ParseConfig{})
	require.Error(t, err)
	assert.Equal(t, StageDecode, StageOf(err))
}

func TestBPU_JSON(t *testing.T) {
	tx := testTx(t, build("x"), build(script.OpRETURN, "hi"))
	b, err := Collect(tx, ParseConfig{})
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(b.String()), &decoded))
	assert.NotContains(t, decoded, "blk")

	out := decoded["out"].([]any)[0].(map[string]any)
	assert.NotContains(t, out, "seq")
	cells := out["tape"].([]any)[0].(map[string]any)["cell"].([]any)
	op := cells[0].(map[string]any)
	assert.Equal(t, float64(script.OpRETURN), op["op"])
	assert.NotContains(t, op, "b")
	assert.NotContains(t, op, "s")
	data := cells[1].(map[string]any)
	assert.Equal(t, "hi", data["s"])
	assert.Equal(t, "aGk=", data["b"])
	assert.NotContains(t, data, "op")
}

func TestStageOf(t *testing.T) {
	assert.Equal(t, Stage(""), StageOf(assert.AnError))
	err := &Error{Stage: StageLoad, Err: ErrTxNotFound}
	assert.Equal(t, StageLoad, StageOf(err))
	assert.ErrorIs(t, err, ErrTxNotFound)
	assert.Equal(t, "load: transaction not found", err.Error())
}
