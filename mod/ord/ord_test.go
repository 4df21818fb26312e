package ord

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/bsv-blockchain/go-sdk/chainhash"
	"github.com/bsv-blockchain/go-sdk/script"
	"github.com/bsv-blockchain/go-sdk/transaction"
	"github.com/shruggr/go-bpu/bpu"
	"github.com/shruggr/go-bpu/idx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pushData(buf []byte, data string) []byte {
	buf = append(buf, byte(len(data)))
	return append(buf, data...)
}

// envelope builds OP_FALSE OP_IF "ord" OP_1 <type> OP_0 <data> OP_ENDIF
// preceded by a P2PKH lock.
func envelope(contentType, data string) *script.Script {
	buf := []byte{script.OpDUP, script.OpHASH160, 20}
	buf = append(buf, make([]byte, 20)...)
	buf = append(buf, script.OpEQUALVERIFY, script.OpCHECKSIG)
	buf = append(buf, script.OpFALSE, script.OpIF)
	buf = pushData(buf, "ord")
	buf = append(buf, script.Op1)
	buf = pushData(buf, contentType)
	buf = append(buf, script.Op0)
	buf = pushData(buf, data)
	buf = append(buf, script.OpENDIF)
	s := script.Script(buf)
	return &s
}

func raw(b ...byte) *script.Script {
	s := script.Script(b)
	return &s
}

func testTx(t *testing.T, outputs ...*script.Script) *transaction.Transaction {
	prev, err := chainhash.NewHashFromHex("00000000000000000000000000000000000000000000000000000000000000aa")
	require.NoError(t, err)
	unlock := raw(0x01, 0x01)
	tx := &transaction.Transaction{
		Version: 1,
		Inputs: []*transaction.TransactionInput{{
			SourceTXID:      prev,
			UnlockingScript: unlock,
			SequenceNumber:  0xffffffff,
		}},
	}
	for _, out := range outputs {
		tx.Outputs = append(tx.Outputs, &transaction.TransactionOutput{
			Satoshis:      1,
			LockingScript: out,
		})
	}
	return tx
}

func TestHandler_TextInscription(t *testing.T) {
	tx := testTx(t, envelope("text/plain", "hello"))
	bmap := NewBMap(1700000000)

	require.NoError(t, Handler(tx, bmap, 0))
	require.Len(t, bmap.Ord, 1)
	assert.Equal(t, "text/plain", bmap.Ord[0].ContentType)
	assert.Equal(t, []byte("hello"), bmap.Ord[0].Data)
	assert.Equal(t, uint32(0), bmap.Ord[0].Vout)
	assert.True(t, bmap.Ord[0].IsText())
	assert.True(t, bmap.Ord[0].Text)
	assert.Equal(t, uint64(1700000000), bmap.Timestamp)
}

func TestOrdData_JSONIsText(t *testing.T) {
	tx := testTx(t, envelope("text/plain", "hello"), envelope("image/png", "\x89PNG\xff"))
	bmap := NewBMap(0)
	require.NoError(t, Handler(tx, bmap, 0))
	require.Len(t, bmap.Ord, 2)

	b, err := json.Marshal(bmap)
	require.NoError(t, err)
	var decoded struct {
		Ord []map[string]any `json:"ord"`
	}
	require.NoError(t, json.Unmarshal(b, &decoded))
	assert.Equal(t, true, decoded.Ord[0]["is_text"])
	assert.Equal(t, false, decoded.Ord[1]["is_text"])
}

func TestHandler_MultipleOutputs(t *testing.T) {
	tx := testTx(t,
		envelope("text/plain", "one"),
		raw(script.OpRETURN),
		envelope("application/json", `{"a":1}`),
	)
	bmap := NewBMap(0)

	require.NoError(t, Handler(tx, bmap, 0))
	require.Len(t, bmap.Ord, 2)
	assert.Equal(t, uint32(0), bmap.Ord[0].Vout)
	assert.Equal(t, uint32(2), bmap.Ord[1].Vout)
	assert.Equal(t, "application/json", bmap.Ord[1].ContentType)
}

func TestHandler_NotFound(t *testing.T) {
	tx := testTx(t, raw(script.OpRETURN, 0x02, 'h', 'i'))
	bmap := NewBMap(0)

	err := Handler(tx, bmap, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, bpu.ErrEnvelopeNotFound)
	assert.Equal(t, bpu.StageEnvelope, bpu.StageOf(err))
	assert.Equal(t, "envelope: invalid ord tx: script not found", err.Error())
	assert.Empty(t, bmap.Ord)
}

func TestHandler_PartialEnvelope(t *testing.T) {
	// content type without data
	buf := []byte{script.OpFALSE, script.OpIF}
	buf = pushData(buf, "ord")
	buf = append(buf, script.Op1)
	buf = pushData(buf, "text/plain")
	buf = append(buf, script.OpENDIF)
	tx := testTx(t, raw(buf...))
	bmap := NewBMap(0)

	require.NoError(t, Handler(tx, bmap, 0))
	assert.Empty(t, bmap.Ord)
}

func TestScriptChecker(t *testing.T) {
	ordTag := bpu.Push([]byte("ord"))
	cases := []struct {
		name   string
		tokens []bpu.ScriptToken
		index  int
		ok     bool
	}{
		{
			name:   "envelope",
			tokens: []bpu.ScriptToken{bpu.OpCode(script.OpFALSE), bpu.If(script.OpIF, []bpu.ScriptToken{ordTag})},
			index:  1,
			ok:     true,
		},
		{
			name:   "no conditional",
			tokens: []bpu.ScriptToken{bpu.OpCode(script.OpFALSE), ordTag},
		},
		{
			name:   "leading conditional",
			tokens: []bpu.ScriptToken{bpu.If(script.OpIF, []bpu.ScriptToken{ordTag})},
		},
		{
			name:   "not preceded by false",
			tokens: []bpu.ScriptToken{bpu.OpCode(script.OpTRUE), bpu.If(script.OpIF, []bpu.ScriptToken{ordTag})},
		},
		{
			name:   "wrong tag",
			tokens: []bpu.ScriptToken{bpu.OpCode(script.OpFALSE), bpu.If(script.OpIF, []bpu.ScriptToken{bpu.Push([]byte("bob"))})},
		},
		{
			name:   "empty branch",
			tokens: []bpu.ScriptToken{bpu.OpCode(script.OpFALSE), bpu.If(script.OpIF, nil)},
		},
		{
			name: "only first conditional is considered",
			tokens: []bpu.ScriptToken{
				bpu.OpCode(script.OpFALSE), bpu.If(script.OpIF, nil),
				bpu.OpCode(script.OpFALSE), bpu.If(script.OpIF, []bpu.ScriptToken{ordTag}),
			},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			index, ok := ScriptChecker(tc.tokens)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.index, index)
		})
	}
}

func TestEnvelope_ExtractFirstPairs(t *testing.T) {
	env := &Envelope{
		Vout: 3,
		Cond: bpu.If(script.OpIF, []bpu.ScriptToken{
			bpu.Push([]byte("ord")),
			bpu.OpCode(script.Op0), bpu.Push([]byte("body")),
			bpu.OpCode(script.Op1), bpu.Push([]byte("image/png")),
		}),
	}
	o := env.Extract()
	require.NotNil(t, o)
	assert.Equal(t, "image/png", o.ContentType)
	assert.Equal(t, []byte("body"), o.Data)
	assert.Equal(t, uint32(3), o.Vout)
}

func TestOrdIndexer(t *testing.T) {
	tx := testTx(t, envelope("text/plain", "hello"))
	preset := &idx.Preset{Name: ORD_TAG, Config: Config, Indexers: []idx.Indexer{&OrdIndexer{}}}
	idxCtx := idx.NewIndexContext(context.Background(), tx, preset)
	require.NoError(t, idxCtx.ParseTxn())

	bmap, ok := idxCtx.Data[ORD_TAG].(*BMap)
	require.True(t, ok)
	require.Len(t, bmap.Ord, 1)
	assert.Equal(t, uint64(idxCtx.Parsed.Unix()), bmap.Timestamp)
}

func TestOrdIndexer_NoEnvelope(t *testing.T) {
	tx := testTx(t, raw(script.OpRETURN))
	preset := &idx.Preset{Name: ORD_TAG, Config: Config, Indexers: []idx.Indexer{&OrdIndexer{}}}
	idxCtx := idx.NewIndexContext(context.Background(), tx, preset)
	require.NoError(t, idxCtx.ParseTxn())
	assert.NotContains(t, idxCtx.Data, ORD_TAG)
}
