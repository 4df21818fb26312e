package ord

import (
	"unicode/utf8"

	"github.com/bsv-blockchain/go-sdk/script"
	"github.com/bsv-blockchain/go-sdk/transaction"
	"github.com/shruggr/go-bpu/bpu"
	"github.com/shruggr/go-bpu/idx"
	"github.com/shruggr/go-bpu/mod/bob"
)

const ORD_TAG = "ord"

var (
	// ProtocolTag opens the then-branch of an inscription envelope.
	ProtocolTag = []byte("ord")

	FalseMarker       byte = script.OpFALSE
	ContentTypeMarker byte = script.Op1
	DataMarker        byte = script.Op0
)

// OrdData is one inscription pulled out of an envelope.
type OrdData struct {
	Data        []byte `json:"data"`
	ContentType string `json:"content_type"`
	Vout        uint32 `json:"vout"`
	Text        bool   `json:"is_text"`
}

// IsText reports whether the payload can be presented as UTF-8 text.
func (o *OrdData) IsText() bool {
	return utf8.Valid(o.Data)
}

// BMap accumulates protocol records found in a transaction.
type BMap struct {
	Timestamp uint64     `json:"timestamp"`
	Ord       []*OrdData `json:"ord"`
}

func NewBMap(timestamp uint64) *BMap {
	return &BMap{
		Timestamp: timestamp,
		Ord:       []*OrdData{},
	}
}

// Config splits like bob; inscriptions are located separately by Handler.
func Config() bpu.ParseConfig {
	return bob.Config()
}

func FromRawTx(rawtx string) (*bpu.BPU, error) {
	return bpu.FromRawTx(rawtx, Config())
}

// ScriptChecker finds the first top-level conditional of a script and reports
// whether it is an inscription envelope: preceded by OP_FALSE and opening with
// the ord tag. The index of the conditional is returned on success.
func ScriptChecker(tokens []bpu.ScriptToken) (int, bool) {
	for i, tok := range tokens {
		if !tok.IsConditional() {
			continue
		}
		if i == 0 {
			return 0, false
		}
		prev := tokens[i-1]
		if prev.Kind != bpu.KindOpCode || prev.Op != FalseMarker {
			return 0, false
		}
		if len(tok.Then) == 0 || tok.Then[0].Kind != bpu.KindPush || string(tok.Then[0].Data) != string(ProtocolTag) {
			return 0, false
		}
		return i, true
	}
	return 0, false
}

// Envelope is a located inscription conditional.
type Envelope struct {
	Vout uint32
	Cond bpu.ScriptToken
}

// GetOrdScripts returns the envelope conditional of every output that carries
// one, in output order.
func GetOrdScripts(tx *transaction.Transaction, maxDepth int) ([]*Envelope, error) {
	var envelopes []*Envelope
	for vout, output := range tx.Outputs {
		tokens, err := bpu.ParseScript(output.LockingScript, maxDepth)
		if err != nil {
			continue
		}
		if i, ok := ScriptChecker(tokens); ok {
			envelopes = append(envelopes, &Envelope{
				Vout: uint32(vout),
				Cond: tokens[i],
			})
		}
	}
	if len(envelopes) == 0 {
		return nil, &bpu.Error{Stage: bpu.StageEnvelope, Err: bpu.ErrEnvelopeNotFound}
	}
	return envelopes, nil
}

// Extract reads the content type and payload out of an envelope's
// then-branch. It returns nil unless both are present.
func (e *Envelope) Extract() *OrdData {
	var contentType *string
	var data []byte
	branch := e.Cond.Then
	for i := 0; i < len(branch)-1; i++ {
		tok, next := branch[i], branch[i+1]
		if tok.Kind != bpu.KindOpCode || next.Kind != bpu.KindPush {
			continue
		}
		switch tok.Op {
		case ContentTypeMarker:
			mime := bpu.LossyString(next.Data)
			contentType = &mime
		case DataMarker:
			data = next.Data
		default:
			continue
		}
		if contentType != nil && data != nil {
			break
		}
	}
	if contentType == nil || data == nil {
		return nil
	}
	o := &OrdData{
		Data:        data,
		ContentType: *contentType,
		Vout:        e.Vout,
	}
	o.Text = o.IsText()
	return o
}

// Handler appends every complete inscription in tx to bmap. It fails only
// when no output carries an envelope at all.
func Handler(tx *transaction.Transaction, bmap *BMap, maxDepth int) error {
	envelopes, err := GetOrdScripts(tx, maxDepth)
	if err != nil {
		return err
	}
	for _, env := range envelopes {
		if ord := env.Extract(); ord != nil {
			bmap.Ord = append(bmap.Ord, ord)
		}
	}
	return nil
}

type OrdIndexer struct {
	idx.BaseIndexer
}

func (i *OrdIndexer) Tag() string {
	return ORD_TAG
}

// Parse records the inscriptions of a transaction. Transactions without an
// envelope yield nothing.
func (i *OrdIndexer) Parse(idxCtx *idx.IndexContext) any {
	bmap := NewBMap(uint64(idxCtx.Parsed.Unix()))
	if err := Handler(idxCtx.Tx, bmap, idxCtx.MaxDepth()); err != nil || len(bmap.Ord) == 0 {
		return nil
	}
	return bmap
}
