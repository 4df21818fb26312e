package idx

import (
	"context"
	"time"

	"github.com/bsv-blockchain/go-sdk/transaction"
	"github.com/shruggr/go-bpu/bpu"
	"github.com/shruggr/go-bpu/lib"
)

type IndexContext struct {
	Tx       *transaction.Transaction `json:"-"`
	TxidHex  string                   `json:"txid"`
	Height   uint32                   `json:"height,omitempty"`
	Preset   string                   `json:"preset"`
	BPU      *bpu.BPU                 `json:"bpu"`
	Data     map[string]any           `json:"data,omitempty"`
	Indexers []Indexer                `json:"-"`
	Ctx      context.Context          `json:"-"`
	Network  lib.Network              `json:"-"`
	Parsed   time.Time                `json:"-"`

	config bpu.ParseConfig
}

func NewIndexContext(ctx context.Context, tx *transaction.Transaction, preset *Preset, network ...lib.Network) *IndexContext {
	if tx == nil || preset == nil {
		return nil
	}
	idxCtx := &IndexContext{
		Tx:       tx,
		TxidHex:  tx.TxID().String(),
		Preset:   preset.Name,
		Indexers: preset.Indexers,
		Ctx:      ctx,
		Data:     make(map[string]any),
		config:   preset.Config(),
	}
	if len(network) > 0 {
		idxCtx.Network = network[0]
	} else {
		idxCtx.Network = lib.Mainnet
	}
	idxCtx.config.Addresses = idxCtx.Network
	if tx.MerklePath != nil {
		idxCtx.Height = tx.MerklePath.BlockHeight
	}
	return idxCtx
}

// SetMaxDepth bounds conditional nesting for every script of the transaction.
func (idxCtx *IndexContext) SetMaxDepth(depth int) {
	idxCtx.config.MaxDepth = depth
}

func (idxCtx *IndexContext) SetIncludeRaw(raw bool) {
	idxCtx.config.IncludeRaw = raw
}

func (idxCtx *IndexContext) MaxDepth() int {
	return idxCtx.config.MaxDepth
}

// ParseTxn projects the transaction and runs the preset's indexers over it.
func (idxCtx *IndexContext) ParseTxn() (err error) {
	if idxCtx.BPU, err = bpu.Collect(idxCtx.Tx, idxCtx.config); err != nil {
		return err
	}
	idxCtx.Parsed = time.Now()
	for _, indexer := range idxCtx.Indexers {
		if data := indexer.Parse(idxCtx); data != nil {
			idxCtx.Data[indexer.Tag()] = data
		}
	}
	return nil
}
