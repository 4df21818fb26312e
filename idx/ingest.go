package idx

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/bsv-blockchain/go-sdk/transaction"
	"github.com/shruggr/go-bpu/bpu"
	"github.com/shruggr/go-bpu/lib"
	"golang.org/x/sync/errgroup"
)

// TxLoader resolves transactions by id.
type TxLoader interface {
	LoadTx(ctx context.Context, txid string) (*transaction.Transaction, error)
}

type IngestCtx struct {
	Loader      TxLoader
	Presets     map[string]*Preset
	Default     string
	Network     lib.Network
	MaxDepth    int
	Concurrency int
	IncludeRaw  bool
	Verbose     bool
	Logger      *slog.Logger
}

func (cfg *IngestCtx) logger() *slog.Logger {
	if cfg.Logger == nil {
		return slog.Default()
	}
	return cfg.Logger
}

// Preset looks up a preset by name; an empty name selects the default.
func (cfg *IngestCtx) Preset(name string) (*Preset, error) {
	if name == "" {
		name = cfg.Default
	}
	if preset, ok := cfg.Presets[name]; ok {
		return preset, nil
	}
	return nil, fmt.Errorf("unknown preset: %s", name)
}

func (cfg *IngestCtx) ParseTx(ctx context.Context, tx *transaction.Transaction, preset string) (*IndexContext, error) {
	p, err := cfg.Preset(preset)
	if err != nil {
		return nil, err
	}
	start := time.Now()
	idxCtx := NewIndexContext(ctx, tx, p, cfg.Network)
	idxCtx.SetMaxDepth(cfg.MaxDepth)
	idxCtx.SetIncludeRaw(cfg.IncludeRaw)
	if err := idxCtx.ParseTxn(); err != nil {
		return nil, err
	}
	if cfg.Verbose {
		cfg.logger().Info("Parsed",
			slog.String("txid", idxCtx.TxidHex),
			slog.String("preset", p.Name),
			slog.Int("in", len(idxCtx.BPU.In)),
			slog.Int("out", len(idxCtx.BPU.Out)),
			slog.Duration("duration", time.Since(start)),
		)
	}
	return idxCtx, nil
}

func (cfg *IngestCtx) ParseRawtx(ctx context.Context, rawtx []byte, preset string) (*IndexContext, error) {
	tx, err := transaction.NewTransactionFromBytes(rawtx)
	if err != nil {
		return nil, &bpu.Error{Stage: bpu.StageDecode, Err: err}
	}
	return cfg.ParseTx(ctx, tx, preset)
}

// ParseBeef parses the subject transaction of a BEEF envelope, keeping its
// merkle path so the result carries the block height.
func (cfg *IngestCtx) ParseBeef(ctx context.Context, beef []byte, preset string) (*IndexContext, error) {
	tx, err := transaction.NewTransactionFromBEEF(beef)
	if err == nil && tx == nil {
		err = bpu.ErrTxNotFound
	}
	if err != nil {
		return nil, &bpu.Error{Stage: bpu.StageDecode, Err: err}
	}
	return cfg.ParseTx(ctx, tx, preset)
}

func (cfg *IngestCtx) ParseHex(ctx context.Context, rawtx string, preset string) (*IndexContext, error) {
	tx, err := transaction.NewTransactionFromHex(rawtx)
	if err != nil {
		return nil, &bpu.Error{Stage: bpu.StageDecode, Err: err}
	}
	return cfg.ParseTx(ctx, tx, preset)
}

func (cfg *IngestCtx) ParseTxid(ctx context.Context, txid string, preset string) (*IndexContext, error) {
	if cfg.Loader == nil {
		return nil, &bpu.Error{Stage: bpu.StageLoad, Err: bpu.ErrTxNotFound}
	}
	tx, err := cfg.Loader.LoadTx(ctx, txid)
	if err != nil {
		return nil, err
	}
	return cfg.ParseTx(ctx, tx, preset)
}

// ParseBatch parses txids with at most Concurrency loads in flight. Results
// keep the order of txids.
func (cfg *IngestCtx) ParseBatch(ctx context.Context, txids []string, preset string) ([]*IndexContext, error) {
	results := make([]*IndexContext, len(txids))
	g, gctx := errgroup.WithContext(ctx)
	if cfg.Concurrency > 0 {
		g.SetLimit(cfg.Concurrency)
	}
	for i, txid := range txids {
		g.Go(func() error {
			idxCtx, err := cfg.ParseTxid(gctx, txid, preset)
			if err != nil {
				return fmt.Errorf("%s: %w", txid, err)
			}
			results[i] = idxCtx
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
