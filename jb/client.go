package jb

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/GorillaPool/go-junglebus"
	"github.com/bsv-blockchain/go-sdk/transaction"
	"github.com/redis/go-redis/v9"
	"github.com/shruggr/go-bpu/bpu"
	"golang.org/x/sync/singleflight"
)

// RawtxSource fetches serialized transactions by id.
type RawtxSource interface {
	GetRawtx(ctx context.Context, txid string) ([]byte, error)
}

// JungleBus adapts a JungleBus client to RawtxSource.
type JungleBus struct {
	Client *junglebus.Client
}

func (j *JungleBus) GetRawtx(ctx context.Context, txid string) ([]byte, error) {
	txn, err := j.Client.GetTransaction(ctx, txid)
	if err != nil {
		return nil, err
	}
	if txn == nil {
		return nil, nil
	}
	return txn.Transaction, nil
}

// Loader resolves raw transactions through an optional redis cache in front
// of a remote source. Concurrent loads of the same txid share one request.
type Loader struct {
	Cache    *redis.Client
	Source   RawtxSource
	CacheTTL time.Duration
	Logger   *slog.Logger

	inflight singleflight.Group
}

func NewLoader(junglebusURL string, redisURL string, ttl time.Duration, logger *slog.Logger) (*Loader, error) {
	if logger == nil {
		logger = slog.Default()
	}
	l := &Loader{
		CacheTTL: ttl,
		Logger:   logger,
	}
	if junglebusURL != "" {
		client, err := junglebus.New(
			junglebus.WithHTTP(junglebusURL),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize junglebus: %w", err)
		}
		l.Source = &JungleBus{Client: client}
		logger.Info("Initialized JungleBus", slog.String("url", junglebusURL))
	}
	if redisURL != "" {
		opts, err := redis.ParseURL(redisURL)
		if err != nil {
			return nil, fmt.Errorf("failed to parse redis url: %w", err)
		}
		l.Cache = redis.NewClient(opts)
		logger.Info("Initialized redis cache", slog.String("addr", opts.Addr))
	}
	return l, nil
}

func TxKey(txid string) string {
	return "tx:" + txid
}

func (l *Loader) LoadRawtx(ctx context.Context, txid string) ([]byte, error) {
	cacheKey := TxKey(txid)
	if l.Cache != nil {
		if rawtx, err := l.Cache.Get(ctx, cacheKey).Bytes(); err == nil && len(rawtx) > 0 {
			return rawtx, nil
		} else if err != nil && !errors.Is(err, redis.Nil) {
			l.Logger.Warn("cache read failed", slog.String("txid", txid), slog.String("error", err.Error()))
		}
	}
	if l.Source == nil {
		return nil, &bpu.Error{Stage: bpu.StageLoad, Err: bpu.ErrTxNotFound}
	}

	result, err, _ := l.inflight.Do(txid, func() (interface{}, error) {
		return l.Source.GetRawtx(ctx, txid)
	})
	if err != nil {
		return nil, &bpu.Error{Stage: bpu.StageLoad, Err: fmt.Errorf("%s: %w", txid, err)}
	}
	rawtx, _ := result.([]byte)
	if len(rawtx) == 0 {
		return nil, &bpu.Error{Stage: bpu.StageLoad, Err: bpu.ErrTxNotFound}
	}

	if l.Cache != nil {
		if err := l.Cache.Set(ctx, cacheKey, rawtx, l.CacheTTL).Err(); err != nil {
			l.Logger.Warn("cache write failed", slog.String("txid", txid), slog.String("error", err.Error()))
		}
	}
	return rawtx, nil
}

func (l *Loader) LoadTx(ctx context.Context, txid string) (*transaction.Transaction, error) {
	rawtx, err := l.LoadRawtx(ctx, txid)
	if err != nil {
		return nil, err
	}
	tx, err := transaction.NewTransactionFromBytes(rawtx)
	if err != nil {
		return nil, &bpu.Error{Stage: bpu.StageDecode, Err: err}
	}
	return tx, nil
}

func (l *Loader) Close() error {
	if l.Cache != nil {
		return l.Cache.Close()
	}
	return nil
}
