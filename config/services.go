package config

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shruggr/go-bpu/idx"
	"github.com/shruggr/go-bpu/jb"
	"github.com/shruggr/go-bpu/lib"
)

// Services holds all initialized services for the parser.
type Services struct {
	// Loader resolves raw transactions by txid
	Loader *jb.Loader

	// Ingest parses transactions with the configured presets
	Ingest *idx.IngestCtx

	// Network is the BSV network (mainnet/testnet)
	Network lib.Network

	// Logger for the services
	Logger *slog.Logger

	// Config holds the configuration used to create services
	Config *Config
}

// Initialize creates all services from configuration.
// The logger parameter is optional (nil = use default logger).
func (c *Config) Initialize(ctx context.Context, logger *slog.Logger) (*Services, error) {
	if logger == nil {
		logger = slog.Default()
	}

	services := &Services{
		Config:  c,
		Logger:  logger,
		Network: lib.NetworkFromString(c.Network.Type),
	}

	var err error
	services.Loader, err = jb.NewLoader(c.Network.JungleBus, c.Cache.Redis, c.Cache.TTL, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize loader: %w", err)
	}

	presets := CreatePresets()
	if _, ok := presets[c.Parse.Preset]; !ok {
		return nil, fmt.Errorf("unknown preset: %s", c.Parse.Preset)
	}

	services.Ingest = &idx.IngestCtx{
		Loader:      services.Loader,
		Presets:     presets,
		Default:     c.Parse.Preset,
		Network:     services.Network,
		MaxDepth:    c.Parse.MaxDepth,
		Concurrency: c.Parse.Concurrency,
		Verbose:     c.Parse.Verbose,
		Logger:      logger,
	}
	logger.Info("Initialized parser",
		slog.String("preset", c.Parse.Preset),
		slog.String("network", string(services.Network)),
		slog.Int("max_depth", c.Parse.MaxDepth),
	)

	return services, nil
}

// Close gracefully shuts down all services.
func (s *Services) Close() error {
	if s.Loader != nil {
		return s.Loader.Close()
	}
	return nil
}
