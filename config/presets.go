package config

import (
	"github.com/shruggr/go-bpu/idx"
	"github.com/shruggr/go-bpu/mod/bitcom"
	"github.com/shruggr/go-bpu/mod/bob"
	"github.com/shruggr/go-bpu/mod/lock"
	"github.com/shruggr/go-bpu/mod/ord"
	"github.com/shruggr/go-bpu/mod/p2pkh"
)

// CreatePresets returns every known preset keyed by name.
func CreatePresets() map[string]*idx.Preset {
	presets := []*idx.Preset{
		{
			Name:     bob.BOB_TAG,
			Config:   bob.Config,
			Indexers: []idx.Indexer{&p2pkh.P2PKHIndexer{}, &lock.LockIndexer{}},
		},
		{
			Name:     bitcom.BITCOM_TAG,
			Config:   bitcom.Config,
			Indexers: []idx.Indexer{&bitcom.BitcomIndexer{}},
		},
		{
			Name:     ord.ORD_TAG,
			Config:   ord.Config,
			Indexers: []idx.Indexer{&ord.OrdIndexer{}},
		},
	}
	m := make(map[string]*idx.Preset, len(presets))
	for _, p := range presets {
		m[p.Name] = p
	}
	return m
}
