package idx

import "github.com/shruggr/go-bpu/bpu"

// Indexer derives protocol data from a projected transaction.
type Indexer interface {
	Tag() string
	Parse(idxCtx *IndexContext) any
}

type BaseIndexer struct{}

func (b BaseIndexer) Tag() string {
	return ""
}

func (b BaseIndexer) Parse(idxCtx *IndexContext) (data any) {
	return
}

// Preset is a named split configuration plus the indexers run over its
// output.
type Preset struct {
	Name     string
	Config   func() bpu.ParseConfig
	Indexers []Indexer
}
