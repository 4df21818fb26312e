package bpu

// Counter carries the running positions of one input or output pass.
type Counter struct {
	ChunkIndex int
	CellIndex  int
	TapeIndex  int
}

// Splitter accumulates cells into tapes for a single script.
type Splitter struct {
	Rules     []SplitConfig
	Transform Transform
	Counter   Counter
	Tapes     []Tape
	cells     []Cell
}

func NewSplitter(rules []SplitConfig, transform Transform) *Splitter {
	return &Splitter{
		Rules:     rules,
		Transform: transform,
		Tapes:     []Tape{},
	}
}

// Split groups a flattened token stream into tapes.
func Split(tokens []ScriptToken, rules []SplitConfig, transform Transform) []Tape {
	s := NewSplitter(rules, transform)
	for _, tok := range tokens {
		s.Extract(tok)
	}
	return s.Finish()
}

func (s *Splitter) cell(tok ScriptToken, cellIndex int) Cell {
	cell := newCell(tok, s.Counter.ChunkIndex, cellIndex)
	if s.Transform != nil {
		cell = s.Transform(cell, tok)
	}
	return cell
}

func (s *Splitter) flush() {
	s.Tapes = append(s.Tapes, Tape{
		Cell: append([]Cell{}, s.cells...),
		I:    s.Counter.TapeIndex,
	})
}

// Extract consumes the next token of a flattened stream at
// Counter.ChunkIndex and advances the index.
func (s *Splitter) Extract(tok ScriptToken) {
	defer func() { s.Counter.ChunkIndex++ }()
	candidate := newCell(tok, s.Counter.ChunkIndex, s.Counter.CellIndex)
	include, ok := splitter(s.Rules, tok, &candidate)
	if !ok {
		s.cells = append(s.cells, s.cell(tok, s.Counter.CellIndex))
		s.Counter.CellIndex++
		return
	}

	switch include {
	case IncludeR:
		s.flush()
		s.Counter.TapeIndex++
		// the delimiter keeps the cell index it would have had in the
		// closed tape
		s.cells = []Cell{s.cell(tok, s.Counter.CellIndex)}
		s.Counter.CellIndex = 1
	case IncludeC:
		s.flush()
		s.Counter.TapeIndex++
		// the delimiter tape shares its index with the tape that follows
		s.Tapes = append(s.Tapes, Tape{
			Cell: []Cell{s.cell(tok, 0)},
			I:    s.Counter.TapeIndex,
		})
		s.cells = s.cells[:0]
		s.Counter.CellIndex = 0
	default:
		s.cells = append(s.cells, s.cell(tok, s.Counter.CellIndex))
		s.Counter.CellIndex++
		s.flush()
		s.Counter.TapeIndex++
		s.cells = s.cells[:0]
		s.Counter.CellIndex = 0
	}
}

// Finish flushes any pending cells and returns the tapes.
func (s *Splitter) Finish() []Tape {
	if len(s.cells) > 0 {
		s.flush()
		s.cells = s.cells[:0]
	}
	return s.Tapes
}
