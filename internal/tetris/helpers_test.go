package tetris

import (
	"testing"
	"time"
)

// sequenceSource replays a fixed list of values, cycling when exhausted.
type sequenceSource struct {
	values []uint64
	i      int
}

func (s *sequenceSource) Uint64() uint64 {
	v := s.values[s.i%len(s.values)]
	s.i++
	return v
}

// newTestGame creates a 10x20 game whose pieces come out in the given order.
func newTestGame(t *testing.T, types ...PieceType) *Game {
	t.Helper()
	values := make([]uint64, len(types))
	for i, pt := range types {
		values[i] = uint64(pt)
	}
	opts := DefaultOptions()
	opts.Random = &sequenceSource{values: values}
	return New(opts)
}

// fillRow fills row y except for the listed columns.
func fillRow(b *Board, y int, gaps ...int) {
	skip := make(map[int]bool, len(gaps))
	for _, x := range gaps {
		skip[x] = true
	}
	for x := 0; x < b.Width(); x++ {
		if !skip[x] {
			b.Set(x, y, Filled(PieceZ))
		}
	}
}

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func at(ms int) time.Time {
	return epoch.Add(time.Duration(ms) * time.Millisecond)
}
