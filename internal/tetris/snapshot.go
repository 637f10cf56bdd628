package tetris

import (
	"time"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Snapshot is a read-only copy of the game state for renderers and tests.
// It shares no mutable memory with the Game that produced it.
type Snapshot struct {
	Width  int
	Height int
	Board  [][]Cell

	Active      Piece
	ActiveCells [4]core.Point
	GhostY      int // Anchor row where the active piece would land
	Next        PieceType

	Score        int
	Lines        int
	Level        int
	FallInterval time.Duration
	Locked       int

	Status Status
}

// Snapshot captures the current game state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Width:        g.board.Width(),
		Height:       g.board.Height(),
		Board:        g.board.Rows(),
		Active:       g.current,
		ActiveCells:  g.current.Cells(),
		GhostY:       g.current.Y + g.DropDistance(),
		Next:         g.next,
		Score:        g.progress.Score(),
		Lines:        g.progress.Lines(),
		Level:        g.progress.Level(),
		FallInterval: g.progress.FallInterval(),
		Locked:       g.locked,
		Status:       g.status,
	}
}

// GameOver reports whether the game was lost.
func (s Snapshot) GameOver() bool {
	return s.Status == StatusGameOver
}

// CellAt returns the locked cell at (x, y), or Empty when out of bounds.
func (s Snapshot) CellAt(x, y int) Cell {
	if y < 0 || y >= len(s.Board) || x < 0 || x >= len(s.Board[y]) {
		return Empty
	}
	return s.Board[y][x]
}

// GhostCells returns the cells the active piece would occupy after a hard drop.
func (s Snapshot) GhostCells() [4]core.Point {
	ghost := s.Active
	ghost.Y = s.GhostY
	return ghost.Cells()
}
