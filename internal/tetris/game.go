package tetris

import (
	"time"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Command is a discrete player command delivered to the controller.
type Command int

const (
	CommandMoveLeft Command = iota
	CommandMoveRight
	CommandSoftDrop
	CommandHardDrop
	CommandRotate
	CommandPause
	CommandQuit
)

// String returns a human-readable name for the command.
func (c Command) String() string {
	switch c {
	case CommandMoveLeft:
		return "MoveLeft"
	case CommandMoveRight:
		return "MoveRight"
	case CommandSoftDrop:
		return "SoftDrop"
	case CommandHardDrop:
		return "HardDrop"
	case CommandRotate:
		return "Rotate"
	case CommandPause:
		return "Pause"
	case CommandQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Status is the controller state.
type Status int

const (
	StatusRunning Status = iota
	StatusPaused
	StatusGameOver // Terminal: a spawned piece did not fit
	StatusQuit     // Terminal: the player left voluntarily
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusPaused:
		return "paused"
	case StatusGameOver:
		return "game_over"
	case StatusQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further state changes can happen.
func (s Status) Terminal() bool {
	return s == StatusGameOver || s == StatusQuit
}

// wallKicks are tried in order when a rotation does not fit in place.
var wallKicks = [...]core.Point{{X: 1, Y: 0}, {X: -1, Y: 0}, {X: 0, Y: -1}}

// Board dimensions used when Options leave them unset.
const (
	DefaultWidth  = 10
	DefaultHeight = 20
)

// Options configures a new Game.
type Options struct {
	Width            int
	Height           int
	BaseFallInterval time.Duration // Fall interval at level 1
	MinFallInterval  time.Duration // Floor for the fall interval at high levels
	Random           RandomSource  // Piece picker; seeded from the clock when nil
}

// DefaultOptions returns the classic 10x20 setup.
func DefaultOptions() Options {
	return Options{
		Width:            DefaultWidth,
		Height:           DefaultHeight,
		BaseFallInterval: DefaultBaseFallInterval,
		MinFallInterval:  DefaultMinFallInterval,
	}
}

// Game is the game-loop controller. It exclusively owns the board, the
// active piece and the progress counters; it is not safe for concurrent use.
type Game struct {
	board    *Board
	current  Piece
	next     PieceType
	progress Progress
	status   Status
	rng      RandomSource

	lastFall time.Time // Zero until the first tick after start or resume
	locked   int       // Total pieces locked this session

	events stepEvents
}

// stepEvents accumulates what happened since the last Step.
type stepEvents struct {
	lines   int
	levelUp bool
	locked  int
}

// New creates a game with two independently drawn pieces: the active one,
// already spawned, and the next one.
func New(opts Options) *Game {
	if opts.Width <= 0 {
		opts.Width = DefaultWidth
	}
	if opts.Height <= 0 {
		opts.Height = DefaultHeight
	}
	rng := opts.Random
	if rng == nil {
		rng = NewRandomSource(time.Now().UnixNano())
	}

	g := &Game{
		board:    NewBoard(opts.Width, opts.Height),
		progress: NewProgress(opts.BaseFallInterval, opts.MinFallInterval),
		status:   StatusRunning,
		rng:      rng,
	}
	first := drawPieceType(rng)
	g.next = drawPieceType(rng)
	g.current = SpawnPiece(first, g.board.Width())
	if !g.board.Fits(g.current) {
		g.status = StatusGameOver
	}
	return g
}

// Status returns the controller state.
func (g *Game) Status() Status { return g.status }

// Current returns the active piece.
func (g *Game) Current() Piece { return g.current }

// Next returns the type of the piece that spawns after the active one locks.
func (g *Game) Next() PieceType { return g.next }

// Score returns the current score.
func (g *Game) Score() int { return g.progress.Score() }

// Lines returns the total cleared lines.
func (g *Game) Lines() int { return g.progress.Lines() }

// Level returns the current level.
func (g *Game) Level() int { return g.progress.Level() }

// FallInterval returns the current gravity interval.
func (g *Game) FallInterval() time.Duration { return g.progress.FallInterval() }

// Move shifts the active piece by (dx, dy) if the new position is valid.
func (g *Game) Move(dx, dy int) bool {
	if g.status != StatusRunning {
		return false
	}
	moved := g.current.Moved(dx, dy)
	if !g.board.Fits(moved) {
		return false
	}
	g.current = moved
	return true
}

// Rotate advances the active piece one rotation state, trying the wall kicks
// in order when the rotated shape does not fit in place. When nothing fits
// the piece is left unchanged.
func (g *Game) Rotate() bool {
	if g.status != StatusRunning {
		return false
	}
	rotated := g.current.Rotated()
	if g.board.Fits(rotated) {
		g.current = rotated
		return true
	}
	for _, k := range wallKicks {
		kicked := rotated.Moved(k.X, k.Y)
		if g.board.Fits(kicked) {
			g.current = kicked
			return true
		}
	}
	return false
}

// SoftDrop moves the active piece down one row, scoring a point on success.
func (g *Game) SoftDrop() bool {
	if !g.Move(0, 1) {
		return false
	}
	g.progress.AddDropPoints(SoftDropPoints)
	return true
}

// HardDrop drops the active piece as far as it goes, scores two points per
// row travelled, and locks it. Returns the number of rows travelled.
func (g *Game) HardDrop() int {
	if g.status != StatusRunning {
		return 0
	}
	rows := 0
	for g.Move(0, 1) {
		rows++
	}
	g.progress.AddDropPoints(HardDropPoints * rows)
	g.lock()
	return rows
}

// DropDistance returns how many rows the active piece can still fall.
func (g *Game) DropDistance() int {
	n := 0
	for g.board.Fits(g.current.Moved(0, n+1)) {
		n++
	}
	return n
}

// lock commits the active piece, clears lines, scores them and spawns the next piece.
func (g *Game) lock() {
	g.board.Lock(g.current)
	g.locked++
	g.events.locked++

	cleared := g.board.ClearLines()
	if _, levelUp := g.progress.ApplyClear(cleared); levelUp {
		g.events.levelUp = true
	}
	g.events.lines += cleared

	g.spawn()
}

// spawn promotes the next piece and draws a new one. A spawn that does not
// fit ends the game.
func (g *Game) spawn() {
	g.current = SpawnPiece(g.next, g.board.Width())
	g.next = drawPieceType(g.rng)
	if !g.board.Fits(g.current) {
		g.status = StatusGameOver
	}
}

// Apply executes one command synchronously. Returns whether it changed the game.
func (g *Game) Apply(cmd Command) bool {
	if g.status.Terminal() {
		return false
	}

	switch cmd {
	case CommandMoveLeft:
		return g.Move(-1, 0)
	case CommandMoveRight:
		return g.Move(1, 0)
	case CommandSoftDrop:
		return g.SoftDrop()
	case CommandHardDrop:
		if g.status != StatusRunning {
			return false
		}
		g.HardDrop()
		return true
	case CommandRotate:
		return g.Rotate()
	case CommandPause:
		g.togglePause()
		return true
	case CommandQuit:
		g.status = StatusQuit
		return true
	}
	return false
}

func (g *Game) togglePause() {
	switch g.status {
	case StatusRunning:
		g.status = StatusPaused
	case StatusPaused:
		g.status = StatusRunning
		g.lastFall = time.Time{}
	}
}

// Tick runs the gravity check. The first tick after start or resume only
// records the fall-timing reference. Afterwards, once a full fall interval has
// elapsed, the piece moves down one row or locks if it cannot.
func (g *Game) Tick(now time.Time) {
	if g.status != StatusRunning {
		return
	}
	if g.lastFall.IsZero() {
		g.lastFall = now
		return
	}
	if now.Sub(g.lastFall) < g.progress.FallInterval() {
		return
	}
	if !g.Move(0, 1) {
		g.lock()
	}
	g.lastFall = now
}

// commandForAction maps platform actions to engine commands.
func commandForAction(a core.Action) (Command, bool) {
	switch a {
	case core.ActionLeft:
		return CommandMoveLeft, true
	case core.ActionRight:
		return CommandMoveRight, true
	case core.ActionDown:
		return CommandSoftDrop, true
	case core.ActionDrop:
		return CommandHardDrop, true
	case core.ActionRotate:
		return CommandRotate, true
	case core.ActionPause:
		return CommandPause, true
	case core.ActionQuit:
		return CommandQuit, true
	}
	return 0, false
}

// Step applies every action of the frame in arrival order, then runs the
// gravity check at the frame timestamp.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = stepEvents{}

	for _, a := range in.Actions {
		if cmd, ok := commandForAction(a); ok {
			g.Apply(cmd)
		}
	}
	if !in.At.IsZero() {
		g.Tick(in.At)
	}

	return core.StepResult{
		State:        g.State(),
		LinesCleared: g.events.lines,
		LevelChanged: g.events.levelUp,
		Locked:       g.events.locked,
	}
}

// State returns the coarse status used by the platform.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.progress.Score(),
		Lines:    g.progress.Lines(),
		Level:    g.progress.Level(),
		GameOver: g.status == StatusGameOver,
		Paused:   g.status == StatusPaused,
		Quit:     g.status == StatusQuit,
	}
}
