package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// helpHeight is the number of terminal rows reserved for the key help line.
const helpHeight = 1

// Game is the engine surface the driver steps and draws.
type Game interface {
	Step(in core.InputFrame) core.StepResult
	Render(dst *core.Screen)
	State() core.GameState
}

// GameFactory builds a fresh game seeded with seed.
type GameFactory func(seed int64) Game

// Model is the Bubble Tea model that drives a tetris session.
type Model struct {
	newGame  GameFactory
	game     Game
	screen   *core.Screen
	config   core.RuntimeConfig
	frame    core.InputFrame
	state    core.GameState
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	round    int // Games started in this session
	quitting bool
}

// NewModel creates a new Bubble Tea model and starts the first game.
// A nil logger discards all output.
func NewModel(newGame GameFactory, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	m := Model{
		newGame: newGame,
		screen:  core.NewScreen(cfg.ScreenW, playHeight(cfg.ScreenH)),
		config:  cfg,
		frame:   core.NewInputFrame(),
		keys:    DefaultKeyMap(),
		help:    h,
		logger:  logger,
	}
	m.start(cfg.Seed)
	return m
}

// playHeight returns the screen rows left for the game after the help line.
func playHeight(h int) int {
	return max(h-helpHeight, 1)
}

// start replaces the current game with a fresh one.
func (m *Model) start(seed int64) {
	m.game = m.newGame(seed)
	m.state = m.game.State()
	m.frame.Clear()
	m.round++
	m.logger.Info("game started", "round", m.round, "seed", seed)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickInterval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey queues the mapped action for the next tick. Quit and restart
// take effect immediately.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch action := m.keys.ActionFor(msg); action {
	case core.ActionNone:
		return m, nil

	case core.ActionQuit:
		if !m.state.Finished() {
			// Flush queued input together with the quit command.
			m.frame.Push(core.ActionQuit)
			m.frame.At = time.Time{}
			m.state = m.game.Step(m.frame).State
			m.frame.Clear()
		}
		m.logger.Info("quit", "score", m.state.Score, "lines", m.state.Lines, "level", m.state.Level)
		m.quitting = true
		return m, tea.Quit

	case core.ActionRestart:
		if m.state.GameOver {
			m.start(time.Now().UnixNano())
		}
		return m, nil

	default:
		m.frame.Push(action)
		return m, nil
	}
}

// handleResize processes window resize events. The game keeps its state;
// the renderer centers the board in whatever space is available.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playHeight(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick stamps the pending input frame and steps the game.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.state.Finished() {
		m.frame.Clear()
		return m, tickCmd(m.config.TickInterval())
	}

	prev := m.state
	m.frame.At = now
	result := m.game.Step(m.frame)
	m.state = result.State
	m.frame.Clear()

	m.logStep(prev, result)

	if m.state.Quit {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.config.TickInterval())
}

// logStep reports the lifecycle events of one step.
func (m Model) logStep(prev core.GameState, result core.StepResult) {
	st := result.State
	if result.LinesCleared > 0 {
		m.logger.Info("lines cleared", "count", result.LinesCleared, "total", st.Lines, "score", st.Score)
	}
	if result.LevelChanged {
		m.logger.Info("level up", "level", st.Level)
	}
	if st.Paused != prev.Paused {
		m.logger.Debug("pause toggled", "paused", st.Paused)
	}
	if st.GameOver && !prev.GameOver {
		m.logger.Info("game over", "score", st.Score, "lines", st.Lines, "level", st.Level)
	}
}

// State returns the last game state seen by the driver.
func (m Model) State() core.GameState {
	return m.state
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program and blocks until the player quits.
// It returns the state of the last game played.
func Run(newGame GameFactory, cfg core.RuntimeConfig, logger *log.Logger) (core.GameState, error) {
	model := NewModel(newGame, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return core.GameState{}, err
	}
	return finalState(final), nil
}

// finalState extracts the game state from the model returned by the program.
func finalState(m tea.Model) core.GameState {
	if fm, ok := m.(Model); ok {
		return fm.State()
	}
	return core.GameState{}
}
