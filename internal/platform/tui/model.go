package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/nightescape/internal/config"
	"github.com/vovakirdan/nightescape/internal/core"
	"github.com/vovakirdan/nightescape/internal/logging"
	"github.com/vovakirdan/nightescape/internal/registry"
	"github.com/vovakirdan/nightescape/internal/storage"
)

// Options wires optional collaborators into the play model.
type Options struct {
	Store     *storage.Store  // run history; nil disables recording
	Logger    *log.Logger     // nil discards
	Watcher   *config.Watcher // live tuning; nil disables hot reload
	HoldTicks int             // movement hold window, 0 for DefaultHoldTicks
}

// Model is the Bubble Tea model for playing a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	watcher    *config.Watcher
	stop       chan struct{} // closed when the session ends; releases the reload reader
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	hold       *HoldTracker
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	back       bool
	runSaved   bool // whether the current finished run has been recorded
}

// configMsg carries a reloaded config from the watcher.
type configMsg config.EscapeConfig

// configErrMsg carries a failed reload.
type configErrMsg struct{ err error }

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      opts.Store,
		logger:     logger,
		watcher:    opts.Watcher,
		stop:       make(chan struct{}),
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		hold:       NewHoldTracker(opts.HoldTicks),
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)

	cmds := []tea.Cmd{tickCmd(m.config.TickRate)}
	if m.watcher != nil {
		cmds = append(cmds, waitForConfig(m.watcher, m.stop))
	}
	return tea.Batch(cmds...)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()

	case configMsg:
		return m.handleConfig(config.EscapeConfig(msg))

	case configErrMsg:
		m.logger.Warn("config reload rejected, keeping previous tuning", "err", msg.err)
		return m, waitForConfig(m.watcher, m.stop)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	actions, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	for _, a := range actions {
		if a == core.ActionBack {
			m.back = true
			return m, tea.Quit
		}
		m.hold.Press(a)
	}
	return m, nil
}

// handleResize follows the terminal size without restarting the run.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(registry.Resizable); ok {
		r.Resize(msg.Width, msg.Height)
	} else if !m.gameState.Running {
		m.game.Reset(m.config)
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.hold.Fill(&m.inputFrame)

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.recordRun()

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// recordRun saves a finished run once per terminal state.
func (m *Model) recordRun() {
	run, finished := storage.RunFromState(m.game.ID(), m.gameState)
	if !finished {
		m.runSaved = false
		return
	}
	if m.runSaved {
		return
	}
	m.runSaved = true

	if m.store == nil {
		return
	}
	if _, err := m.store.SaveRun(run); err != nil {
		m.logger.Error("could not record run", "err", err)
		return
	}
	m.logger.Debug("run recorded", "outcome", run.Outcome, "score", run.Score)
}

func (m Model) handleConfig(cfg config.EscapeConfig) (tea.Model, tea.Cmd) {
	if r, ok := m.game.(registry.Retunable); ok {
		if err := r.Retune(cfg); err != nil {
			m.logger.Warn("config reload rejected", "err", err)
		}
	}
	return m, waitForConfig(m.watcher, m.stop)
}

// waitForConfig blocks until the watcher delivers a reload or closes, or
// until stop is closed. Bubble Tea never cancels a running command, so a
// finished session must close stop or its reader would keep taking reloads
// meant for the next session.
func waitForConfig(w *config.Watcher, stop <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		select {
		case <-stop:
			return nil
		case cfg, ok := <-w.Configs:
			if !ok {
				return nil
			}
			return configMsg(cfg)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return configErrMsg{err: err}
		}
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.back {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the last stepped game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// Result reports how a play session ended.
type Result struct {
	Back bool // Esc pressed: return to the menu
}

// Close ends the session's background reload reader. Safe to call once
// the program has stopped.
func (m Model) Close() {
	select {
	case <-m.stop:
	default:
		close(m.stop)
	}
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) (Result, error) {
	model := NewModel(game, cfg, opts)
	defer model.Close()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return Result{}, err
	}

	m, ok := finalModel.(Model)
	if !ok {
		return Result{}, nil
	}
	return Result{Back: m.back}, nil
}
