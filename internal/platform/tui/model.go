package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// Publisher receives every snapshot the game produces.
type Publisher interface {
	Publish(snake.Snapshot)
}

// GameConfig holds everything needed to run one snake session.
type GameConfig struct {
	Variant   registry.Variant
	Options   snake.Options
	Store     *storage.Store // May be nil
	Logger    *log.Logger    // May be nil
	Publisher Publisher      // May be nil
	Runtime   core.RuntimeConfig
}

// Model is the Bubble Tea model for one snake session.
type Model struct {
	variant   registry.Variant
	engine    *snake.Engine
	ticker    *Ticker
	screen    *core.Screen
	store     *storage.Store
	logger    *log.Logger
	publisher Publisher
	keys      GameKeyMap
	help      help.Model
	snap      snake.Snapshot
	saved     bool // Session recorded for the current game over
	embedded  bool // Hosted by SessionModel; back must not quit the program
	back      bool
	quitting  bool
}

// NewModel builds the engine for cfg and wraps it in a model.
func NewModel(cfg GameConfig) (*Model, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	opts := cfg.Options
	if opts.Seed == 0 {
		opts.Seed = cfg.Runtime.Seed
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}

	var best snake.BestScoreStore
	if cfg.Store != nil {
		best = cfg.Store.BestScore(cfg.Variant.ID, logger)
	}

	ticker := &Ticker{}
	engine, err := snake.New(opts, best, ticker, logger.With("variant", cfg.Variant.ID))
	if err != nil {
		return nil, err
	}

	m := &Model{
		variant:   cfg.Variant,
		engine:    engine,
		ticker:    ticker,
		screen:    core.NewScreen(cfg.Runtime.ScreenW, max(cfg.Runtime.ScreenH-1, 1)),
		store:     cfg.Store,
		logger:    logger,
		publisher: cfg.Publisher,
		keys:      DefaultGameKeyMap(),
		help:      help.New(),
	}
	m.observe(engine.Snapshot())
	return m, nil
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height-1)
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		if !m.ticker.Accept(msg) {
			return m, m.ticker.Cmd()
		}
		m.observe(m.engine.Tick())
		return m, m.ticker.Cmd()
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)
	if d, ok := action.Direction(); ok {
		m.engine.RequestDirection(d)
		return m, m.afterRequest()
	}

	switch action {
	case core.ActionQuit:
		m.quitting = true
		m.ticker.Stop()
		return m, tea.Quit
	case core.ActionBack:
		m.back = true
		m.ticker.Stop()
		if m.embedded {
			return m, nil
		}
		return m, tea.Quit
	case core.ActionScreenshot:
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "err", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	case core.ActionStart:
		m.engine.RequestStart()
	case core.ActionPause:
		m.engine.RequestPause()
	case core.ActionReset:
		m.engine.RequestReset()
	default:
		return m, nil
	}
	return m, m.afterRequest()
}

// afterRequest publishes state changes made outside a tick and keeps the
// tick loop alive.
func (m *Model) afterRequest() tea.Cmd {
	if !m.ticker.Running() || m.engine.State() != m.snap.State {
		m.observe(m.engine.Snapshot())
	}
	return m.ticker.Cmd()
}

// observe records a new snapshot, forwards it to the publisher and stores
// the session once it ends.
func (m *Model) observe(snap snake.Snapshot) {
	if snap.State != snake.StateOver {
		m.saved = false
	}
	m.snap = snap
	if m.publisher != nil {
		m.publisher.Publish(snap)
	}
	if snap.State != snake.StateOver || m.saved {
		return
	}
	m.saved = true
	if m.store == nil || snap.Score == 0 {
		return
	}
	_, err := m.store.SaveSession(storage.Session{
		Variant: m.variant.ID,
		Score:   snap.Score,
		Length:  snap.Length(),
		Eaten:   snap.Eaten,
		Ticks:   snap.Tick,
		Reason:  snap.Reason.String(),
	})
	if err != nil {
		m.logger.Error("save session", "err", err)
	}
}

// saveScreenshot writes the current board to ~/.snake/screenshots.
func (m *Model) saveScreenshot() (string, error) {
	DrawBoard(m.screen, m.snap, m.variant.Title)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".snake", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	name := fmt.Sprintf("%s_%s.txt", m.variant.ID, time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	return path, os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the board and the key help line.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	DrawBoard(m.screen, m.snap, m.variant.Title)

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// Snapshot returns the last observed snapshot.
func (m *Model) Snapshot() snake.Snapshot {
	return m.snap
}

// WantsMenu reports whether the player left via the back key.
func (m *Model) WantsMenu() bool {
	return m.back
}

// IsQuitting reports whether the player asked to quit.
func (m *Model) IsQuitting() bool {
	return m.quitting
}

// Run plays one session in the terminal. It reports whether the player asked
// to return to the menu.
func Run(cfg GameConfig) (bool, error) {
	model, err := NewModel(cfg)
	if err != nil {
		return false, err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return false, err
	}
	return model.WantsMenu(), nil
}
