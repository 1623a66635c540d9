package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// SnapshotSource yields snapshots from a remote game.
type SnapshotSource interface {
	Next() (snake.Snapshot, error)
}

type snapshotMsg snake.Snapshot

type streamEndMsg struct{ err error }

// SpectatorModel renders a game played elsewhere.
type SpectatorModel struct {
	src    SnapshotSource
	screen *core.Screen
	quit   key.Binding
	title  string
	snap   *snake.Snapshot
	err    error
}

// NewSpectatorModel creates a viewer for src.
func NewSpectatorModel(src SnapshotSource, title string, cfg core.RuntimeConfig) SpectatorModel {
	return SpectatorModel{
		src:    src,
		screen: core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 1)),
		quit:   DefaultGameKeyMap().Quit,
		title:  title,
	}
}

func (m SpectatorModel) next() tea.Msg {
	snap, err := m.src.Next()
	if err != nil {
		return streamEndMsg{err: err}
	}
	return snapshotMsg(snap)
}

// Init starts reading the stream.
func (m SpectatorModel) Init() tea.Cmd {
	return m.next
}

// Update handles messages.
func (m SpectatorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.quit) {
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height-1)
	case snapshotMsg:
		snap := snake.Snapshot(msg)
		m.snap = &snap
		return m, m.next
	case streamEndMsg:
		m.err = msg.err
	}
	return m, nil
}

// View renders the latest snapshot.
func (m SpectatorModel) View() string {
	var b strings.Builder
	switch {
	case m.snap != nil:
		DrawBoard(m.screen, *m.snap, m.title)
		b.WriteString(RenderScreen(m.screen))
	default:
		m.screen.Clear()
		m.screen.DrawTextCentered(m.screen.Height()/2, "waiting for the game...")
		b.WriteString(m.screen.String())
	}

	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(menuDimStyle.Render("stream ended: " + m.err.Error() + "  (q to quit)"))
	} else {
		b.WriteString(menuDimStyle.Render("spectating  (q to quit)"))
	}
	return b.String()
}

// RunSpectator shows src until the stream ends and the viewer quits.
func RunSpectator(src SnapshotSource, title string, cfg core.RuntimeConfig) error {
	_, err := tea.NewProgram(NewSpectatorModel(src, title, cfg), tea.WithAltScreen()).Run()
	return err
}
