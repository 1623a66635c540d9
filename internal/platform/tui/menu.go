package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	menuTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	menuItemStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	menuPickStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MenuModel is the Bubble Tea model for the variant picker.
type MenuModel struct {
	variants       []registry.Variant
	best           map[string]int
	cursor         int
	width          int
	height         int
	keys           MenuKeyMap
	help           help.Model
	quitting       bool
	selected       *registry.Variant
	openScoreboard bool
}

// NewMenuModel creates a menu listing every registered variant. Best scores
// are read from store when it is non-nil.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	variants := registry.List()
	best := make(map[string]int, len(variants))
	if store != nil {
		for _, v := range variants {
			if score, err := store.HighScore(v.ID); err == nil {
				best[v.ID] = score
			}
		}
	}

	return MenuModel{
		variants: variants,
		best:     best,
		width:    cfg.ScreenW,
		height:   cfg.ScreenH,
		keys:     DefaultMenuKeyMap(),
		help:     help.New(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			m.cursor = core.Clamp(m.cursor-1, 0, max(len(m.variants)-1, 0))
		case key.Matches(msg, m.keys.Down):
			m.cursor = core.Clamp(m.cursor+1, 0, max(len(m.variants)-1, 0))
		case key.Matches(msg, m.keys.Select):
			if len(m.variants) > 0 {
				v := m.variants[m.cursor]
				m.selected = &v
				return m, tea.Quit
			}
		case key.Matches(msg, m.keys.Scores):
			m.openScoreboard = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("  S N A K E  "), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(menuDimStyle.Render("Select a variant"), m.width))
	b.WriteString("\n\n")

	for i, v := range m.variants {
		line := fmt.Sprintf("  %-18s best %d", v.Title, m.best[v.ID])
		style := menuItemStyle
		if i == m.cursor {
			line = "> " + line[2:]
			style = menuPickStyle
		}
		b.WriteString(centerText(style.Render(line), m.width))
		b.WriteString("\n")
	}

	if len(m.variants) > 0 {
		b.WriteString("\n")
		b.WriteString(centerText(menuDimStyle.Render(m.variants[m.cursor].Description), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(m.help.View(m.keys), m.width))
	b.WriteString("\n")
	return b.String()
}

// Selected returns the chosen variant, or nil.
func (m MenuModel) Selected() *registry.Variant {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the runtime config with the latest terminal size.
func (m MenuModel) Config(base core.RuntimeConfig) core.RuntimeConfig {
	base.ScreenW = m.width
	base.ScreenH = m.height
	return base
}

// centerText centers text within given width. Styled text is measured
// without its escape sequences.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Variant         registry.Variant
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(NewMenuModel(store, cfg), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}
	return m.result(cfg), nil
}

func (m MenuModel) result(cfg core.RuntimeConfig) MenuResult {
	res := MenuResult{Config: m.Config(cfg)}
	switch {
	case m.WantsScoreboard():
		res.WantsScoreboard = true
	case m.selected != nil:
		res.Variant = *m.selected
	default:
		res.Quit = true
	}
	return res
}
