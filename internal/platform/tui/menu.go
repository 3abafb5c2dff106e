package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/nightescape/internal/core"
	"github.com/vovakirdan/nightescape/internal/storage"
)

// MenuChoice is what the player picked on the start menu.
type MenuChoice int

const (
	MenuChoiceNone MenuChoice = iota
	MenuChoicePlay
	MenuChoiceScores
	MenuChoiceQuit
)

// MenuItem represents a selectable entry in the menu.
type MenuItem struct {
	Label  string
	Choice MenuChoice
}

var menuItems = []MenuItem{
	{Label: "Start", Choice: MenuChoicePlay},
	{Label: "High Scores", Choice: MenuChoiceScores},
	{Label: "Quit", Choice: MenuChoiceQuit},
}

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	menuDimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	menuActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
)

const menuTagline = "Find the key. Stay quiet. Get out."

// MenuModel is the start menu shown before each run.
type MenuModel struct {
	title  string
	items  []MenuItem
	cursor int
	record string // past runs summary, empty before the first run
	config core.RuntimeConfig
	keys   *KeyMapper
	choice MenuChoice
}

// NewMenuModel builds the menu. With a store it summarizes the past runs
// of gameID under the items.
func NewMenuModel(gameID, title string, store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	m := MenuModel{
		title:  title,
		items:  menuItems,
		config: cfg,
		keys:   NewKeyMapper(),
	}
	if store == nil {
		return m
	}
	if st, err := store.Stats(gameID); err == nil && st.Runs > 0 {
		m.record = fmt.Sprintf("Best: %d notes   Escaped %d of %d runs", st.BestScore, st.Escapes, st.Runs)
	}
	return m
}

func (m MenuModel) Init() tea.Cmd {
	return nil
}

func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.config.ScreenW, m.config.ScreenH = msg.Width, msg.Height
	case tea.KeyMsg:
		switch m.keys.MapKeyToMenuAction(msg) {
		case MenuActionQuit, MenuActionBack:
			m.choice = MenuChoiceQuit
			return m, tea.Quit
		case MenuActionUp:
			m.cursor = max(m.cursor-1, 0)
		case MenuActionDown:
			m.cursor = min(m.cursor+1, len(m.items)-1)
		case MenuActionSelect:
			m.choice = m.items[m.cursor].Choice
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m MenuModel) View() string {
	if m.choice != MenuChoiceNone {
		return ""
	}

	w := m.config.ScreenW
	lines := []string{
		"",
		menuTitleStyle.Render(centerText(strings.ToUpper(m.title), w)),
		"",
		menuDimStyle.Render(centerText(menuTagline, w)),
		"",
	}
	for i, item := range m.items {
		if i == m.cursor {
			lines = append(lines, menuActiveStyle.Render(centerText("> "+item.Label, w)))
		} else {
			lines = append(lines, centerText("  "+item.Label, w))
		}
	}
	lines = append(lines, "")
	if m.record != "" {
		lines = append(lines, centerText(m.record, w))
	}
	lines = append(lines, menuDimStyle.Render(centerText("Up/Down: Navigate  |  Enter: Select  |  Q: Quit", w)), "")
	return strings.Join(lines, "\n")
}

// Choice returns what the player picked, MenuChoiceNone while undecided.
func (m MenuModel) Choice() MenuChoice {
	return m.choice
}

// Config returns the runtime config, resized to the last window size seen.
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	n := lipgloss.Width(text)
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Choice MenuChoice
	Config core.RuntimeConfig
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(gameID, title string, store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	final, err := tea.NewProgram(NewMenuModel(gameID, title, store, cfg), tea.WithAltScreen()).Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := final.(MenuModel)
	if !ok || m.Choice() == MenuChoiceNone {
		return MenuResult{Choice: MenuChoiceQuit, Config: cfg}, nil
	}

	return MenuResult{Choice: m.Choice(), Config: m.Config()}, nil
}
