package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/nightescape/internal/storage"
)

const (
	historyLimit   = 100
	levelColumn    = 4
	wideLevelWidth = 20
	dateLayout     = "Jan 02 15:04"
)

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).MarginBottom(1)
	boardFrameStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	boardHintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	boardEmptyStyle = boardHintStyle.Italic(true).Padding(2, 4)
	escapedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	caughtStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// ScoreboardKeyMap holds the run history bindings.
type ScoreboardKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Escapes key.Binding
	Back    key.Binding
	Quit    key.Binding
}

func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Escapes, k.Back, k.Quit}
}

func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Escapes}, {k.Back, k.Quit}}
}

func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	bind := func(help, desc string, keys ...string) key.Binding {
		return key.NewBinding(key.WithKeys(keys...), key.WithHelp(help, desc))
	}
	return ScoreboardKeyMap{
		Up:      bind("up/k", "scroll up", "up", "k"),
		Down:    bind("down/j", "scroll down", "down", "j"),
		Escapes: bind("e", "escapes only", "e"),
		Back:    bind("esc/b", "back", "esc", "b"),
		Quit:    bind("q", "quit", "q", "ctrl+c"),
	}
}

// ScoreboardModel shows the best recorded runs of one game.
type ScoreboardModel struct {
	gameID   string
	title    string
	tickRate int
	store    *storage.Store

	runs        []storage.Run // everything loaded, best first
	stats       *storage.Stats
	loadErr     error
	escapesOnly bool

	table  table.Model
	help   help.Model
	keys   ScoreboardKeyMap
	width  int
	height int

	quitting  bool
	goingBack bool
}

func NewScoreboardModel(gameID, title string, store *storage.Store, width, height, tickRate int) ScoreboardModel {
	m := ScoreboardModel{
		gameID:   gameID,
		title:    title,
		tickRate: tickRate,
		store:    store,
		keys:     DefaultScoreboardKeyMap(),
		help:     help.New(),
		width:    width,
		height:   height,
	}
	if m.tickRate <= 0 {
		m.tickRate = 60
	}

	if store != nil {
		m.runs, m.loadErr = store.TopRuns(gameID, historyLimit)
		if m.loadErr == nil {
			m.stats, m.loadErr = store.Stats(gameID)
		}
	}
	m.rebuild()
	return m
}

// rebuild recreates the table for the current size and filter.
func (m *ScoreboardModel) rebuild() {
	cols := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Notes", Width: 6},
		{Title: "Keys", Width: 5},
		{Title: "Result", Width: 8},
		{Title: "Level", Width: wideLevelWidth},
		{Title: "Time", Width: 7},
		{Title: "Date", Width: 12},
	}
	if m.width < 74 {
		cols[levelColumn].Width = 6
	}

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)

	m.table = table.New(
		table.WithColumns(cols),
		table.WithRows(m.rows(cols[levelColumn].Width == wideLevelWidth)),
		table.WithFocused(true),
		table.WithHeight(max(m.height-12, 3)),
		table.WithStyles(styles),
	)
	m.help.Width = m.width
}

// visible returns the runs the current filter lets through, in rank order.
func (m ScoreboardModel) visible() []storage.Run {
	if !m.escapesOnly {
		return m.runs
	}
	var out []storage.Run
	for _, r := range m.runs {
		if r.Outcome == storage.OutcomeEscaped {
			out = append(out, r)
		}
	}
	return out
}

func (m ScoreboardModel) rows(wide bool) []table.Row {
	runs := m.visible()
	rows := make([]table.Row, 0, len(runs))
	for i, r := range runs {
		level := strconv.Itoa(r.LevelReached)
		if wide && r.LevelName != "" {
			level += " " + r.LevelName
		}
		rows = append(rows, table.Row{
			"#" + strconv.Itoa(i+1),
			strconv.Itoa(r.Score),
			strconv.Itoa(r.Keys),
			string(r.Outcome),
			level,
			formatTicks(r.Ticks, m.tickRate),
			r.CreatedAt.Format(dateLayout),
		})
	}
	return rows
}

// formatTicks renders a tick count as m:ss of play time.
func formatTicks(ticks, tickRate int) string {
	d := time.Duration(ticks) * time.Second / time.Duration(tickRate)
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}

func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Escapes):
			m.escapesOnly = !m.escapesOnly
			m.rebuild()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.rebuild()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	heading := "HIGH SCORES - " + m.title
	if m.escapesOnly {
		heading += " (escapes)"
	}

	var b strings.Builder
	b.WriteString(boardTitleStyle.Render(centerText(heading, m.width)))
	b.WriteString("\n\n")
	if line := m.statsLine(); line != "" {
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n\n")
	}
	b.WriteString(boardFrameStyle.Render(m.body()))
	b.WriteString("\n")
	if line := m.selectedLine(); line != "" {
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString(boardHintStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m ScoreboardModel) statsLine() string {
	if m.stats == nil || m.stats.Runs == 0 {
		return ""
	}
	return fmt.Sprintf("Runs: %d  Escapes: %d  Best: %d  Avg: %.1f  Last: %s",
		m.stats.Runs, m.stats.Escapes, m.stats.BestScore, m.stats.AvgScore,
		m.stats.LastPlayed.Format(dateLayout))
}

// selectedLine describes the highlighted run in full.
func (m ScoreboardModel) selectedLine() string {
	runs := m.visible()
	i := m.table.Cursor()
	if i < 0 || i >= len(runs) {
		return ""
	}
	r := runs[i]

	verdict := caughtStyle.Render("caught")
	where := fmt.Sprintf("on level %d", r.LevelReached)
	if r.Outcome == storage.OutcomeEscaped {
		verdict = escapedStyle.Render("escaped")
		where = fmt.Sprintf("after %d levels", r.LevelReached)
	}
	if r.LevelName != "" {
		where += " (" + r.LevelName + ")"
	}
	return fmt.Sprintf(" %s %s with %d notes and %d keys in %s",
		verdict, where, r.Score, r.Keys, formatTicks(r.Ticks, m.tickRate))
}

func (m ScoreboardModel) body() string {
	switch {
	case m.store == nil:
		return boardEmptyStyle.Render("Run history is unavailable.")
	case m.loadErr != nil:
		return boardEmptyStyle.Render("Could not read run history:\n" + m.loadErr.Error())
	case len(m.runs) == 0:
		return boardEmptyStyle.Render("No runs recorded yet.\nEscape the facility to set a score!")
	case len(m.visible()) == 0:
		return boardEmptyStyle.Render("Nobody has escaped yet.\nPress e to show every run.")
	}
	return m.table.View()
}

// IsGoingBack reports whether the user asked to return to the menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard shows the run history until the user leaves. goBack is
// false when the user quit outright.
func RunScoreboard(gameID, title string, store *storage.Store, width, height, tickRate int) (goBack bool, err error) {
	final, err := tea.NewProgram(
		NewScoreboardModel(gameID, title, store, width, height, tickRate),
		tea.WithAltScreen(),
	).Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}
