package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tictactoe/internal/games/tictactoe"
	"github.com/vovakirdan/tui-tictactoe/internal/storage"
)

// Scoreboard layout constants
const (
	minWidthForSidebar = 80  // Minimum width to show the filter sidebar
	sidebarWidth       = 22  // Width of the filter sidebar
	maxResults         = 100 // Max results to show
	fetchResults       = 500 // Results fetched before difficulty filtering
)

// ScoreFilter selects which rounds the scoreboard shows.
type ScoreFilter struct {
	Label      string
	GameID     string
	Mode       string
	Difficulty string
}

// ScoreFilters lists the scoreboard views in display order.
var ScoreFilters = []ScoreFilter{
	{Label: "All rounds"},
	{Label: "vs CPU Easy", GameID: tictactoe.GameIDVsCPU, Mode: string(tictactoe.ModeVsCPU), Difficulty: string(tictactoe.DifficultyEasy)},
	{Label: "vs CPU Medium", GameID: tictactoe.GameIDVsCPU, Mode: string(tictactoe.ModeVsCPU), Difficulty: string(tictactoe.DifficultyMedium)},
	{Label: "vs CPU Hard", GameID: tictactoe.GameIDVsCPU, Mode: string(tictactoe.ModeVsCPU), Difficulty: string(tictactoe.DifficultyHard)},
	{Label: "Two Players", GameID: tictactoe.GameIDPvP, Mode: string(tictactoe.ModePvP)},
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	NextFilter key.Binding
	PrevFilter key.Binding
	Back       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextFilter, k.PrevFilter, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextFilter, k.PrevFilter},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextFilter: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab/l", "next view"),
		),
		PrevFilter: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab/h", "prev view"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel shows recent rounds and the win/loss/draw tally.
type ScoreboardModel struct {
	filterCursor int
	store        *storage.Store
	results      []storage.Result
	tally        storage.Tally
	loadErr      error
	table        table.Model
	help         help.Model
	keys         ScoreboardKeyMap
	width        int
	height       int
	quitting     bool
	goingBack    bool
	showSidebar  bool
}

// NewScoreboardModel creates a new scoreboard model.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		store:       store,
		keys:        DefaultScoreboardKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	m.table = m.createTable()
	m.load()
	return m
}

func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Date", Width: 14},
		{Title: "Mode", Width: 12},
		{Title: "Level", Width: 8},
		{Title: "Winner", Width: 8},
		{Title: "Moves", Width: 6},
	}

	height := m.height - 10
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	theme := CurrentTheme()
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Inherit(theme.TableHeader)
	s.Selected = theme.TableSelected
	t.SetStyles(s)

	return t
}

// Filter returns the active filter.
func (m ScoreboardModel) Filter() ScoreFilter {
	return ScoreFilters[m.filterCursor]
}

// Results returns the rounds currently shown.
func (m ScoreboardModel) Results() []storage.Result {
	return m.results
}

// Tally returns the tally for the active filter.
func (m ScoreboardModel) Tally() storage.Tally {
	return m.tally
}

func (m *ScoreboardModel) load() {
	m.results, m.tally, m.loadErr = nil, storage.Tally{}, nil
	if m.store != nil {
		f := m.Filter()
		m.results, m.loadErr = loadResults(m.store, f)
		if m.loadErr == nil {
			m.tally, m.loadErr = m.store.Tally(f.GameID, f.Mode, f.Difficulty)
		}
	}
	m.updateTableRows()
}

func loadResults(store *storage.Store, f ScoreFilter) ([]storage.Result, error) {
	all, err := store.RecentResults(f.GameID, fetchResults)
	if err != nil {
		return nil, err
	}
	out := make([]storage.Result, 0, len(all))
	for _, r := range all {
		if f.Difficulty != "" && r.Difficulty != f.Difficulty {
			continue
		}
		out = append(out, r)
		if len(out) == maxResults {
			break
		}
	}
	return out, nil
}

func (m *ScoreboardModel) updateTableRows() {
	rows := make([]table.Row, len(m.results))
	for i, r := range m.results {
		mode, _ := tictactoe.ParseMode(r.Mode)
		level := "-"
		if r.Difficulty != "" {
			level = tictactoe.Difficulty(r.Difficulty).Title()
		}
		rows[i] = table.Row{
			r.CreatedAt.Local().Format("Jan 02 15:04"),
			mode.String(),
			level,
			winnerLabel(r),
			fmt.Sprintf("%d", r.Moves),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func winnerLabel(r storage.Result) string {
	if r.IsDraw() {
		return "Draw"
	}
	if r.Mode != string(tictactoe.ModeVsCPU) {
		return r.Winner
	}
	if r.Winner == tictactoe.ComputerMark.String() {
		return "CPU"
	}
	return "You"
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextFilter):
			m.filterCursor = (m.filterCursor + 1) % len(ScoreFilters)
			m.load()
			return m, nil

		case key.Matches(msg, m.keys.PrevFilter):
			m.filterCursor = (m.filterCursor + len(ScoreFilters) - 1) % len(ScoreFilters)
			m.load()
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}
	theme := CurrentTheme()

	var b strings.Builder
	title := fmt.Sprintf("RESULTS - %s", m.Filter().Label)
	b.WriteString(centerText(theme.MenuTitle.Render(title), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(m.tallyLine(), m.width))
	b.WriteString("\n\n")

	if m.showSidebar {
		b.WriteString(m.renderWideLayout())
	} else {
		b.WriteString(m.renderNarrowLayout())
	}

	b.WriteString("\n")
	b.WriteString(theme.MenuHint.Render(m.help.View(m.keys)))

	return b.String()
}

func (m ScoreboardModel) tallyLine() string {
	t := m.tally
	if m.Filter().Mode == string(tictactoe.ModeVsCPU) {
		return fmt.Sprintf("You %d   CPU %d   Draws %d   (%d rounds)", t.XWins, t.OWins, t.Draws, t.Total())
	}
	return fmt.Sprintf("X %d   O %d   Draws %d   (%d rounds)", t.XWins, t.OWins, t.Draws, t.Total())
}

func (m ScoreboardModel) renderWideLayout() string {
	theme := CurrentTheme()
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(sidebarWidth).
		Padding(0, 1)

	var sidebar strings.Builder
	sidebar.WriteString("View\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for i, f := range ScoreFilters {
		if i == m.filterCursor {
			sidebar.WriteString(theme.MenuItemActive.Render("> " + f.Label))
		} else {
			sidebar.WriteString(theme.MenuItemNormal.Render("  " + f.Label))
		}
		sidebar.WriteString("\n")
	}

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		sidebarStyle.Render(sidebar.String()), "  ", tableStyle.Render(m.renderTableContent()))
}

func (m ScoreboardModel) renderNarrowLayout() string {
	theme := CurrentTheme()
	var b strings.Builder

	b.WriteString(centerText(fmt.Sprintf("< %s >", m.Filter().Label), m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)
	b.WriteString(centerText(tableStyle.Render(m.renderTableContent()), m.width))

	return b.String()
}

func (m ScoreboardModel) renderTableContent() string {
	emptyStyle := CurrentTheme().MenuHint.Italic(true).Padding(2, 4)
	switch {
	case m.loadErr != nil:
		return emptyStyle.Render("Could not load results:\n" + m.loadErr.Error())
	case len(m.results) == 0:
		return emptyStyle.Render("No rounds recorded yet.\nFinish a round to see it here!")
	}
	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
