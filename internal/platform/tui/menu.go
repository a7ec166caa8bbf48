package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tictactoe/internal/config"
	"github.com/vovakirdan/tui-tictactoe/internal/core"
	"github.com/vovakirdan/tui-tictactoe/internal/games/tictactoe"
	"github.com/vovakirdan/tui-tictactoe/internal/registry"
)

type menuStage int

const (
	stageMode menuStage = iota
	stageDifficulty
)

// MenuItem is one selectable line of the menu.
type MenuItem struct {
	Label string
	Hint  string
	Value string
}

var modeItems = []MenuItem{
	{Label: "Play vs CPU", Hint: "you are X, the computer is O", Value: string(tictactoe.ModeVsCPU)},
	{Label: "Two Players", Hint: "X and O share the keyboard", Value: string(tictactoe.ModePvP)},
}

var difficultyItems = []MenuItem{
	{Label: "Easy", Hint: "random moves", Value: string(tictactoe.DifficultyEasy)},
	{Label: "Medium", Hint: "looks one move ahead, sometimes", Value: string(tictactoe.DifficultyMedium)},
	{Label: "Hard", Hint: "looks two moves ahead", Value: string(tictactoe.DifficultyHard)},
}

// MenuModel picks the mode, then the difficulty when playing the computer.
type MenuModel struct {
	stage          menuStage
	modeCursor     int
	diffCursor     int
	width          int
	height         int
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	quitting       bool
	done           bool
	openScoreboard bool
}

// NewMenuModel creates a menu with the cursor on the last used choices.
func NewMenuModel(settings config.Settings, cfg core.RuntimeConfig) MenuModel {
	return MenuModel{
		modeCursor: indexOf(modeItems, settings.Mode),
		diffCursor: indexOf(difficultyItems, settings.Difficulty),
		width:      cfg.ScreenW,
		height:     cfg.ScreenH,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
	}
}

func indexOf(items []MenuItem, value string) int {
	for i, it := range items {
		if it.Value == value {
			return i
		}
	}
	return 0
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

func (m MenuModel) items() []MenuItem {
	if m.stage == stageDifficulty {
		return difficultyItems
	}
	return modeItems
}

func (m *MenuModel) cursor() *int {
	if m.stage == stageDifficulty {
		return &m.diffCursor
	}
	return &m.modeCursor
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cur := m.cursor()

	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if *cur > 0 {
			*cur--
		}

	case MenuActionDown:
		if *cur < len(m.items())-1 {
			*cur++
		}

	case MenuActionSelect:
		if m.stage == stageMode && modeItems[m.modeCursor].Value == string(tictactoe.ModeVsCPU) {
			m.stage = stageDifficulty
			return m, nil
		}
		m.done = true
		return m, tea.Quit

	case MenuActionBack:
		if m.stage == stageDifficulty {
			m.stage = stageMode
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}
	theme := CurrentTheme()

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(theme.MenuTitle.Render("T I C - T A C - T O E"), m.width))
	b.WriteString("\n\n")

	subtitle := "Choose a mode"
	if m.stage == stageDifficulty {
		subtitle = "Choose the computer's difficulty"
	}
	b.WriteString(centerText(subtitle, m.width))
	b.WriteString("\n\n")

	cur := *m.cursor()
	for i, item := range m.items() {
		line := fmt.Sprintf("  %-12s", item.Label)
		style := theme.MenuItemNormal
		if i == cur {
			line = fmt.Sprintf("> %-12s", item.Label)
			style = theme.MenuItemActive
		}
		b.WriteString(centerText(style.Render(line)+" "+theme.MenuHint.Render(item.Hint), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  Tab: Scores  |  Q: Quit"
	if m.stage == stageDifficulty {
		controls = "Up/Down: Navigate  |  Enter: Play  |  Esc: Back  |  Q: Quit"
	}
	b.WriteString(centerText(theme.MenuHint.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selection returns the chosen mode and difficulty. Difficulty is empty for
// two players. ok is false until the player has confirmed a choice.
func (m MenuModel) Selection() (mode, difficulty string, ok bool) {
	if !m.done {
		return "", "", false
	}
	mode = modeItems[m.modeCursor].Value
	if mode == string(tictactoe.ModeVsCPU) {
		difficulty = difficultyItems[m.diffCursor].Value
	}
	return mode, difficulty, true
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width, ignoring ANSI styling.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID          string
	Mode            string
	Difficulty      string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// Result converts the final menu state into a MenuResult.
func (m MenuModel) Result() MenuResult {
	result := MenuResult{Config: m.Config()}

	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.IsQuitting():
		result.Quit = true
	default:
		mode, difficulty, ok := m.Selection()
		if !ok {
			result.Quit = true
			break
		}
		result.Mode = mode
		result.Difficulty = difficulty
		result.GameID = tictactoe.GameIDVsCPU
		if mode == string(tictactoe.ModePvP) {
			result.GameID = tictactoe.GameIDPvP
		}
	}
	return result
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(settings config.Settings, cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(NewMenuModel(settings, cfg), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}
	return m.Result(), nil
}

// NewGame creates the game a menu result asks for.
func NewGame(res MenuResult) (registry.Game, error) {
	if res.GameID == tictactoe.GameIDVsCPU && res.Difficulty != "" {
		d, err := tictactoe.ParseDifficulty(res.Difficulty)
		if err != nil {
			return nil, err
		}
		return tictactoe.NewWithDifficulty(d), nil
	}
	return registry.Create(res.GameID)
}
