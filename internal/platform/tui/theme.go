package tui

import (
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tictactoe/internal/core"
)

// Theme maps logical screen colors and menu elements to lipgloss styles.
type Theme struct {
	Name   string
	Colors map[core.Color]lipgloss.Style

	MenuTitle      lipgloss.Style
	MenuItemNormal lipgloss.Style
	MenuItemActive lipgloss.Style
	MenuHint       lipgloss.Style

	TableHeader   lipgloss.Style
	TableSelected lipgloss.Style
	Border        lipgloss.Color
}

// Style returns the style for c, falling back to the default color.
func (t Theme) Style(c core.Color) lipgloss.Style {
	if s, ok := t.Colors[c]; ok {
		return s
	}
	return t.Colors[core.ColorDefault]
}

// DefaultTheme returns the standard theme: blue X, orange O.
func DefaultTheme() Theme {
	return Theme{
		Name: "default",
		Colors: map[core.Color]lipgloss.Style{
			core.ColorDefault: lipgloss.NewStyle(),
			core.ColorGrid:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			core.ColorMarkX:   lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
			core.ColorMarkO:   lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
			core.ColorCursor:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
			core.ColorWinLine: lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true),
			core.ColorMuted:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
			core.ColorTitle:   lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true),
			core.ColorAlert:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		},
		MenuTitle:      lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true),
		MenuItemNormal: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		MenuItemActive: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		MenuHint:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		TableHeader:    lipgloss.NewStyle().Bold(true),
		TableSelected:  lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")),
		Border:         lipgloss.Color("240"),
	}
}

// NeonTheme returns a bright magenta/cyan theme.
func NeonTheme() Theme {
	t := DefaultTheme()
	t.Name = "neon"
	t.Colors[core.ColorGrid] = lipgloss.NewStyle().Foreground(lipgloss.Color("171"))
	t.Colors[core.ColorMarkX] = lipgloss.NewStyle().Foreground(lipgloss.Color("87")).Bold(true)
	t.Colors[core.ColorMarkO] = lipgloss.NewStyle().Foreground(lipgloss.Color("199")).Bold(true)
	t.Colors[core.ColorWinLine] = lipgloss.NewStyle().Foreground(lipgloss.Color("118")).Bold(true).Underline(true)
	t.Colors[core.ColorTitle] = lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true)
	t.MenuTitle = lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true)
	t.MenuItemActive = lipgloss.NewStyle().Foreground(lipgloss.Color("199")).Bold(true)
	t.TableSelected = lipgloss.NewStyle().Foreground(lipgloss.Color("16")).Background(lipgloss.Color("87"))
	t.Border = lipgloss.Color("171")
	return t
}

// MonoTheme returns a grayscale theme that relies on bold and reverse video.
func MonoTheme() Theme {
	t := DefaultTheme()
	t.Name = "mono"
	t.Colors[core.ColorGrid] = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	t.Colors[core.ColorMarkX] = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	t.Colors[core.ColorMarkO] = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	t.Colors[core.ColorCursor] = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	t.Colors[core.ColorWinLine] = lipgloss.NewStyle().Reverse(true).Bold(true)
	t.Colors[core.ColorTitle] = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	t.Colors[core.ColorAlert] = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Underline(true)
	t.MenuTitle = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	t.MenuItemActive = lipgloss.NewStyle().Reverse(true)
	t.TableSelected = lipgloss.NewStyle().Reverse(true)
	t.Border = lipgloss.Color("244")
	return t
}

// ThemeByName returns the named theme, or the default theme for unknown names.
func ThemeByName(name string) Theme {
	switch name {
	case "neon":
		return NeonTheme()
	case "mono":
		return MonoTheme()
	default:
		return DefaultTheme()
	}
}

var (
	themeMu      sync.RWMutex
	currentTheme = DefaultTheme()
)

// SetTheme sets the global theme.
func SetTheme(t Theme) {
	themeMu.Lock()
	defer themeMu.Unlock()
	currentTheme = t
}

// CurrentTheme returns the global theme.
func CurrentTheme() Theme {
	themeMu.RLock()
	defer themeMu.RUnlock()
	return currentTheme
}
