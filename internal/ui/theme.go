package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles styles, symbols and the border used by every renderer,
// the interactive browser included.
type Theme struct {
	Title, Muted, Accent, Success, Error, Pending lipgloss.Style
	Selected, ActiveTab, InactiveTab, Help        lipgloss.Style
	Border                                        lipgloss.Border
	BorderColor                                   lipgloss.TerminalColor
	SymOK, SymFail, SymCursor                     string
	BarFull, BarEmpty                             string
}

var current = themeFor("classic")

// SetTheme switches the active theme. Unknown names select classic.
func SetTheme(name string) { current = themeFor(name) }

// Current returns the active theme.
func Current() Theme { return current }

func themeFor(name string) Theme {
	plain := lipgloss.NewStyle()
	switch strings.ToLower(name) {
	case "neon":
		return Theme{
			Title:       plain.Bold(true).Foreground(lipgloss.Color("13")),
			Muted:       plain.Faint(true),
			Accent:      plain.Foreground(lipgloss.Color("14")),
			Success:     plain.Foreground(lipgloss.Color("10")),
			Error:       plain.Foreground(lipgloss.Color("9")).Bold(true),
			Pending:     plain.Foreground(lipgloss.Color("11")),
			Selected:    plain.Bold(true).Foreground(lipgloss.Color("13")),
			ActiveTab:   plain.Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("13")).Padding(0, 1),
			InactiveTab: plain.Foreground(lipgloss.Color("14")).Padding(0, 1),
			Help:        plain.Faint(true),
			Border:      lipgloss.RoundedBorder(),
			BorderColor: lipgloss.Color("13"),
			SymOK:       "✔", SymFail: "✖", SymCursor: "❯",
			BarFull: "█", BarEmpty: "░",
		}
	case "mono":
		return Theme{
			Title: plain.Bold(true), Muted: plain, Accent: plain,
			Success: plain, Error: plain, Pending: plain,
			Selected:    plain.Bold(true),
			ActiveTab:   plain.Bold(true).Underline(true).Padding(0, 1),
			InactiveTab: plain.Padding(0, 1),
			Help:        plain,
			Border:      lipgloss.NormalBorder(),
			BorderColor: lipgloss.NoColor{},
			SymOK:       "ok", SymFail: "error:", SymCursor: ">",
			BarFull: "#", BarEmpty: "-",
		}
	default: // classic
		return Theme{
			Title:       plain.Bold(true),
			Muted:       plain.Faint(true),
			Accent:      plain.Foreground(lipgloss.Color("12")),
			Success:     plain.Foreground(lipgloss.Color("42")),
			Error:       plain.Foreground(lipgloss.Color("9")).Bold(true),
			Pending:     plain.Foreground(lipgloss.Color("214")),
			Selected:    plain.Bold(true).Reverse(true),
			ActiveTab:   plain.Bold(true).Reverse(true).Padding(0, 1),
			InactiveTab: plain.Faint(true).Padding(0, 1),
			Help:        plain.Faint(true),
			Border:      lipgloss.RoundedBorder(),
			BorderColor: lipgloss.Color("8"),
			SymOK:       "✔", SymFail: "✖", SymCursor: ">",
			BarFull: "█", BarEmpty: "░",
		}
	}
}
