package tui

import (
	catppuccin "github.com/catppuccin/go"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// styles holds the rendered lipgloss styles for the active theme
type styles struct {
	title    lipgloss.Style
	status   lipgloss.Style
	hideFlag lipgloss.Style
	showFlag lipgloss.Style

	activeTab   lipgloss.Style
	inactiveTab lipgloss.Style
	tabGap      lipgloss.Style

	detailTitle lipgloss.Style
	detailBody  lipgloss.Style
	muted       lipgloss.Style
	errorText   lipgloss.Style
	help        lipgloss.Style

	table table.Styles
}

// flavorFor maps a config theme name to its catppuccin flavor
func flavorFor(theme string) catppuccin.Flavor {
	switch theme {
	case "latte":
		return catppuccin.Latte
	case "frappe":
		return catppuccin.Frappe
	case "macchiato":
		return catppuccin.Macchiato
	default:
		return catppuccin.Mocha
	}
}

// newStyles builds the style set for the given theme name
func newStyles(theme string) styles {
	f := flavorFor(theme)
	color := func(c catppuccin.Color) lipgloss.Color {
		return lipgloss.Color(c.Hex)
	}

	ts := table.DefaultStyles()
	ts.Header = ts.Header.
		Bold(true).
		Foreground(color(f.Mauve())).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(color(f.Surface1())).
		BorderBottom(true)
	ts.Selected = ts.Selected.
		Bold(true).
		Foreground(color(f.Crust())).
		Background(color(f.Mauve()))

	return styles{
		title:    lipgloss.NewStyle().Bold(true).Foreground(color(f.Mauve())),
		status:   lipgloss.NewStyle().Foreground(color(f.Overlay1())),
		hideFlag: lipgloss.NewStyle().Foreground(color(f.Green())).Bold(true),
		showFlag: lipgloss.NewStyle().Foreground(color(f.Yellow())).Bold(true),

		activeTab: lipgloss.NewStyle().
			Bold(true).
			Background(color(f.Mauve())).
			Foreground(color(f.Crust())).
			Padding(0, 2),
		inactiveTab: lipgloss.NewStyle().
			Foreground(color(f.Overlay1())).
			Padding(0, 2),
		tabGap: lipgloss.NewStyle().Foreground(color(f.Surface1())),

		detailTitle: lipgloss.NewStyle().Bold(true).Foreground(color(f.Blue())),
		detailBody:  lipgloss.NewStyle().Foreground(color(f.Text())),
		muted:       lipgloss.NewStyle().Foreground(color(f.Overlay0())),
		errorText:   lipgloss.NewStyle().Foreground(color(f.Red())).Bold(true).Padding(1),
		help:        lipgloss.NewStyle().Foreground(color(f.Overlay1())),

		table: ts,
	}
}
