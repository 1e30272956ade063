package main

import (
	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	banner lipgloss.Style
	err    lipgloss.Style
}

func newStyles(color bool) styles {
	if !color {
		return styles{
			banner: lipgloss.NewStyle(),
			err:    lipgloss.NewStyle(),
		}
	}
	return styles{
		banner: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		err:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	}
}
