// SPDX-License-Identifier: MIT

package ui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#333333", Dark: "#FFFFFF"})

	kindStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#B35C00", Dark: "#FF8C00"})

	noteStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#333333", Dark: "#DDDDDD"})

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#555555", Dark: "#BBBBBB"})

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#999999", Dark: "#666666"})
)

// stateStyle colours the controller state.
func stateStyle(s string) lipgloss.Style {
	c := lipgloss.AdaptiveColor{Light: "#555555", Dark: "#BBBBBB"}
	switch s {
	case "playing":
		c = lipgloss.AdaptiveColor{Light: "#2E7D32", Dark: "#66BB6A"}
	case "finished":
		c = lipgloss.AdaptiveColor{Light: "#1565C0", Dark: "#64B5F6"}
	}
	return lipgloss.NewStyle().Bold(true).Foreground(c)
}
