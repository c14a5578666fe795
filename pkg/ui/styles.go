package ui

import "github.com/charmbracelet/lipgloss"

var (
	labelColor = lipgloss.AdaptiveColor{Light: "#6C757D", Dark: "#A0A8B0"}
	pathColor  = lipgloss.AdaptiveColor{Light: "#007ACC", Dark: "#3D9EFF"}
	okColor    = lipgloss.AdaptiveColor{Light: "#28A745", Dark: "#4CDD76"}
	mutedColor = lipgloss.AdaptiveColor{Light: "#6C757D", Dark: "#ADB5BD"}
)

var (
	labelStyle = lipgloss.NewStyle().Foreground(labelColor).Width(8)
	pathStyle  = lipgloss.NewStyle().Foreground(pathColor).Italic(true)
	okStyle    = lipgloss.NewStyle().Foreground(okColor).Bold(true)
	mutedStyle = lipgloss.NewStyle().Foreground(mutedColor)
)
