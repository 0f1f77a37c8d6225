package cli

import "github.com/charmbracelet/lipgloss"

// Adaptive colors matching the TUI palette.
var (
	cliWhite  = lipgloss.AdaptiveColor{Light: "0", Dark: "15"}
	cliDim    = lipgloss.AdaptiveColor{Light: "242", Dark: "240"}
	cliGreen  = lipgloss.AdaptiveColor{Light: "28", Dark: "40"}
	cliRed    = lipgloss.AdaptiveColor{Light: "160", Dark: "196"}
	cliYellow = lipgloss.AdaptiveColor{Light: "136", Dark: "220"}
	cliCyan   = lipgloss.AdaptiveColor{Light: "30", Dark: "45"}
)

// Semantic styles for CLI output.
var (
	styleBrand   = lipgloss.NewStyle().Bold(true).Foreground(cliCyan)
	styleVersion = lipgloss.NewStyle().Foreground(cliGreen)
	styleLabel   = lipgloss.NewStyle().Foreground(cliDim)
	styleValue   = lipgloss.NewStyle().Foreground(cliWhite)
	styleSuccess = lipgloss.NewStyle().Foreground(cliGreen)
	styleWarning = lipgloss.NewStyle().Bold(true).Foreground(cliYellow)
	styleError   = lipgloss.NewStyle().Bold(true).Foreground(cliRed)
)
