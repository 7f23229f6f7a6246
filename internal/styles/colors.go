package styles

import "github.com/charmbracelet/lipgloss"

// Monokai Pro color palette
const (
	Background = "#2D2A2E"
	Foreground = "#FCFCFA"

	Red    = "#FF6188" // Errors
	Orange = "#FC9867" // Warnings, renamed outputs
	Yellow = "#FFD866" // Prompts
	Green  = "#A9DC76" // Success
	Cyan   = "#78DCE8" // Paths
	Purple = "#AB9DF2" // Titles

	Comment = "#727072" // Dim text, help
)

// Common styles
var (
	SuccessStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(Green))
	ErrorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color(Red))
	WarningStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(Orange))
	DimStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color(Comment))
	TitleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(Purple))
	PathStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color(Cyan))
	PromptStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color(Yellow)).Bold(true)
	HelpStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color(Comment))
	NormalStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color(Foreground))
	HighlightStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(Background)).Background(lipgloss.Color(Yellow))
)

// Success renders a check-marked success line
func Success(msg string) string {
	return SuccessStyle.Render("✓ " + msg)
}

// Failure renders a cross-marked error line
func Failure(msg string) string {
	return ErrorStyle.Render("✗ " + msg)
}

// Warning renders a warning line
func Warning(msg string) string {
	return WarningStyle.Render("! " + msg)
}
