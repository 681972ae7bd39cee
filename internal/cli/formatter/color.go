package formatter

import (
	"strings"

	"github.com/amorasol/weekplan/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// BlockStyle returns the lipgloss style for a time block type.
func BlockStyle(bt domain.BlockType) lipgloss.Style {
	switch bt {
	case domain.BlockSacred:
		return StyleRed
	case domain.BlockImportant:
		return StyleYellow
	case domain.BlockOptional:
		return StyleBlue
	case domain.BlockRescue:
		return StylePurple
	default:
		return StyleDim
	}
}

// PriorityLabel returns a colored fixed-width priority tag.
func PriorityLabel(p domain.Priority) string {
	label := strings.ToUpper(string(p))
	switch p {
	case domain.PrioritySacred:
		return StyleRed.Render(label)
	case domain.PriorityImportant:
		return StyleYellow.Render(label)
	default:
		return StyleDim.Render(label)
	}
}

// Dim renders text in the dim style.
func Dim(s string) string {
	return StyleDim.Render(s)
}

// Bold renders text in the bold foreground style.
func Bold(s string) string {
	return StyleBold.Render(s)
}

// Stars renders difficulty as filled and dimmed stars out of five.
func Stars(difficulty int) string {
	if difficulty < 1 {
		difficulty = 1
	}
	if difficulty > 5 {
		difficulty = 5
	}
	return StyleYellow.Render(strings.Repeat("★", difficulty)) +
		StyleDim.Render(strings.Repeat("☆", 5-difficulty))
}
