package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}

// VarianceStyled colors an actual-minus-estimate delta: over budget is red,
// under is green, exact is dim.
func VarianceStyled(v *decimal.Decimal) string {
	if v == nil {
		return Dim("--")
	}
	text := v.StringFixed(2)
	switch v.Sign() {
	case 1:
		return StyleRed.Render("+" + text)
	case -1:
		return StyleGreen.Render(text)
	default:
		return Dim(text)
	}
}

// DifficultyPips renders a difficulty as filled/empty pips on the
// conventional 1-5 scale. Values outside it are shown as plain numbers.
func DifficultyPips(d *int) string {
	if d == nil {
		return Dim("--")
	}
	if *d < 1 || *d > 5 {
		return StyleYellow.Render(fmt.Sprintf("%d", *d))
	}
	return StyleYellow.Render(strings.Repeat("●", *d)) + Dim(strings.Repeat("○", 5-*d))
}
