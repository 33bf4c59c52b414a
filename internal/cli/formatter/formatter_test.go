package formatter

import (
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/projects/internal/domain"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func str(s string) *string { return &s }
func num(v int) *int       { return &v }

func hours(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := RenderTable(
		[]string{"#", "NAME"},
		[][]string{{"1", "Deck"}, {"12", "Shed"}},
		AlignRight,
	)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 4)
	assert.Equal(t, " 1  Deck", lines[2])
	assert.Equal(t, "12  Shed", lines[3])
	for _, line := range lines[1:] {
		assert.Equal(t, lipgloss.Width(lines[1]), lipgloss.Width(line))
	}
}

func TestRenderTable_NoHeaders(t *testing.T) {
	assert.Empty(t, RenderTable(nil, [][]string{{"x"}}))
}

func TestFormatProjectList_Empty(t *testing.T) {
	assert.Contains(t, FormatProjectList(nil), "No projects found.")
}

func TestFormatProjectList_Rows(t *testing.T) {
	projects := []*domain.Project{
		{Number: 1, Name: str("Build API"), EstimatedHours: hours("100"), ActualHours: hours("80"), Difficulty: num(3), Notes: str("no notes")},
		{Number: 2, Name: str("Paint fence")},
	}

	out := FormatProjectList(projects)
	assert.Contains(t, out, "PROJECTS")
	assert.Contains(t, out, "Build API")
	assert.Contains(t, out, "100.00")
	assert.Contains(t, out, "-20.00")
	assert.Contains(t, out, "●●●○○")
	assert.Contains(t, out, "Paint fence")
}

func TestFormatProjectDetail(t *testing.T) {
	p := &domain.Project{
		ID:             "550e8400-e29b-41d4-a716-446655440000",
		Number:         4,
		Name:           str("Garden bed"),
		EstimatedHours: hours("4"),
		ActualHours:    hours("6.25"),
		Difficulty:     num(9),
		CreatedAt:      time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}

	out := FormatProjectDetail(p)
	assert.Contains(t, out, "PROJECT #4")
	assert.Contains(t, out, "Garden bed")
	assert.Contains(t, out, p.ID)
	assert.Contains(t, out, "+2.25")
	assert.Contains(t, out, "9", "out-of-scale difficulty is shown as a number")
	assert.Contains(t, out, "<none>")
}

func TestNotesPreview_Truncates(t *testing.T) {
	long := strings.Repeat("n", 40)
	got := notesPreview(&long)
	assert.Equal(t, notesPreviewWidth, len([]rune(got)))
	assert.True(t, strings.HasSuffix(got, "…"))
}

func TestVarianceStyled_Zero(t *testing.T) {
	assert.Contains(t, VarianceStyled(hours("0")), "0.00")
	assert.Contains(t, VarianceStyled(nil), "--")
}
