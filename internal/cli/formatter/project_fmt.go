package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/projects/internal/domain"
)

const notesPreviewWidth = 32

// FormatProjectList renders the stored projects as a boxed table.
func FormatProjectList(projects []*domain.Project) string {
	if len(projects) == 0 {
		return Dim("No projects found.")
	}

	headers := []string{"#", "NAME", "EST", "ACTUAL", "VARIANCE", "DIFFICULTY", "NOTES"}
	rows := make([][]string, 0, len(projects))
	for _, p := range projects {
		rows = append(rows, []string{
			strconv.Itoa(p.Number),
			Bold(p.DisplayName()),
			hoursCell(p.EstimatedHours != nil, domain.HoursOrNone(p.EstimatedHours)),
			hoursCell(p.ActualHours != nil, domain.HoursOrNone(p.ActualHours)),
			VarianceStyled(p.HoursVariance()),
			DifficultyPips(p.Difficulty),
			notesPreview(p.Notes),
		})
	}

	table := RenderTable(headers, rows,
		AlignRight, AlignLeft, AlignRight, AlignRight, AlignRight, AlignLeft, AlignLeft)
	return RenderBox("Projects", strings.TrimRight(table, "\n"))
}

// FormatProjectDetail renders a single project as a labelled card.
func FormatProjectDetail(p *domain.Project) string {
	var b strings.Builder

	b.WriteString(Bold(p.DisplayName()) + "\n\n")
	field := func(label, value string) {
		b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render(fmt.Sprintf("%-10s", label)), value))
	}
	field("NUMBER", strconv.Itoa(p.Number))
	field("ID", p.ID)
	field("ESTIMATED", domain.HoursOrNone(p.EstimatedHours))
	field("ACTUAL", domain.HoursOrNone(p.ActualHours))
	field("VARIANCE", VarianceStyled(p.HoursVariance()))
	field("DIFFICULTY", DifficultyPips(p.Difficulty))
	field("NOTES", domain.StrOrNone(p.Notes))
	field("CREATED", p.CreatedAt.Local().Format("2006-01-02 15:04"))

	return RenderBox(fmt.Sprintf("Project #%d", p.Number), strings.TrimRight(b.String(), "\n"))
}

// FormatWelcome is shown once when the session starts on a terminal.
func FormatWelcome() string {
	return RenderBox("", Header("Projects")+"\n"+Dim("Record projects and their hours. Press Enter at the menu to quit."))
}

func hoursCell(present bool, text string) string {
	if !present {
		return Dim("--")
	}
	return StyleFg.Render(text)
}

func notesPreview(notes *string) string {
	if notes == nil {
		return Dim("--")
	}
	runes := []rune(*notes)
	if len(runes) <= notesPreviewWidth {
		return *notes
	}
	return string(runes[:notesPreviewWidth-1]) + "…"
}
