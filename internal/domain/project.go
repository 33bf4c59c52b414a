package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// HoursScale is the number of fractional digits kept for hour values.
const HoursScale = 2

// ProjectDraft is a project assembled from user input that has not been
// persisted yet. Every field is optional: nil means the user left it blank.
type ProjectDraft struct {
	Name           *string
	EstimatedHours *decimal.Decimal
	ActualHours    *decimal.Decimal
	Difficulty     *int
	Notes          *string
}

// Project is the persisted copy of a draft.
type Project struct {
	ID             string
	Number         int
	Name           *string
	EstimatedHours *decimal.Decimal
	ActualHours    *decimal.Decimal
	Difficulty     *int
	Notes          *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewProjectFromDraft copies the draft fields into a Project. Hour values are
// normalized to HoursScale.
func NewProjectFromDraft(d *ProjectDraft) *Project {
	p := &Project{}
	if d == nil {
		return p
	}
	p.Name = NormalizeString(d.Name)
	p.EstimatedHours = NormalizeHours(d.EstimatedHours)
	p.ActualHours = NormalizeHours(d.ActualHours)
	p.Difficulty = d.Difficulty
	p.Notes = NormalizeString(d.Notes)
	return p
}

// DisplayID returns the first 8 characters of the ID.
func (p *Project) DisplayID() string {
	if len(p.ID) >= 8 {
		return p.ID[:8]
	}
	return p.ID
}

// DisplayName returns the project name or "<none>".
func (p *Project) DisplayName() string {
	return StrOrNone(p.Name)
}

// String renders the one-line display form shown after a project is created.
func (p *Project) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "#%d [%s]", p.Number, p.DisplayID())
	fmt.Fprintf(&b, " name=%s", quotedOrNone(p.Name))
	fmt.Fprintf(&b, " estimated_hours=%s", HoursOrNone(p.EstimatedHours))
	fmt.Fprintf(&b, " actual_hours=%s", HoursOrNone(p.ActualHours))
	fmt.Fprintf(&b, " difficulty=%s", IntOrNone(p.Difficulty))
	fmt.Fprintf(&b, " notes=%s", quotedOrNone(p.Notes))
	return b.String()
}

// HoursVariance returns actual minus estimated hours, or nil when either is
// missing.
func (p *Project) HoursVariance() *decimal.Decimal {
	if p.EstimatedHours == nil || p.ActualHours == nil {
		return nil
	}
	v := p.ActualHours.Sub(*p.EstimatedHours)
	return &v
}

func quotedOrNone(s *string) string {
	if s == nil {
		return none
	}
	return strconv.Quote(*s)
}
