package testutil

import (
	"time"

	"github.com/alexanderramin/projects/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DraftOption customizes a draft built by NewTestDraft.
type DraftOption func(*domain.ProjectDraft)

func WithEstimatedHours(h string) DraftOption {
	return func(d *domain.ProjectDraft) {
		d.EstimatedHours = Dec(h)
	}
}

func WithActualHours(h string) DraftOption {
	return func(d *domain.ProjectDraft) {
		d.ActualHours = Dec(h)
	}
}

func WithDifficulty(v int) DraftOption {
	return func(d *domain.ProjectDraft) {
		d.Difficulty = &v
	}
}

func WithNotes(s string) DraftOption {
	return func(d *domain.ProjectDraft) {
		d.Notes = &s
	}
}

// WithoutName leaves the draft's name absent.
func WithoutName() DraftOption {
	return func(d *domain.ProjectDraft) {
		d.Name = nil
	}
}

// NewTestDraft returns a draft with only the name set.
func NewTestDraft(name string, opts ...DraftOption) *domain.ProjectDraft {
	d := &domain.ProjectDraft{Name: Str(name)}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// NewTestProject builds an unsaved project ready for ProjectRepo.Create.
func NewTestProject(name string, opts ...DraftOption) *domain.Project {
	p := domain.NewProjectFromDraft(NewTestDraft(name, opts...))
	now := time.Now().UTC().Truncate(time.Second)
	p.ID = uuid.New().String()
	p.CreatedAt = now
	p.UpdatedAt = now
	return p
}

func Str(s string) *string { return &s }

func Int(v int) *int { return &v }

// Dec parses s and panics on malformed input; fixtures only.
func Dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}
