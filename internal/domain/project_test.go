package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func intPtr(v int) *int       { return &v }

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestNewProjectFromDraft_CopiesAndNormalizes(t *testing.T) {
	draft := &ProjectDraft{
		Name:           strPtr("  Build API "),
		EstimatedHours: decPtr("100"),
		ActualHours:    decPtr("3.145"),
		Difficulty:     intPtr(3),
		Notes:          strPtr("   "),
	}

	p := NewProjectFromDraft(draft)

	require.NotNil(t, p.Name)
	assert.Equal(t, "Build API", *p.Name)
	assert.Equal(t, "100.00", p.EstimatedHours.StringFixed(2))
	assert.Equal(t, "3.15", p.ActualHours.StringFixed(2))
	assert.Equal(t, 3, *p.Difficulty)
	assert.Nil(t, p.Notes, "blank notes should become absent")
}

func TestNewProjectFromDraft_Nil(t *testing.T) {
	p := NewProjectFromDraft(nil)
	require.NotNil(t, p)
	assert.Nil(t, p.Name)
}

func TestProjectString_AllFields(t *testing.T) {
	p := &Project{
		ID:             "550e8400-e29b-41d4-a716-446655440000",
		Number:         7,
		Name:           strPtr("Build API"),
		EstimatedHours: decPtr("100"),
		ActualHours:    decPtr("80.5"),
		Difficulty:     intPtr(3),
		Notes:          strPtr("no notes"),
	}
	assert.Equal(t,
		`#7 [550e8400] name="Build API" estimated_hours=100.00 actual_hours=80.50 difficulty=3 notes="no notes"`,
		p.String())
}

func TestProjectString_AbsentFields(t *testing.T) {
	p := &Project{ID: "abc", Number: 1}
	assert.Equal(t,
		"#1 [abc] name=<none> estimated_hours=<none> actual_hours=<none> difficulty=<none> notes=<none>",
		p.String())
}

func TestHoursVariance(t *testing.T) {
	p := &Project{EstimatedHours: decPtr("10.00"), ActualHours: decPtr("12.50")}
	v := p.HoursVariance()
	require.NotNil(t, v)
	assert.Equal(t, "2.50", v.StringFixed(2))

	p.ActualHours = nil
	assert.Nil(t, p.HoursVariance())
}

func TestNormalizeHours_RoundsHalfAwayFromZero(t *testing.T) {
	cases := map[string]string{
		"3.145":  "3.15",
		"3.144":  "3.14",
		"-3.145": "-3.15",
		"12":     "12.00",
		"0.005":  "0.01",
	}
	for in, want := range cases {
		got := NormalizeHours(decPtr(in))
		assert.Equal(t, want, got.StringFixed(HoursScale), "input %q", in)
	}
	assert.Nil(t, NormalizeHours(nil))
}

func TestNormalizeString(t *testing.T) {
	assert.Nil(t, NormalizeString(nil))
	assert.Nil(t, NormalizeString(strPtr(" \t ")))
	assert.Equal(t, "a b", *NormalizeString(strPtr(" a b ")))
}
