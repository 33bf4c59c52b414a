package domain

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

const none = "<none>"

// NormalizeString trims s and maps blank values to nil.
func NormalizeString(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}

// NormalizeHours rounds d to HoursScale, half away from zero.
func NormalizeHours(d *decimal.Decimal) *decimal.Decimal {
	if d == nil {
		return nil
	}
	r := d.Round(HoursScale)
	return &r
}

// StrOrNone returns *s, or "<none>" when s is nil.
func StrOrNone(s *string) string {
	if s == nil {
		return none
	}
	return *s
}

// IntOrNone formats *v, or "<none>" when v is nil.
func IntOrNone(v *int) string {
	if v == nil {
		return none
	}
	return strconv.Itoa(*v)
}

// HoursOrNone formats *d with exactly HoursScale fractional digits.
func HoursOrNone(d *decimal.Decimal) string {
	if d == nil {
		return none
	}
	return d.StringFixed(HoursScale)
}
