package repository

import (
	"database/sql"

	"github.com/alexanderramin/projects/internal/domain"
	"github.com/shopspring/decimal"
)

// nullableStringToValue converts a *string to a value suitable for SQLite storage.
func nullableStringToValue(s *string) interface{} {
	if s == nil {
		return nil
	}
	return *s
}

// nullableIntToValue converts a *int to a value suitable for SQLite storage.
func nullableIntToValue(v *int) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

// nullableHoursToValue stores hours as fixed-scale TEXT so no precision is
// lost to SQLite's REAL affinity.
func nullableHoursToValue(d *decimal.Decimal) interface{} {
	if d == nil {
		return nil
	}
	return d.StringFixed(domain.HoursScale)
}

func parseNullableString(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}

func parseNullableInt(n sql.NullInt64) *int {
	if !n.Valid {
		return nil
	}
	v := int(n.Int64)
	return &v
}

func parseNullableHours(d decimal.NullDecimal) *decimal.Decimal {
	if !d.Valid {
		return nil
	}
	v := d.Decimal.Round(domain.HoursScale)
	return &v
}
