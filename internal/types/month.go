// Package types implements special types for the Budget Planner backend.
package types

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// MinYear and MaxYear bound the years that are accepted as part of a
// month key. Keys outside this range are rejected by Valid and the
// navigation methods stop producing results at the bounds.
const (
	MinYear = 1900
	MaxYear = 2100
)

var ErrMonthInvalid = errors.New("the month must be in YYYY-MM format with a year between 1900 and 2100")

// Month is a month in a specific year. Its canonical textual form is
// the "YYYY-MM" month key.
type Month time.Time

// NewMonth returns a new Month.
func NewMonth(year int, month time.Month) Month {
	return Month(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC))
}

// MonthOf returns the Month in which a time occurs in that time's location.
func MonthOf(t time.Time) Month {
	year, month, _ := t.Date()
	return Month(time.Date(year, month, 1, 0, 0, 0, 0, t.Location()))
}

// ParseMonth parses a "YYYY-MM" month key and returns the Month value it
// represents. Keys with out-of-range months or years return ErrMonthInvalid.
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Month{}, fmt.Errorf("%w: %q", ErrMonthInvalid, s)
	}

	m := MonthOf(t)
	if !m.Valid() {
		return Month{}, fmt.Errorf("%w: %q", ErrMonthInvalid, s)
	}

	return m, nil
}

// String returns the month key, formatted as YYYY-MM.
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", time.Time(m).Year(), time.Time(m).Month())
}

// MarshalJSON implements the json.Marshaler interface.
// The output is the "YYYY-MM" month key.
func (m Month) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", m.String())), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface.
// The month is expected to be a "YYYY-MM" month key.
func (m *Month) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`) // get rid of "
	if value == "" || value == "null" {
		return nil
	}

	month, err := ParseMonth(value)
	if err != nil {
		return err
	}

	*m = month
	return nil
}

// UnmarshalParam implements the gin binding.BindUnmarshaler interface
// so that months can be bound directly from URI and query parameters.
func (m *Month) UnmarshalParam(param string) error {
	month, err := ParseMonth(param)
	if err != nil {
		return err
	}

	*m = month
	return nil
}

// Valid reports whether the month represents a usable month key: the
// month is in [1, 12] by construction, the year must be in [MinYear, MaxYear].
func (m Month) Valid() bool {
	year := time.Time(m).Year()
	return year >= MinYear && year <= MaxYear
}

// ValidKey reports whether a string is a well-formed month key.
func ValidKey(s string) bool {
	_, err := ParseMonth(s)
	return err == nil
}

// IsZero reports if the month is the zero value.
func (m Month) IsZero() bool {
	return time.Time(m).IsZero()
}

// AddDate adds a specified amount of years and months.
func (m Month) AddDate(years, months int) Month {
	return Month(time.Time(m).AddDate(years, months, 0))
}

// Previous returns the month before m, rolling the year backward past
// January. The second return value is false when the result would leave
// the supported year range.
func (m Month) Previous() (Month, bool) {
	p := m.AddDate(0, -1)
	return p, p.Valid()
}

// Next returns the month after m, rolling the year forward past
// December. The second return value is false when the result would
// leave the supported year range.
func (m Month) Next() (Month, bool) {
	n := m.AddDate(0, 1)
	return n, n.Valid()
}

// Before reports whether the month instant m is before n.
func (m Month) Before(n Month) bool {
	return time.Time(m).Before(time.Time(n))
}

// After reports whether the month instant m is after n.
func (m Month) After(n Month) bool {
	return time.Time(m).After(time.Time(n))
}

// Equal reports whether m and n represent the same month.
func (m Month) Equal(n Month) bool {
	return time.Time(m).Equal(time.Time(n))
}

// Contains reports whether the time instant is in the month.
func (m Month) Contains(t time.Time) bool {
	return t.Year() == time.Time(m).Year() && t.Month() == time.Time(m).Month()
}
