// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package weather

import (
	"fmt"
	"math"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a calendar date without a time of day. It is stored as midnight UTC so that day
// arithmetic never crosses a DST transition.
type Date struct {
	time.Time
}

// NewDate returns the Date for the given year, month and day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf returns the calendar date of t in t's own location.
func DateOf(t time.Time) Date {
	year, month, day := t.Date()
	return NewDate(year, month, day)
}

// ParseDate parses an ISO-8601 calendar date (YYYY-MM-DD).
func ParseDate(val string) (Date, error) {
	t, err := time.Parse(dateLayout, val)
	if err != nil {
		return Date{}, fmt.Errorf("failed to parse date: %w", err)
	}
	return Date{t}, nil
}

// DaysUntil returns the number of whole calendar days from d to other. It is negative if
// other lies before d.
func (d Date) DaysUntil(other Date) int {
	return int(math.Round(other.Sub(d.Time).Hours() / 24))
}

// AddDays returns the date n days after d.
func (d Date) AddDays(n int) Date {
	return Date{d.Time.AddDate(0, 0, n)}
}

// Equal reports whether d and other are the same calendar day.
func (d Date) Equal(other Date) bool {
	return d.Time.Equal(other.Time)
}

func (d Date) String() string {
	return d.Format(dateLayout)
}

// MarshalJSON implements json.Marshaler.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Date) UnmarshalJSON(b []byte) error {
	if len(b) < 2 || b[0] != '"' || b[len(b)-1] != '"' {
		return fmt.Errorf("invalid date format: %s", string(b))
	}
	parsed, err := ParseDate(string(b[1 : len(b)-1]))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
