// Copyright (c) 2026 Filmorate. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package date provides a calendar date without a time-of-day component.

Birthdays and release dates are days, not instants. Representing them as a
[time.Time] pinned to midnight UTC keeps comparisons and equality stable no
matter which timezone the value was parsed in.

Wire format is ISO-8601 "YYYY-MM-DD" in both directions.
*/
package date

import (
	"encoding/json"
	"fmt"
	"time"
)

// Layout is the textual representation used by JSON and query parameters.
const Layout = "2006-01-02"

// Date is a calendar day. The zero value is January 1, year 1.
type Date struct {
	t time.Time
}

// New returns the date for the given year, month, and day.
func New(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// FromTime truncates t to its calendar day in t's own location.
func FromTime(t time.Time) Date {
	return New(t.Year(), t.Month(), t.Day())
}

// Today returns the current local calendar day.
func Today() Date {
	return FromTime(time.Now())
}

// Parse reads a "YYYY-MM-DD" string.
func Parse(value string) (Date, error) {
	t, err := time.Parse(Layout, value)
	if err != nil {
		return Date{}, fmt.Errorf("date: invalid value %q: %w", value, err)
	}
	return FromTime(t), nil
}

// Time returns midnight UTC of the day.
func (d Date) Time() time.Time { return d.t }

// Before reports whether d is strictly earlier than other.
func (d Date) Before(other Date) bool { return d.t.Before(other.t) }

// After reports whether d is strictly later than other.
func (d Date) After(other Date) bool { return d.t.After(other.t) }

// Equal reports whether d and other are the same day.
func (d Date) Equal(other Date) bool { return d.t.Equal(other.t) }

// String implements [fmt.Stringer].
func (d Date) String() string { return d.t.Format(Layout) }

// MarshalJSON implements [json.Marshaler].
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON implements [json.Unmarshaler].
func (d *Date) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("date: expected string: %w", err)
	}

	parsed, err := Parse(raw)
	if err != nil {
		return err
	}

	*d = parsed
	return nil
}
