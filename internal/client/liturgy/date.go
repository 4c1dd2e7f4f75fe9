// Package liturgy drives the daily-liturgy page: it keeps the selected
// calendar date and loads the provider document for it through a
// loader.Cycle.
package liturgy

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidDate is returned for input that is not a recognisable calendar
// date.
var ErrInvalidDate = errors.New("invalid date")

// Date is a civil calendar date without time or zone.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the calendar date of t in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// In returns midnight of d in loc.
func (d Date) In(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// String formats d as YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Display formats d the way dates are written in Brazil, DD/MM/YYYY.
func (d Date) Display() string {
	return fmt.Sprintf("%02d/%02d/%04d", d.Day, int(d.Month), d.Year)
}

var dateLayouts = []string{
	time.DateOnly,
	"02/01/2006",
	"2/1/2006",
	"02-01-2006",
	"2006/01/02",
}

// ParseDate canonicalises user input into a Date. It accepts ISO dates,
// day-first dates with "/" or "-" separators and RFC 3339 timestamps, whose
// date is taken as written, ignoring the offset.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Date{}, fmt.Errorf("%w: empty", ErrInvalidDate)
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return DateOf(t), nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return DateOf(t), nil
		}
	}
	return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
}
