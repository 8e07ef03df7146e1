package model

import (
	"fmt"
	"regexp"
	"time"
)

// Date is a civil date in canonical "YYYY-MM-DD" form. The format is
// fixed-width and zero-padded, so plain string comparison orders dates
// correctly; the billing core relies on that and never reparses dates
// to compare them.
type Date string

// Month is a calendar month in canonical "YYYY-MM" form. Like Date,
// string comparison on Month values is chronological.
type Month string

const dateLayout = "2006-01-02"

var (
	isoDatePrefix = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)
	dmySlashDate  = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)
)

// DateOf converts a time to its civil date in the time's location.
func DateOf(t time.Time) Date {
	return Date(t.Format(dateLayout))
}

// Today returns the current civil date in local time.
func Today() Date {
	return DateOf(time.Now())
}

// ParseDateStrict parses a date string without any fallback.
// Accepted inputs: any string starting with "YYYY-MM-DD" (the rest is
// ignored, so RFC3339 timestamps pass), then "DD/MM/YYYY", then a
// couple of common timestamp layouts.
func ParseDateStrict(s string) (Date, error) {
	if m := isoDatePrefix.FindString(s); m != "" {
		if _, err := time.ParseInLocation(dateLayout, m, time.Local); err == nil {
			return Date(m), nil
		}
	}

	if m := dmySlashDate.FindStringSubmatch(s); m != nil {
		t, err := time.ParseInLocation("2/1/2006", s, time.Local)
		if err == nil {
			return DateOf(t), nil
		}
	}

	// Last-resort layouts seen in imported spreadsheets
	for _, layout := range []string{time.RFC3339, "2006/01/02", "01/02/2006 15:04:05"} {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return DateOf(t), nil
		}
	}

	return "", fmt.Errorf("unrecognized date %q", s)
}

// ParseDate parses a date string leniently: anything ParseDateStrict
// rejects resolves to today. This keeps downstream arithmetic total
// for dirty imported data; callers that need hard errors use
// ParseDateStrict instead.
func ParseDate(s string) Date {
	d, err := ParseDateStrict(s)
	if err != nil {
		return Today()
	}
	return d
}

// Time returns the date at local midnight.
func (d Date) Time() time.Time {
	t, err := time.ParseInLocation(dateLayout, string(d), time.Local)
	if err != nil {
		return time.Time{}
	}
	return t
}

// IsZero reports whether the date is unset.
func (d Date) IsZero() bool {
	return d == ""
}

// Valid reports whether the date is a well-formed canonical date.
func (d Date) Valid() bool {
	_, err := time.ParseInLocation(dateLayout, string(d), time.Local)
	return err == nil
}

// AddDays returns the date shifted by n calendar days.
func (d Date) AddDays(n int) Date {
	return DateOf(d.Time().AddDate(0, 0, n))
}

// Month returns the month containing the date.
func (d Date) Month() Month {
	if len(d) < 7 {
		return ""
	}
	return Month(d[:7])
}

// Weekday returns the weekday code for the date.
func (d Date) Weekday() Weekday {
	return WeekdayOf(d.Time().Weekday())
}

// MonthOf builds a Month from a year and a calendar month.
func MonthOf(year int, month time.Month) Month {
	return Month(fmt.Sprintf("%04d-%02d", year, int(month)))
}

// First returns the first day of the month.
func (m Month) First() Date {
	return Date(string(m) + "-01")
}

// Last returns the last day of the month.
func (m Month) Last() Date {
	t := m.First().Time()
	return DateOf(t.AddDate(0, 1, -1))
}

// Next returns the following month.
func (m Month) Next() Month {
	t := m.First().Time()
	return DateOf(t.AddDate(0, 1, 0)).Month()
}

// Contains reports whether the date falls inside the month.
func (m Month) Contains(d Date) bool {
	return d.Month() == m
}

// Valid reports whether the month is well-formed "YYYY-MM".
func (m Month) Valid() bool {
	_, err := time.ParseInLocation("2006-01", string(m), time.Local)
	return err == nil
}

// MinDate returns the earlier of two dates.
func MinDate(a, b Date) Date {
	if a <= b {
		return a
	}
	return b
}

// MaxDate returns the later of two dates.
func MaxDate(a, b Date) Date {
	if a >= b {
		return a
	}
	return b
}
