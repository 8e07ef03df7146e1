package model

import "time"

// WeeklyPattern is the recurring weekly schedule of a class: three
// time-of-day buckets, each holding the weekday codes on which the
// class meets in that bucket. The same code may appear in more than
// one bucket: a class can meet twice or three times the same day,
// and each meeting bills as a separate session.
type WeeklyPattern struct {
	Morning   []Weekday `json:"morning"`
	Afternoon []Weekday `json:"afternoon"`
	Evening   []Weekday `json:"evening"`
}

// SessionsOn returns how many sessions the pattern implies on a day
// with the given weekday code (0 to 3).
func (p WeeklyPattern) SessionsOn(code Weekday) int {
	count := 0
	for _, bucket := range [][]Weekday{p.Morning, p.Afternoon, p.Evening} {
		for _, wd := range bucket {
			if wd == code {
				count++
				break
			}
		}
	}
	return count
}

// ClassSchedule is a class with its fee and recurring weekly pattern.
type ClassSchedule struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	FeePerSession int64         `json:"fee_per_session"` // integer currency units, no fractions
	Pattern       WeeklyPattern `json:"pattern"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}
