package model

import "time"

type HolidayType string

const (
	HolidayClassWide     HolidayType = "class_wide"
	HolidayGlobalClosure HolidayType = "global_closure"
)

// Holiday is a non-teaching date range, inclusive on both ends.
// ClassID scopes the holiday to one class; when empty the holiday
// applies to every class.
type Holiday struct {
	ID          string      `json:"id"`
	Date        Date        `json:"date"`
	EndDate     Date        `json:"end_date"` // inclusive; defaults to Date
	Description string      `json:"description"`
	Type        HolidayType `json:"type"`
	ClassID     string      `json:"class_id,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
}

// Normalize fills the end date for single-day holidays.
func (h *Holiday) Normalize() {
	if h.EndDate.IsZero() {
		h.EndDate = h.Date
	}
}

// AppliesTo reports whether the holiday excludes teaching for the
// given class.
func (h *Holiday) AppliesTo(classID string) bool {
	return h.ClassID == "" || h.ClassID == classID
}
