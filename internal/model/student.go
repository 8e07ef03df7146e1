package model

import "time"

type StudentStatus string

const (
	StatusNewlyEnrolled StudentStatus = "newly_enrolled"
	StatusActive        StudentStatus = "active"
	StatusWithdrawn     StudentStatus = "withdrawn"
)

// newEnrollmentWindow is how long a student keeps the newly-enrolled
// badge before auto-promoting to active.
const newEnrollmentWindow = 30 * 24 * time.Hour

// Student is an enrolled student. LeaveDate is set if and only if the
// status is withdrawn; DiscountRate is the student's personal ongoing
// discount, optionally restricted to the months in DiscountMonths.
type Student struct {
	ID             string        `json:"id"`
	Name           string        `json:"name"`
	BirthYear      int           `json:"birth_year"`
	Phone          string        `json:"phone,omitempty"`
	ClassID        string        `json:"class_id"`
	Status         StudentStatus `json:"status"`
	EnrollDate     Date          `json:"enroll_date"`
	LeaveDate      Date          `json:"leave_date,omitempty"`
	DiscountRate   float64       `json:"discount_rate"` // fraction in [0,1]
	DiscountMonths []Month       `json:"discount_months,omitempty"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

// EffectiveStatus resolves the auto-promotion rule: newly-enrolled
// becomes active once the enrollment date is more than 30 days in the
// past. Withdrawn is terminal.
func (s *Student) EffectiveStatus(now time.Time) StudentStatus {
	if s.Status == StatusNewlyEnrolled && now.Sub(s.EnrollDate.Time()) > newEnrollmentWindow {
		return StatusActive
	}
	return s.Status
}

// DiscountFor returns the student's discount rate effective in the
// given month: the full rate when no month scoping is set or the month
// is listed, zero otherwise.
func (s *Student) DiscountFor(month Month) float64 {
	if len(s.DiscountMonths) == 0 {
		return s.DiscountRate
	}
	for _, m := range s.DiscountMonths {
		if m == month {
			return s.DiscountRate
		}
	}
	return 0
}

// ActiveInterval returns the student's billable interval. The end date
// is empty while the student has not withdrawn (open-ended).
func (s *Student) ActiveInterval() (start, end Date) {
	return s.EnrollDate, s.LeaveDate
}
