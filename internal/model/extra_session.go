package model

import "time"

// ExtraSession is one billable occurrence outside the recurring weekly
// pattern: a manually scheduled lesson, a make-up, or a materialized
// recurring extra. Fee overrides the class fee-per-session when set.
type ExtraSession struct {
	ID        string    `json:"id"`
	StudentID string    `json:"student_id"`
	Date      Date      `json:"date"`
	Fee       *int64    `json:"fee,omitempty"` // nil = class fee per session
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// FeeOr returns the session fee, falling back to the class fee when no
// override is set.
func (e *ExtraSession) FeeOr(classFee int64) int64 {
	if e.Fee != nil {
		return *e.Fee
	}
	return classFee
}
