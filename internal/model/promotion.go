package model

import "time"

// Promotion is a class-wide percentage discount scoped to a single
// calendar month, distinct from a student's personal discount rate.
type Promotion struct {
	ID           string    `json:"id"`
	ClassID      string    `json:"class_id"`
	Month        Month     `json:"month"`
	DiscountRate float64   `json:"discount_rate"` // fraction in [0,1]
	Description  string    `json:"description"`
	CreatedAt    time.Time `json:"created_at"`
}
