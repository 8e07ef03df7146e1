package model

import "time"

type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "cash"
	PaymentTransfer PaymentMethod = "transfer"
	PaymentCard     PaymentMethod = "card"
	PaymentOther    PaymentMethod = "other"
)

// Payment is an append-only ledger entry. Payments are never tied to a
// specific month; they reduce the student's running balance.
type Payment struct {
	ID        string        `json:"id"`
	StudentID string        `json:"student_id"`
	Amount    int64         `json:"amount"`
	Date      Date          `json:"date"`
	Method    PaymentMethod `json:"method"`
	CreatedAt time.Time     `json:"created_at"`
}
