package model

type StatementStatus string

const (
	StatementCompleted StatementStatus = "Completed"
	StatementOwing     StatementStatus = "Owing"
	StatementNA        StatementStatus = "N/A"
)

// TuitionStatement is the billing engine's output for one student and
// one target month. The month-scoped figures (ScheduledCount through
// TuitionDue) describe the target month only; TotalPaid and Balance
// are cumulative from enrollment through the end of the target month.
// A negative balance is a credit, not an error.
type TuitionStatement struct {
	StudentID            string          `json:"student_id"`
	Month                Month           `json:"month"`
	FeePerSession        int64           `json:"fee_per_session"`
	ScheduledCount       int             `json:"scheduled_count"`
	ScheduledTuition     int64           `json:"scheduled_tuition"`
	ExtraCount           int             `json:"extra_count"`
	TotalExtraFee        int64           `json:"total_extra_fee"`
	TuitionDue           int64           `json:"tuition_due"`
	TotalPaid            int64           `json:"total_paid"`
	Balance              int64           `json:"balance"`
	PromotionDiscount    float64         `json:"promotion_discount"`
	PromotionDescription string          `json:"promotion_description,omitempty"`
	Status               StatementStatus `json:"status"`
}
