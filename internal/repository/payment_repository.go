package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/thanhdat-89/qlhv-sub000/internal/model"
	"github.com/thanhdat-89/qlhv-sub000/internal/repository/base"
)

type PaymentRepository struct {
	*base.Repository
}

func NewPaymentRepository(pool *pgxpool.Pool) *PaymentRepository {
	return &PaymentRepository{Repository: base.NewRepository(pool)}
}

const paymentColumns = `id, student_id, amount, paid_date, method, created_at`

// Create inserts a payment with a pre-allocated id. The ledger is
// append-only: there is no Update.
func (r *PaymentRepository) Create(ctx context.Context, payment *model.Payment) error {
	query := `
		INSERT INTO payments (id, student_id, amount, paid_date, method)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`

	err := r.QueryRow(
		ctx, query,
		payment.ID,
		payment.StudentID,
		payment.Amount,
		payment.Date.Time(),
		payment.Method,
	).Scan(&payment.CreatedAt)

	if err != nil {
		return fmt.Errorf("create payment: %w", err)
	}

	return nil
}

// GetByID returns the payment or nil when it does not exist.
func (r *PaymentRepository) GetByID(ctx context.Context, id string) (*model.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE id = $1`

	payment, err := scanPayment(r.QueryRow(ctx, query, id))
	if base.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get payment by id: %w", err)
	}

	return payment, nil
}

// List returns all payments ordered by id.
func (r *PaymentRepository) List(ctx context.Context) ([]*model.Payment, error) {
	return r.list(ctx, `SELECT `+paymentColumns+` FROM payments ORDER BY id`)
}

// ListByStudentID returns one student's payments ordered by date.
func (r *PaymentRepository) ListByStudentID(ctx context.Context, studentID string) ([]*model.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE student_id = $1 ORDER BY paid_date, id`
	return r.list(ctx, query, studentID)
}

// Delete removes a payment (mistaken entry correction; the out-of-band
// credential check happens before the call reaches this layer).
func (r *PaymentRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM payments WHERE id = $1`

	_, err := r.ExecAffected(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete payment: %w", err)
	}

	return nil
}

func (r *PaymentRepository) list(ctx context.Context, query string, args ...interface{}) ([]*model.Payment, error) {
	rows, err := r.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()

	var payments []*model.Payment
	for rows.Next() {
		payment, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		payments = append(payments, payment)
	}

	return payments, rows.Err()
}

func scanPayment(row pgx.Row) (*model.Payment, error) {
	payment := &model.Payment{}
	var date time.Time

	err := row.Scan(
		&payment.ID,
		&payment.StudentID,
		&payment.Amount,
		&date,
		&payment.Method,
		&payment.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	payment.Date = model.DateOf(date)
	return payment, nil
}
