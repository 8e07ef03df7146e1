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

type StudentRepository struct {
	*base.Repository
}

func NewStudentRepository(pool *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{Repository: base.NewRepository(pool)}
}

const studentColumns = `id, name, birth_year, phone, class_id, status, enroll_date, leave_date, discount_rate, discount_months, created_at, updated_at`

// Create inserts a student with a pre-allocated id.
func (r *StudentRepository) Create(ctx context.Context, student *model.Student) error {
	query := `
		INSERT INTO students (id, name, birth_year, phone, class_id, status, enroll_date, leave_date, discount_rate, discount_months)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at, updated_at
	`

	err := r.QueryRow(
		ctx, query,
		student.ID,
		student.Name,
		student.BirthYear,
		student.Phone,
		student.ClassID,
		student.Status,
		student.EnrollDate.Time(),
		nullableDate(student.LeaveDate),
		student.DiscountRate,
		monthStrings(student.DiscountMonths),
	).Scan(&student.CreatedAt, &student.UpdatedAt)

	if err != nil {
		return fmt.Errorf("create student: %w", err)
	}

	return nil
}

// GetByID returns the student or nil when it does not exist.
func (r *StudentRepository) GetByID(ctx context.Context, id string) (*model.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE id = $1`

	student, err := scanStudent(r.QueryRow(ctx, query, id))
	if base.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get student by id: %w", err)
	}

	return student, nil
}

// List returns all students ordered by id.
func (r *StudentRepository) List(ctx context.Context) ([]*model.Student, error) {
	return r.list(ctx, `SELECT `+studentColumns+` FROM students ORDER BY id`)
}

// ListByClassID returns the students of one class ordered by id.
func (r *StudentRepository) ListByClassID(ctx context.Context, classID string) ([]*model.Student, error) {
	return r.list(ctx, `SELECT `+studentColumns+` FROM students WHERE class_id = $1 ORDER BY id`, classID)
}

// CountByClassID returns how many students reference the class.
func (r *StudentRepository) CountByClassID(ctx context.Context, classID string) (int, error) {
	var count int
	err := r.QueryRow(ctx, `SELECT count(*) FROM students WHERE class_id = $1`, classID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count students by class: %w", err)
	}
	return count, nil
}

// ListNewlyEnrolledBefore returns newly-enrolled students whose enroll
// date is strictly before the cutoff, for the status-promotion pass.
func (r *StudentRepository) ListNewlyEnrolledBefore(ctx context.Context, cutoff time.Time) ([]*model.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE status = $1 AND enroll_date < $2 ORDER BY id`
	return r.list(ctx, query, model.StatusNewlyEnrolled, cutoff)
}

// Update rewrites the student's mutable fields.
func (r *StudentRepository) Update(ctx context.Context, student *model.Student) error {
	query := `
		UPDATE students
		SET name = $2, birth_year = $3, phone = $4, class_id = $5, status = $6,
		    enroll_date = $7, leave_date = $8, discount_rate = $9, discount_months = $10, updated_at = now()
		WHERE id = $1
		RETURNING updated_at
	`

	err := r.QueryRow(
		ctx, query,
		student.ID,
		student.Name,
		student.BirthYear,
		student.Phone,
		student.ClassID,
		student.Status,
		student.EnrollDate.Time(),
		nullableDate(student.LeaveDate),
		student.DiscountRate,
		monthStrings(student.DiscountMonths),
	).Scan(&student.UpdatedAt)

	if err != nil {
		return fmt.Errorf("update student: %w", err)
	}

	return nil
}

// UpdateStatus changes only the lifecycle status.
func (r *StudentRepository) UpdateStatus(ctx context.Context, id string, status model.StudentStatus) error {
	query := `UPDATE students SET status = $2, updated_at = now() WHERE id = $1`

	_, err := r.ExecAffected(ctx, query, id, status)
	if err != nil {
		return fmt.Errorf("update student status: %w", err)
	}

	return nil
}

// Delete removes the student. Payments and extra sessions cascade at
// the schema level.
func (r *StudentRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM students WHERE id = $1`

	_, err := r.ExecAffected(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete student: %w", err)
	}

	return nil
}

func (r *StudentRepository) list(ctx context.Context, query string, args ...interface{}) ([]*model.Student, error) {
	rows, err := r.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	defer rows.Close()

	var students []*model.Student
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan student: %w", err)
		}
		students = append(students, student)
	}

	return students, rows.Err()
}

func scanStudent(row pgx.Row) (*model.Student, error) {
	student := &model.Student{}
	var enroll time.Time
	var leave *time.Time
	var months []string

	err := row.Scan(
		&student.ID,
		&student.Name,
		&student.BirthYear,
		&student.Phone,
		&student.ClassID,
		&student.Status,
		&enroll,
		&leave,
		&student.DiscountRate,
		&months,
		&student.CreatedAt,
		&student.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	student.EnrollDate = model.DateOf(enroll)
	if leave != nil {
		student.LeaveDate = model.DateOf(*leave)
	}
	student.DiscountMonths = toMonths(months)
	return student, nil
}

func nullableDate(d model.Date) *time.Time {
	if d.IsZero() {
		return nil
	}
	t := d.Time()
	return &t
}

func monthStrings(months []model.Month) []string {
	out := make([]string, len(months))
	for i, m := range months {
		out[i] = string(m)
	}
	return out
}

func toMonths(months []string) []model.Month {
	if len(months) == 0 {
		return nil
	}
	out := make([]model.Month, len(months))
	for i, m := range months {
		out[i] = model.Month(m)
	}
	return out
}
