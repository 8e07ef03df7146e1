package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/thanhdat-89/qlhv-sub000/internal/model"
	"github.com/thanhdat-89/qlhv-sub000/internal/repository/base"
)

type ClassRepository struct {
	*base.Repository
}

func NewClassRepository(pool *pgxpool.Pool) *ClassRepository {
	return &ClassRepository{Repository: base.NewRepository(pool)}
}

const classColumns = `id, name, fee_per_session, morning_days, afternoon_days, evening_days, created_at, updated_at`

// Create inserts a class with a pre-allocated id.
func (r *ClassRepository) Create(ctx context.Context, class *model.ClassSchedule) error {
	query := `
		INSERT INTO class_schedules (id, name, fee_per_session, morning_days, afternoon_days, evening_days)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at
	`

	err := r.QueryRow(
		ctx, query,
		class.ID,
		class.Name,
		class.FeePerSession,
		weekdayStrings(class.Pattern.Morning),
		weekdayStrings(class.Pattern.Afternoon),
		weekdayStrings(class.Pattern.Evening),
	).Scan(&class.CreatedAt, &class.UpdatedAt)

	if err != nil {
		return fmt.Errorf("create class: %w", err)
	}

	return nil
}

// GetByID returns the class or nil when it does not exist.
func (r *ClassRepository) GetByID(ctx context.Context, id string) (*model.ClassSchedule, error) {
	query := `SELECT ` + classColumns + ` FROM class_schedules WHERE id = $1`

	class, err := scanClass(r.QueryRow(ctx, query, id))
	if base.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get class by id: %w", err)
	}

	return class, nil
}

// List returns all classes ordered by id.
func (r *ClassRepository) List(ctx context.Context) ([]*model.ClassSchedule, error) {
	query := `SELECT ` + classColumns + ` FROM class_schedules ORDER BY id`

	rows, err := r.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list classes: %w", err)
	}
	defer rows.Close()

	var classes []*model.ClassSchedule
	for rows.Next() {
		class, err := scanClass(rows)
		if err != nil {
			return nil, fmt.Errorf("scan class: %w", err)
		}
		classes = append(classes, class)
	}

	return classes, rows.Err()
}

// Update rewrites the class's name, fee and pattern.
func (r *ClassRepository) Update(ctx context.Context, class *model.ClassSchedule) error {
	query := `
		UPDATE class_schedules
		SET name = $2, fee_per_session = $3, morning_days = $4, afternoon_days = $5, evening_days = $6, updated_at = now()
		WHERE id = $1
		RETURNING updated_at
	`

	err := r.QueryRow(
		ctx, query,
		class.ID,
		class.Name,
		class.FeePerSession,
		weekdayStrings(class.Pattern.Morning),
		weekdayStrings(class.Pattern.Afternoon),
		weekdayStrings(class.Pattern.Evening),
	).Scan(&class.UpdatedAt)

	if err != nil {
		return fmt.Errorf("update class: %w", err)
	}

	return nil
}

// Delete removes the class. Class-scoped holidays cascade at the
// schema level; students block the delete via their foreign key.
func (r *ClassRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM class_schedules WHERE id = $1`

	_, err := r.ExecAffected(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete class: %w", err)
	}

	return nil
}

func scanClass(row pgx.Row) (*model.ClassSchedule, error) {
	class := &model.ClassSchedule{}
	var morning, afternoon, evening []string

	err := row.Scan(
		&class.ID,
		&class.Name,
		&class.FeePerSession,
		&morning,
		&afternoon,
		&evening,
		&class.CreatedAt,
		&class.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	class.Pattern = model.WeeklyPattern{
		Morning:   toWeekdays(morning),
		Afternoon: toWeekdays(afternoon),
		Evening:   toWeekdays(evening),
	}
	return class, nil
}

func weekdayStrings(days []model.Weekday) []string {
	out := make([]string, len(days))
	for i, d := range days {
		out[i] = string(d)
	}
	return out
}

func toWeekdays(days []string) []model.Weekday {
	if len(days) == 0 {
		return nil
	}
	out := make([]model.Weekday, len(days))
	for i, d := range days {
		out[i] = model.Weekday(d)
	}
	return out
}
