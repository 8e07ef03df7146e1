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

type HolidayRepository struct {
	*base.Repository
}

func NewHolidayRepository(pool *pgxpool.Pool) *HolidayRepository {
	return &HolidayRepository{Repository: base.NewRepository(pool)}
}

const holidayColumns = `id, start_date, end_date, description, holiday_type, class_id, created_at`

// Create inserts a holiday with a pre-allocated id. Single-day
// holidays get their end date filled from the start date.
func (r *HolidayRepository) Create(ctx context.Context, holiday *model.Holiday) error {
	holiday.Normalize()

	query := `
		INSERT INTO holidays (id, start_date, end_date, description, holiday_type, class_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`

	err := r.QueryRow(
		ctx, query,
		holiday.ID,
		holiday.Date.Time(),
		holiday.EndDate.Time(),
		holiday.Description,
		holiday.Type,
		nullableString(holiday.ClassID),
	).Scan(&holiday.CreatedAt)

	if err != nil {
		return fmt.Errorf("create holiday: %w", err)
	}

	return nil
}

// GetByID returns the holiday or nil when it does not exist.
func (r *HolidayRepository) GetByID(ctx context.Context, id string) (*model.Holiday, error) {
	query := `SELECT ` + holidayColumns + ` FROM holidays WHERE id = $1`

	holiday, err := scanHoliday(r.QueryRow(ctx, query, id))
	if base.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get holiday by id: %w", err)
	}

	return holiday, nil
}

// List returns all holidays ordered by id.
func (r *HolidayRepository) List(ctx context.Context) ([]*model.Holiday, error) {
	query := `SELECT ` + holidayColumns + ` FROM holidays ORDER BY id`

	rows, err := r.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list holidays: %w", err)
	}
	defer rows.Close()

	var holidays []*model.Holiday
	for rows.Next() {
		holiday, err := scanHoliday(rows)
		if err != nil {
			return nil, fmt.Errorf("scan holiday: %w", err)
		}
		holidays = append(holidays, holiday)
	}

	return holidays, rows.Err()
}

// Update rewrites the holiday's range, description, type and scope.
func (r *HolidayRepository) Update(ctx context.Context, holiday *model.Holiday) error {
	holiday.Normalize()

	query := `
		UPDATE holidays
		SET start_date = $2, end_date = $3, description = $4, holiday_type = $5, class_id = $6
		WHERE id = $1
	`

	_, err := r.ExecAffected(
		ctx, query,
		holiday.ID,
		holiday.Date.Time(),
		holiday.EndDate.Time(),
		holiday.Description,
		holiday.Type,
		nullableString(holiday.ClassID),
	)
	if err != nil {
		return fmt.Errorf("update holiday: %w", err)
	}

	return nil
}

// Delete removes the holiday.
func (r *HolidayRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM holidays WHERE id = $1`

	_, err := r.ExecAffected(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete holiday: %w", err)
	}

	return nil
}

func scanHoliday(row pgx.Row) (*model.Holiday, error) {
	holiday := &model.Holiday{}
	var start, end time.Time
	var classID *string

	err := row.Scan(
		&holiday.ID,
		&start,
		&end,
		&holiday.Description,
		&holiday.Type,
		&classID,
		&holiday.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	holiday.Date = model.DateOf(start)
	holiday.EndDate = model.DateOf(end)
	if classID != nil {
		holiday.ClassID = *classID
	}
	return holiday, nil
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
