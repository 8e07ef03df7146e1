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

type ExtraSessionRepository struct {
	*base.Repository
}

func NewExtraSessionRepository(pool *pgxpool.Pool) *ExtraSessionRepository {
	return &ExtraSessionRepository{Repository: base.NewRepository(pool)}
}

const extraSessionColumns = `id, student_id, session_date, fee, note, created_at`

// Create inserts an extra session with a pre-allocated id.
func (r *ExtraSessionRepository) Create(ctx context.Context, session *model.ExtraSession) error {
	query := `
		INSERT INTO extra_sessions (id, student_id, session_date, fee, note)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`

	err := r.QueryRow(
		ctx, query,
		session.ID,
		session.StudentID,
		session.Date.Time(),
		session.Fee,
		session.Note,
	).Scan(&session.CreatedAt)

	if err != nil {
		return fmt.Errorf("create extra session: %w", err)
	}

	return nil
}

// GetByID returns the extra session or nil when it does not exist.
func (r *ExtraSessionRepository) GetByID(ctx context.Context, id string) (*model.ExtraSession, error) {
	query := `SELECT ` + extraSessionColumns + ` FROM extra_sessions WHERE id = $1`

	session, err := scanExtraSession(r.QueryRow(ctx, query, id))
	if base.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get extra session by id: %w", err)
	}

	return session, nil
}

// List returns all extra sessions ordered by id.
func (r *ExtraSessionRepository) List(ctx context.Context) ([]*model.ExtraSession, error) {
	return r.list(ctx, `SELECT `+extraSessionColumns+` FROM extra_sessions ORDER BY id`)
}

// ListByStudentID returns one student's extra sessions ordered by date.
func (r *ExtraSessionRepository) ListByStudentID(ctx context.Context, studentID string) ([]*model.ExtraSession, error) {
	query := `SELECT ` + extraSessionColumns + ` FROM extra_sessions WHERE student_id = $1 ORDER BY session_date, id`
	return r.list(ctx, query, studentID)
}

// Update rewrites the session's date, fee override and note.
func (r *ExtraSessionRepository) Update(ctx context.Context, session *model.ExtraSession) error {
	query := `
		UPDATE extra_sessions
		SET session_date = $2, fee = $3, note = $4
		WHERE id = $1
	`

	_, err := r.ExecAffected(ctx, query, session.ID, session.Date.Time(), session.Fee, session.Note)
	if err != nil {
		return fmt.Errorf("update extra session: %w", err)
	}

	return nil
}

// Delete removes the extra session.
func (r *ExtraSessionRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM extra_sessions WHERE id = $1`

	_, err := r.ExecAffected(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete extra session: %w", err)
	}

	return nil
}

func (r *ExtraSessionRepository) list(ctx context.Context, query string, args ...interface{}) ([]*model.ExtraSession, error) {
	rows, err := r.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list extra sessions: %w", err)
	}
	defer rows.Close()

	var sessions []*model.ExtraSession
	for rows.Next() {
		session, err := scanExtraSession(rows)
		if err != nil {
			return nil, fmt.Errorf("scan extra session: %w", err)
		}
		sessions = append(sessions, session)
	}

	return sessions, rows.Err()
}

func scanExtraSession(row pgx.Row) (*model.ExtraSession, error) {
	session := &model.ExtraSession{}
	var date time.Time

	err := row.Scan(
		&session.ID,
		&session.StudentID,
		&date,
		&session.Fee,
		&session.Note,
		&session.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	session.Date = model.DateOf(date)
	return session, nil
}
