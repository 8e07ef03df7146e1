package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/thanhdat-89/qlhv-sub000/internal/repository/base"
)

// SequenceRepository hands out per-prefix id sequence numbers. The
// counter only ever increments, so an id is never reused after its
// record is deleted, even when the deleted record held the highest
// number.
type SequenceRepository struct {
	*base.Repository
}

func NewSequenceRepository(pool *pgxpool.Pool) *SequenceRepository {
	return &SequenceRepository{Repository: base.NewRepository(pool)}
}

// Next atomically increments and returns the next sequence number for
// the prefix. Unknown prefixes start at 1.
func (r *SequenceRepository) Next(ctx context.Context, prefix string) (int64, error) {
	query := `
		INSERT INTO id_sequences (prefix, last_seq)
		VALUES ($1, 1)
		ON CONFLICT (prefix) DO UPDATE SET last_seq = id_sequences.last_seq + 1
		RETURNING last_seq
	`

	var seq int64
	err := r.QueryRow(ctx, query, prefix).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("next sequence for %q: %w", prefix, err)
	}

	return seq, nil
}

// Bump raises the prefix counter to at least seq. Used when seeding
// from imported records so future ids continue past the imported max.
func (r *SequenceRepository) Bump(ctx context.Context, prefix string, seq int64) error {
	query := `
		INSERT INTO id_sequences (prefix, last_seq)
		VALUES ($1, $2)
		ON CONFLICT (prefix) DO UPDATE SET last_seq = GREATEST(id_sequences.last_seq, EXCLUDED.last_seq)
	`

	_, err := r.ExecAffected(ctx, query, prefix, seq)
	if err != nil {
		return fmt.Errorf("bump sequence for %q: %w", prefix, err)
	}

	return nil
}
