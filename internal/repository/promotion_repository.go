package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/thanhdat-89/qlhv-sub000/internal/model"
	"github.com/thanhdat-89/qlhv-sub000/internal/repository/base"
)

type PromotionRepository struct {
	*base.Repository
}

func NewPromotionRepository(pool *pgxpool.Pool) *PromotionRepository {
	return &PromotionRepository{Repository: base.NewRepository(pool)}
}

const promotionColumns = `id, class_id, month, discount_rate, description, created_at`

// Create inserts a promotion with a pre-allocated id.
func (r *PromotionRepository) Create(ctx context.Context, promotion *model.Promotion) error {
	query := `
		INSERT INTO promotions (id, class_id, month, discount_rate, description)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`

	err := r.QueryRow(
		ctx, query,
		promotion.ID,
		promotion.ClassID,
		promotion.Month,
		promotion.DiscountRate,
		promotion.Description,
	).Scan(&promotion.CreatedAt)

	if err != nil {
		return fmt.Errorf("create promotion: %w", err)
	}

	return nil
}

// GetByID returns the promotion or nil when it does not exist.
func (r *PromotionRepository) GetByID(ctx context.Context, id string) (*model.Promotion, error) {
	query := `SELECT ` + promotionColumns + ` FROM promotions WHERE id = $1`

	promotion, err := scanPromotion(r.QueryRow(ctx, query, id))
	if base.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get promotion by id: %w", err)
	}

	return promotion, nil
}

// List returns all promotions ordered by id. The billing engine's
// first-match rule resolves duplicate (class, month) rows to the
// lowest id because of this ordering.
func (r *PromotionRepository) List(ctx context.Context) ([]*model.Promotion, error) {
	query := `SELECT ` + promotionColumns + ` FROM promotions ORDER BY id`

	rows, err := r.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list promotions: %w", err)
	}
	defer rows.Close()

	var promotions []*model.Promotion
	for rows.Next() {
		promotion, err := scanPromotion(rows)
		if err != nil {
			return nil, fmt.Errorf("scan promotion: %w", err)
		}
		promotions = append(promotions, promotion)
	}

	return promotions, rows.Err()
}

// Update rewrites the promotion's scope, rate and description.
func (r *PromotionRepository) Update(ctx context.Context, promotion *model.Promotion) error {
	query := `
		UPDATE promotions
		SET class_id = $2, month = $3, discount_rate = $4, description = $5
		WHERE id = $1
	`

	_, err := r.ExecAffected(
		ctx, query,
		promotion.ID,
		promotion.ClassID,
		promotion.Month,
		promotion.DiscountRate,
		promotion.Description,
	)
	if err != nil {
		return fmt.Errorf("update promotion: %w", err)
	}

	return nil
}

// Delete removes the promotion.
func (r *PromotionRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM promotions WHERE id = $1`

	_, err := r.ExecAffected(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete promotion: %w", err)
	}

	return nil
}

func scanPromotion(row pgx.Row) (*model.Promotion, error) {
	promotion := &model.Promotion{}

	err := row.Scan(
		&promotion.ID,
		&promotion.ClassID,
		&promotion.Month,
		&promotion.DiscountRate,
		&promotion.Description,
		&promotion.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return promotion, nil
}
