package postgres

import (
	"context"
	"errors"
	"fmt"

	"wallet-settlement/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// cartTotalQuery prices every item at its discounted unit price.
const cartTotalQuery = `SELECT COALESCE(SUM(ci.quantity * (s.price - s.price * s.discount / 100)), 0)::text
		FROM cart_items ci JOIN simcards s ON s.id = ci.simcard_id
		WHERE ci.cart_id = $1`

// CartRepo implements ports.CartRepository. Carts are owned by the cart
// subsystem; this repo only reads them and completes them.
type CartRepo struct {
	pool Pool
}

// NewCartRepo creates a new CartRepo.
func NewCartRepo(pool Pool) *CartRepo {
	return &CartRepo{pool: pool}
}

// GetPendingByUser returns the user's most recent pending cart with its total.
func (r *CartRepo) GetPendingByUser(ctx context.Context, userID uuid.UUID) (*domain.Cart, error) {
	query := `SELECT id, user_id, status, created_at FROM carts
		WHERE user_id = $1 AND status = 'pending'
		ORDER BY created_at DESC LIMIT 1`

	c, err := r.load(ctx, r.pool, query, userID)
	if err != nil {
		return nil, fmt.Errorf("get pending cart: %w", err)
	}
	return c, nil
}

// GetByIDForUpdate locks the cart row and returns it with its total.
// This MUST be called within a transaction.
func (r *CartRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Cart, error) {
	query := `SELECT id, user_id, status, created_at FROM carts WHERE id = $1 FOR UPDATE`

	c, err := r.load(ctx, tx, query, id)
	if err != nil {
		return nil, fmt.Errorf("get cart for update: %w", err)
	}
	return c, nil
}

// MarkCompleted flips a pending cart to completed.
func (r *CartRepo) MarkCompleted(ctx context.Context, tx pgx.Tx, id uuid.UUID) error {
	tag, err := tx.Exec(ctx,
		`UPDATE carts SET status = 'completed', updated_at = NOW() WHERE id = $1 AND status = 'pending'`, id)
	if err != nil {
		return fmt.Errorf("complete cart: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCartNotPending
	}
	return nil
}

// load reads the cart row then its total. The total is a separate
// statement because FOR UPDATE cannot be combined with aggregation.
func (r *CartRepo) load(ctx context.Context, q querier, query string, arg any) (*domain.Cart, error) {
	c := &domain.Cart{}
	err := q.QueryRow(ctx, query, arg).Scan(&c.ID, &c.UserID, &c.Status, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	var total string
	if err := q.QueryRow(ctx, cartTotalQuery, c.ID).Scan(&total); err != nil {
		return nil, fmt.Errorf("cart total: %w", err)
	}
	if c.Total, err = decimal.NewFromString(total); err != nil {
		return nil, fmt.Errorf("parse cart total: %w", err)
	}
	return c, nil
}
