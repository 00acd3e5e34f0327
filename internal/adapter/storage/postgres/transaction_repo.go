package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"wallet-settlement/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const transactionColumns = `id, wallet_id, kind, currency, amount::text, external_reference, cart_id,
		status, description, gateway_ref_id, created_at, updated_at`

// TransactionRepo implements ports.TransactionRepository.
type TransactionRepo struct {
	pool Pool
}

// NewTransactionRepo creates a new TransactionRepo.
func NewTransactionRepo(pool Pool) *TransactionRepo {
	return &TransactionRepo{pool: pool}
}

// Create inserts a new transaction within a database transaction.
func (r *TransactionRepo) Create(ctx context.Context, tx pgx.Tx, t *domain.Transaction) error {
	query := `INSERT INTO transactions (id, wallet_id, kind, currency, amount, external_reference, cart_id,
		status, description, gateway_ref_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5::numeric, $6, $7, $8, $9, $10, $11, $12)`

	_, err := tx.Exec(ctx, query,
		t.ID, t.WalletID, t.Kind, t.Currency, t.Amount.String(),
		t.ExternalReference, t.CartID, t.Status, t.Description, t.GatewayRefID,
		t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateReference
		}
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// GetPendingByReference fetches the pending row for a gateway authority
// (non-locking read).
func (r *TransactionRepo) GetPendingByReference(ctx context.Context, reference string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions
		WHERE external_reference = $1 AND status = 'pending'`

	t, err := scanTransaction(r.pool.QueryRow(ctx, query, reference))
	if err != nil {
		return nil, fmt.Errorf("get pending transaction by reference: %w", err)
	}
	return t, nil
}

// GetPendingByReferenceForUpdate re-reads the pending row under a row lock.
// This MUST be called within a transaction.
func (r *TransactionRepo) GetPendingByReferenceForUpdate(ctx context.Context, tx pgx.Tx, reference string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions
		WHERE external_reference = $1 AND status = 'pending' FOR UPDATE`

	t, err := scanTransaction(tx.QueryRow(ctx, query, reference))
	if err != nil {
		return nil, fmt.Errorf("get pending transaction for update: %w", err)
	}
	return t, nil
}

// GetPendingCartPayment fetches the most recent pending payment intent for a cart.
func (r *TransactionRepo) GetPendingCartPayment(ctx context.Context, walletID, cartID uuid.UUID, currency domain.Currency) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions
		WHERE wallet_id = $1 AND cart_id = $2 AND currency = $3 AND kind = 'payment' AND status = 'pending'
		ORDER BY created_at DESC LIMIT 1`

	t, err := scanTransaction(r.pool.QueryRow(ctx, query, walletID, cartID, currency))
	if err != nil {
		return nil, fmt.Errorf("get pending cart payment: %w", err)
	}
	return t, nil
}

// GetPendingCartPaymentForUpdate is GetPendingCartPayment under a row lock.
// This MUST be called within a transaction.
func (r *TransactionRepo) GetPendingCartPaymentForUpdate(ctx context.Context, tx pgx.Tx, walletID, cartID uuid.UUID, currency domain.Currency) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions
		WHERE wallet_id = $1 AND cart_id = $2 AND currency = $3 AND kind = 'payment' AND status = 'pending'
		ORDER BY created_at DESC LIMIT 1 FOR UPDATE`

	t, err := scanTransaction(tx.QueryRow(ctx, query, walletID, cartID, currency))
	if err != nil {
		return nil, fmt.Errorf("get pending cart payment for update: %w", err)
	}
	return t, nil
}

// ExistsCompletedByReference reports whether a completed row already carries
// reference. Chain hashes are hex, so the match ignores case.
func (r *TransactionRepo) ExistsCompletedByReference(ctx context.Context, reference string, currency domain.Currency) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM transactions
		WHERE lower(external_reference) = lower($1) AND currency = $2 AND status = 'completed')`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, reference, currency).Scan(&exists); err != nil {
		return false, fmt.Errorf("check completed reference: %w", err)
	}
	return exists, nil
}

// Complete moves a pending row to completed. The status guard in the WHERE
// clause makes a second completion a no-op reported as ErrTransactionNotPending.
func (r *TransactionRepo) Complete(ctx context.Context, tx pgx.Tx, t *domain.Transaction) error {
	query := `UPDATE transactions
		SET status = 'completed',
			external_reference = COALESCE($2, external_reference),
			gateway_ref_id = COALESCE($3, gateway_ref_id),
			description = $4,
			updated_at = NOW()
		WHERE id = $1 AND status = 'pending'`

	tag, err := tx.Exec(ctx, query, t.ID, t.ExternalReference, t.GatewayRefID, t.Description)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateReference
		}
		return fmt.Errorf("complete transaction: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTransactionNotPending
	}
	t.Status = domain.TransactionStatusCompleted
	return nil
}

// MarkFailed moves a pending row to failed, appending reason to the description.
func (r *TransactionRepo) MarkFailed(ctx context.Context, tx pgx.Tx, id uuid.UUID, reason string) error {
	query := `UPDATE transactions
		SET status = 'failed',
			description = CONCAT_WS(' | ', NULLIF(description, ''), NULLIF($2, '')),
			updated_at = NOW()
		WHERE id = $1 AND status = 'pending'`

	tag, err := tx.Exec(ctx, query, id, reason)
	if err != nil {
		return fmt.Errorf("mark transaction failed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTransactionNotPending
	}
	return nil
}

// ListByWallet returns one page of a wallet's transactions, newest first,
// plus the total count.
func (r *TransactionRepo) ListByWallet(ctx context.Context, walletID uuid.UUID, page, pageSize int) ([]domain.Transaction, int64, error) {
	var total int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM transactions WHERE wallet_id = $1`, walletID).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count transactions: %w", err)
	}

	offset := (page - 1) * pageSize
	query := `SELECT ` + transactionColumns + ` FROM transactions
		WHERE wallet_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, walletID, pageSize, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	txns := make([]domain.Transaction, 0, pageSize)
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan transaction row: %w", err)
		}
		txns = append(txns, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate transaction rows: %w", err)
	}
	return txns, total, nil
}

// FailStalePending fails pending rows older than olderThan.
func (r *TransactionRepo) FailStalePending(ctx context.Context, currency domain.Currency, kind domain.TransactionKind, olderThan time.Time) (int64, error) {
	query := `UPDATE transactions
		SET status = 'failed',
			description = CONCAT_WS(' | ', NULLIF(description, ''), 'expired'),
			updated_at = NOW()
		WHERE status = 'pending' AND currency = $1 AND kind = $2 AND created_at < $3`

	tag, err := r.pool.Exec(ctx, query, currency, kind, olderThan)
	if err != nil {
		return 0, fmt.Errorf("fail stale pending transactions: %w", err)
	}
	return tag.RowsAffected(), nil
}

// scanTransaction returns nil, nil when no row matched.
func scanTransaction(row rowScanner) (*domain.Transaction, error) {
	t := &domain.Transaction{}
	var amount string
	err := row.Scan(
		&t.ID, &t.WalletID, &t.Kind, &t.Currency, &amount, &t.ExternalReference, &t.CartID,
		&t.Status, &t.Description, &t.GatewayRefID, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	if t.Amount, err = decimal.NewFromString(amount); err != nil {
		return nil, fmt.Errorf("parse amount: %w", err)
	}
	return t, nil
}
