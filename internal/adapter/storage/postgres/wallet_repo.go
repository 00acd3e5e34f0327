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

const walletColumns = `id, user_id, balance_fiat::text, balance_chain::text, chain_address,
		encrypted_private_key, created_at, updated_at`

// WalletRepo implements ports.WalletRepository.
type WalletRepo struct {
	pool Pool
}

// NewWalletRepo creates a new WalletRepo.
func NewWalletRepo(pool Pool) *WalletRepo {
	return &WalletRepo{pool: pool}
}

// Create inserts a new wallet. A second wallet for the same user is
// rejected by the unique index and reported as domain.ErrWalletExists.
func (r *WalletRepo) Create(ctx context.Context, tx pgx.Tx, w *domain.Wallet) error {
	query := `INSERT INTO wallets (id, user_id, balance_fiat, balance_chain, chain_address,
		encrypted_private_key, created_at, updated_at)
		VALUES ($1, $2, $3::numeric, $4::numeric, $5, $6, $7, $8)`

	_, err := tx.Exec(ctx, query,
		w.ID, w.UserID, w.BalanceFiat.String(), w.BalanceChain.String(),
		w.ChainAddress, w.EncryptedPrivateKey, w.CreatedAt, w.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrWalletExists
		}
		return fmt.Errorf("insert wallet: %w", err)
	}
	return nil
}

// GetByUserID fetches the user's wallet (non-locking read).
func (r *WalletRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets WHERE user_id = $1`

	w, err := scanWallet(r.pool.QueryRow(ctx, query, userID))
	if err != nil {
		return nil, fmt.Errorf("get wallet by user id: %w", err)
	}
	return w, nil
}

// GetByUserIDForUpdate fetches the user's wallet with pessimistic locking.
// This MUST be called within a transaction.
func (r *WalletRepo) GetByUserIDForUpdate(ctx context.Context, tx pgx.Tx, userID uuid.UUID) (*domain.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets WHERE user_id = $1 FOR UPDATE`

	w, err := scanWallet(tx.QueryRow(ctx, query, userID))
	if err != nil {
		return nil, fmt.Errorf("get wallet for update by user: %w", err)
	}
	return w, nil
}

// GetByIDForUpdate fetches a wallet by ID with pessimistic locking.
// This MUST be called within a transaction.
func (r *WalletRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets WHERE id = $1 FOR UPDATE`

	w, err := scanWallet(tx.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("get wallet for update by id: %w", err)
	}
	return w, nil
}

// Credit adds amount to one balance.
func (r *WalletRepo) Credit(ctx context.Context, tx pgx.Tx, walletID uuid.UUID, currency domain.Currency, amount decimal.Decimal) error {
	column, err := balanceColumn(currency)
	if err != nil {
		return err
	}
	query := fmt.Sprintf(`UPDATE wallets SET %[1]s = %[1]s + $1::numeric, updated_at = NOW() WHERE id = $2`, column)

	tag, err := tx.Exec(ctx, query, amount.String(), walletID)
	if err != nil {
		return fmt.Errorf("credit wallet: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("wallet not found: %s", walletID)
	}
	return nil
}

// Debit subtracts amount from one balance. The guard in the WHERE clause
// keeps the balance from going negative even without a prior read.
func (r *WalletRepo) Debit(ctx context.Context, tx pgx.Tx, walletID uuid.UUID, currency domain.Currency, amount decimal.Decimal) error {
	column, err := balanceColumn(currency)
	if err != nil {
		return err
	}
	query := fmt.Sprintf(`UPDATE wallets SET %[1]s = %[1]s - $1::numeric, updated_at = NOW()
		WHERE id = $2 AND %[1]s >= $1::numeric`, column)

	tag, err := tx.Exec(ctx, query, amount.String(), walletID)
	if err != nil {
		return fmt.Errorf("debit wallet: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrInsufficientFunds
	}
	return nil
}

func balanceColumn(currency domain.Currency) (string, error) {
	switch currency {
	case domain.CurrencyFiat:
		return "balance_fiat", nil
	case domain.CurrencyChain:
		return "balance_chain", nil
	default:
		return "", fmt.Errorf("unknown currency %q", currency)
	}
}

// scanWallet returns nil, nil when no row matched.
func scanWallet(row rowScanner) (*domain.Wallet, error) {
	w := &domain.Wallet{}
	var fiat, chain string
	err := row.Scan(
		&w.ID, &w.UserID, &fiat, &chain, &w.ChainAddress,
		&w.EncryptedPrivateKey, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	if w.BalanceFiat, err = decimal.NewFromString(fiat); err != nil {
		return nil, fmt.Errorf("parse balance_fiat: %w", err)
	}
	if w.BalanceChain, err = decimal.NewFromString(chain); err != nil {
		return nil, fmt.Errorf("parse balance_chain: %w", err)
	}
	return w, nil
}
