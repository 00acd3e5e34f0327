package ports

//go:generate mockgen -source=repositories.go -destination=mocks/mock_repositories.go -package=mocks

import (
	"context"
	"time"

	"wallet-settlement/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// WalletRepository defines persistence operations for wallets.
// Methods accepting pgx.Tx are used inside transaction blocks for pessimistic locking.
type WalletRepository interface {
	Create(ctx context.Context, tx pgx.Tx, wallet *domain.Wallet) error
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Wallet, error)
	GetByUserIDForUpdate(ctx context.Context, tx pgx.Tx, userID uuid.UUID) (*domain.Wallet, error)
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Wallet, error)
	// Credit adds amount to the selected balance.
	Credit(ctx context.Context, tx pgx.Tx, walletID uuid.UUID, currency domain.Currency, amount decimal.Decimal) error
	// Debit subtracts amount only if the balance covers it, otherwise
	// returns domain.ErrInsufficientFunds.
	Debit(ctx context.Context, tx pgx.Tx, walletID uuid.UUID, currency domain.Currency, amount decimal.Decimal) error
}

// TransactionRepository defines persistence operations for ledger transactions.
type TransactionRepository interface {
	// Create inserts a row. A unique-index violation on external_reference
	// is returned as domain.ErrDuplicateReference.
	Create(ctx context.Context, tx pgx.Tx, transaction *domain.Transaction) error
	GetPendingByReference(ctx context.Context, reference string) (*domain.Transaction, error)
	GetPendingByReferenceForUpdate(ctx context.Context, tx pgx.Tx, reference string) (*domain.Transaction, error)
	GetPendingCartPayment(ctx context.Context, walletID, cartID uuid.UUID, currency domain.Currency) (*domain.Transaction, error)
	GetPendingCartPaymentForUpdate(ctx context.Context, tx pgx.Tx, walletID, cartID uuid.UUID, currency domain.Currency) (*domain.Transaction, error)
	ExistsCompletedByReference(ctx context.Context, reference string, currency domain.Currency) (bool, error)
	// Complete moves a pending row to completed, recording reference and
	// gateway ref id when set. Returns domain.ErrTransactionNotPending when
	// the row already left pending.
	Complete(ctx context.Context, tx pgx.Tx, transaction *domain.Transaction) error
	MarkFailed(ctx context.Context, tx pgx.Tx, id uuid.UUID, reason string) error
	ListByWallet(ctx context.Context, walletID uuid.UUID, page, pageSize int) ([]domain.Transaction, int64, error)
	// FailStalePending fails pending rows of the given currency and kind
	// created before olderThan and returns how many changed.
	FailStalePending(ctx context.Context, currency domain.Currency, kind domain.TransactionKind, olderThan time.Time) (int64, error)
}

// CartRepository reads carts owned by the cart subsystem and flips their status.
type CartRepository interface {
	GetPendingByUser(ctx context.Context, userID uuid.UUID) (*domain.Cart, error)
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Cart, error)
	// MarkCompleted returns domain.ErrCartNotPending if the cart already left pending.
	MarkCompleted(ctx context.Context, tx pgx.Tx, id uuid.UUID) error
}

// InvoiceRepository stores one invoice per completed cart.
type InvoiceRepository interface {
	Create(ctx context.Context, tx pgx.Tx, invoice *domain.Invoice) error
}

// AuditRepository persists audit entries.
type AuditRepository interface {
	Create(ctx context.Context, log *domain.AuditLog) error
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
