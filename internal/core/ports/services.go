package ports

//go:generate mockgen -source=services.go -destination=mocks/mock_services.go -package=mocks

import (
	"context"
	"time"

	"wallet-settlement/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// EncryptionService handles AES-256-GCM encryption/decryption.
type EncryptionService interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
}

// SignatureService handles HMAC-SHA256 signing and verification.
type SignatureService interface {
	Sign(secretKey string, payload string) string
	Verify(secretKey string, payload string, signature string) bool
}

// TokenService handles JWT token operations.
type TokenService interface {
	Generate(userID uuid.UUID) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	UserID uuid.UUID
	Email  string // optional "email" claim
}

// Payer identifies the user starting a payment. Email is forwarded to the
// gateway when known.
type Payer struct {
	UserID uuid.UUID
	Email  string
}

// SettlementLocker is the Redis-layer settlement lock (fast path).
type SettlementLocker interface {
	// Acquire takes key for ttl. ok is false when another holder has it.
	Acquire(ctx context.Context, key string, ttl time.Duration) (token string, ok bool, err error)
	// Release drops key only if token still owns it.
	Release(ctx context.Context, key string, token string) error
}

// AuditService records audit entries.
type AuditService interface {
	Log(ctx context.Context, entry *domain.AuditLog)
}

// Notifier tells the user about completed transactions. Called after commit.
type Notifier interface {
	TransactionCompleted(ctx context.Context, userID uuid.UUID, transaction *domain.Transaction)
}

// --- Service Ports (Business Logic) ---

// WalletService provisions and reads wallets.
type WalletService interface {
	Provision(ctx context.Context, userID uuid.UUID) (*domain.Wallet, error)
	ProvisionTx(ctx context.Context, tx pgx.Tx, userID uuid.UUID) (*domain.Wallet, error)
	GetWallet(ctx context.Context, userID uuid.UUID) (*domain.Wallet, error)
	ListTransactions(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]domain.Transaction, int64, error)
}

// DepositService credits wallets from the gateway and the chain.
type DepositService interface {
	InitiateFiatDeposit(ctx context.Context, payer Payer, amount decimal.Decimal) (*FiatInitiation, error)
	VerifyFiatDeposit(ctx context.Context, status, authority string) (*SettlementResult, error)
	GetDepositAddress(ctx context.Context, userID uuid.UUID) (string, error)
	VerifyChainDeposit(ctx context.Context, userID uuid.UUID, hash string) (*SettlementResult, error)
}

// SettlementService pays carts.
type SettlementService interface {
	PayCart(ctx context.Context, payer Payer, method domain.PaymentMethod) (*CartPayment, error)
	VerifyDirectFiat(ctx context.Context, status, authority string) (*SettlementResult, error)
	VerifyDirectChain(ctx context.Context, userID uuid.UUID, hash string) (*SettlementResult, error)
}

// FiatInitiation is returned when a gateway payment was opened.
type FiatInitiation struct {
	Authority     string
	PaymentURL    string
	TransactionID uuid.UUID
}

// SettlementResult is the outcome of a verify step.
type SettlementResult struct {
	Transaction     *domain.Transaction
	RefID           string
	AlreadyVerified bool
}

// CartPayment is the outcome of PayCart. Wallet methods return the completed
// Transaction; direct methods return the pending one plus where to pay.
type CartPayment struct {
	Method       domain.PaymentMethod
	CartID       uuid.UUID
	Amount       decimal.Decimal
	Transaction  *domain.Transaction
	Fiat         *FiatInitiation
	ChainAddress string
}
