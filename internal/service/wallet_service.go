package service

import (
	"context"
	"fmt"
	"time"

	"wallet-settlement/internal/core/domain"
	"wallet-settlement/internal/core/ports"
	"wallet-settlement/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// WalletServiceImpl implements ports.WalletService.
type WalletServiceImpl struct {
	walletRepo ports.WalletRepository
	txRepo     ports.TransactionRepository
	keyGen     ports.KeyGenerator
	encSvc     ports.EncryptionService
	guard      *Guard
	log        zerolog.Logger
}

// NewWalletService creates a new WalletServiceImpl.
func NewWalletService(
	walletRepo ports.WalletRepository,
	txRepo ports.TransactionRepository,
	keyGen ports.KeyGenerator,
	encSvc ports.EncryptionService,
	guard *Guard,
	log zerolog.Logger,
) *WalletServiceImpl {
	return &WalletServiceImpl{
		walletRepo: walletRepo,
		txRepo:     txRepo,
		keyGen:     keyGen,
		encSvc:     encSvc,
		guard:      guard,
		log:        log,
	}
}

// Provision creates the user's wallet in its own transaction.
func (s *WalletServiceImpl) Provision(ctx context.Context, userID uuid.UUID) (*domain.Wallet, error) {
	existing, err := s.walletRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("get wallet: %w", err))
	}
	if existing != nil {
		return nil, apperror.ErrWalletExists()
	}

	var wallet *domain.Wallet
	err = s.guard.InTx(ctx, func(tx pgx.Tx) error {
		var err error
		wallet, err = s.ProvisionTx(ctx, tx, userID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return wallet, nil
}

// ProvisionTx creates the wallet inside the caller's transaction, so user
// creation and wallet creation commit together. A fresh chain keypair is
// generated and its private key sealed before it touches the database.
func (s *WalletServiceImpl) ProvisionTx(ctx context.Context, tx pgx.Tx, userID uuid.UUID) (*domain.Wallet, error) {
	privHex, address, err := s.keyGen.Generate()
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("generate keypair: %w", err))
	}
	if !domain.ValidChainAddress(address) {
		return nil, apperror.InternalError(fmt.Errorf("generated address %q is not a valid chain address", address))
	}

	sealed, err := s.encSvc.Encrypt(privHex)
	if err != nil {
		return nil, apperror.ErrEncryptionFailure(fmt.Errorf("encrypt private key: %w", err))
	}

	now := time.Now().UTC()
	wallet := &domain.Wallet{
		ID:                  uuid.New(),
		UserID:              userID,
		BalanceFiat:         decimal.Zero,
		BalanceChain:        decimal.Zero,
		ChainAddress:        &address,
		EncryptedPrivateKey: sealed,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	if err := s.walletRepo.Create(ctx, tx, wallet); err != nil {
		return nil, ledgerError("create wallet", err)
	}

	s.log.Info().
		Str("wallet_id", wallet.ID.String()).
		Str("user_id", userID.String()).
		Str("chain_address", address).
		Msg("wallet provisioned")

	return wallet, nil
}

// GetWallet returns the user's wallet.
func (s *WalletServiceImpl) GetWallet(ctx context.Context, userID uuid.UUID) (*domain.Wallet, error) {
	wallet, err := s.walletRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("get wallet: %w", err))
	}
	if wallet == nil {
		return nil, apperror.ErrNotFound("Wallet")
	}
	return wallet, nil
}

// ListTransactions returns one page of the user's ledger, newest first.
func (s *WalletServiceImpl) ListTransactions(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]domain.Transaction, int64, error) {
	wallet, err := s.GetWallet(ctx, userID)
	if err != nil {
		return nil, 0, err
	}

	page, pageSize = normalizePage(page, pageSize)
	txns, total, err := s.txRepo.ListByWallet(ctx, wallet.ID, page, pageSize)
	if err != nil {
		return nil, 0, apperror.ErrDatabaseError(fmt.Errorf("list transactions: %w", err))
	}
	return txns, total, nil
}

func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return page, pageSize
}
