package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"wallet-settlement/internal/core/domain"
	"wallet-settlement/internal/core/ports"
	"wallet-settlement/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
)

// CallbackStatusOK is the gateway's success flag on the redirect callback.
const CallbackStatusOK = "OK"

// DepositServiceImpl implements ports.DepositService.
type DepositServiceImpl struct {
	walletRepo  ports.WalletRepository
	txRepo      ports.TransactionRepository
	gateway     ports.PaymentGateway
	chain       ports.ChainClient
	notifier    ports.Notifier
	guard       *Guard
	callbackURL string
	log         zerolog.Logger
}

// NewDepositService creates a new DepositServiceImpl. callbackURL is where
// the gateway redirects the payer after a fiat deposit.
func NewDepositService(
	walletRepo ports.WalletRepository,
	txRepo ports.TransactionRepository,
	gateway ports.PaymentGateway,
	chain ports.ChainClient,
	notifier ports.Notifier,
	guard *Guard,
	callbackURL string,
	log zerolog.Logger,
) *DepositServiceImpl {
	return &DepositServiceImpl{
		walletRepo:  walletRepo,
		txRepo:      txRepo,
		gateway:     gateway,
		chain:       chain,
		notifier:    notifier,
		guard:       guard,
		callbackURL: callbackURL,
		log:         log,
	}
}

// InitiateFiatDeposit opens a gateway payment and records it as a pending
// deposit keyed by the returned authority.
func (s *DepositServiceImpl) InitiateFiatDeposit(ctx context.Context, payer ports.Payer, amount decimal.Decimal) (_ *ports.FiatInitiation, err error) {
	ctx, span := startSpan(ctx, "deposit.InitiateFiat", attribute.String("user_id", payer.UserID.String()))
	defer func() { endSpan(span, err) }()

	if !amount.IsPositive() {
		return nil, apperror.ErrInvalidAmount()
	}

	wallet, err := s.walletRepo.GetByUserID(ctx, payer.UserID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("get wallet: %w", err))
	}
	if wallet == nil {
		return nil, apperror.ErrNotFound("Wallet")
	}

	res, err := s.gateway.Initiate(ctx, ports.InitiateRequest{
		Amount:      amount,
		Description: "Wallet deposit",
		CallbackURL: s.callbackURL,
		Email:       payer.Email,
	})
	if err != nil {
		return nil, upstreamError(err)
	}

	authority := res.Authority
	now := time.Now().UTC()
	txn := &domain.Transaction{
		ID:                uuid.New(),
		WalletID:          wallet.ID,
		Kind:              domain.TransactionKindDeposit,
		Currency:          domain.CurrencyFiat,
		Amount:            amount,
		ExternalReference: &authority,
		Status:            domain.TransactionStatusPending,
		Description:       "Wallet deposit via gateway",
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	err = s.guard.InTx(ctx, func(tx pgx.Tx) error {
		if err := s.txRepo.Create(ctx, tx, txn); err != nil {
			return ledgerError("create pending deposit", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("tx_id", txn.ID.String()).
		Str("user_id", payer.UserID.String()).
		Str("authority", authority).
		Str("amount", amount.String()).
		Msg("fiat deposit initiated")

	return &ports.FiatInitiation{
		Authority:     authority,
		PaymentURL:    res.PaymentURL,
		TransactionID: txn.ID,
	}, nil
}

// VerifyFiatDeposit handles the gateway callback for a deposit. Only a
// pending row can be settled, so a replayed callback finds nothing.
func (s *DepositServiceImpl) VerifyFiatDeposit(ctx context.Context, status, authority string) (_ *ports.SettlementResult, err error) {
	ctx, span := startSpan(ctx, "deposit.VerifyFiat", attribute.String("authority", authority))
	defer func() { endSpan(span, err) }()

	if status != CallbackStatusOK {
		return nil, apperror.ErrGatewayRejected()
	}
	if authority == "" {
		return nil, apperror.Validation("Missing authority")
	}

	unlock, err := s.guard.Lock(ctx, domain.FiatSettlementKey(authority))
	if err != nil {
		return nil, err
	}
	defer unlock()

	pending, err := s.txRepo.GetPendingByReference(ctx, authority)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("find pending deposit: %w", err))
	}
	if pending == nil || pending.Kind != domain.TransactionKindDeposit || pending.Currency != domain.CurrencyFiat {
		return nil, apperror.ErrTransactionNotFoundOrProcessed()
	}

	verified, err := s.gateway.Verify(ctx, authority, pending.Amount)
	if err != nil {
		return nil, s.guard.FailRejected(ctx, s.txRepo, pending, err)
	}
	if verified.AlreadyVerified {
		s.log.Info().Str("tx_id", pending.ID.String()).Str("authority", authority).Msg("fiat deposit already verified, nothing credited")
		return &ports.SettlementResult{Transaction: pending, RefID: verified.RefID, AlreadyVerified: true}, nil
	}

	var userID uuid.UUID
	err = s.guard.InTx(ctx, func(tx pgx.Tx) error {
		locked, err := s.txRepo.GetPendingByReferenceForUpdate(ctx, tx, authority)
		if err != nil {
			return apperror.ErrDatabaseError(fmt.Errorf("lock pending deposit: %w", err))
		}
		if locked == nil {
			return apperror.ErrTransactionNotFoundOrProcessed()
		}

		wallet, err := s.walletRepo.GetByIDForUpdate(ctx, tx, locked.WalletID)
		if err != nil {
			return apperror.ErrDatabaseError(fmt.Errorf("lock wallet: %w", err))
		}
		if wallet == nil {
			return apperror.ErrNotFound("Wallet")
		}
		userID = wallet.UserID

		if err := s.walletRepo.Credit(ctx, tx, wallet.ID, domain.CurrencyFiat, locked.Amount); err != nil {
			return ledgerError("credit wallet", err)
		}

		refID := verified.RefID
		locked.GatewayRefID = &refID
		if err := s.txRepo.Complete(ctx, tx, locked); err != nil {
			return ledgerError("complete deposit", err)
		}
		pending = locked
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("tx_id", pending.ID.String()).
		Str("user_id", userID.String()).
		Str("ref_id", verified.RefID).
		Str("amount", pending.Amount.String()).
		Msg("fiat deposit credited")

	s.notifier.TransactionCompleted(ctx, userID, pending)

	return &ports.SettlementResult{Transaction: pending, RefID: verified.RefID}, nil
}

// GetDepositAddress returns the chain address deposits must be sent to.
func (s *DepositServiceImpl) GetDepositAddress(ctx context.Context, userID uuid.UUID) (string, error) {
	wallet, err := s.walletRepo.GetByUserID(ctx, userID)
	if err != nil {
		return "", apperror.ErrDatabaseError(fmt.Errorf("get wallet: %w", err))
	}
	if wallet == nil {
		return "", apperror.ErrNotFound("Wallet")
	}
	if !wallet.HasChainAddress() {
		return "", apperror.ErrNotFound("Chain address")
	}
	return *wallet.ChainAddress, nil
}

// VerifyChainDeposit credits a transfer the user already sent to their
// deposit address. A hash is credited at most once.
func (s *DepositServiceImpl) VerifyChainDeposit(ctx context.Context, userID uuid.UUID, hash string) (_ *ports.SettlementResult, err error) {
	ctx, span := startSpan(ctx, "deposit.VerifyChain", attribute.String("tx_hash", hash))
	defer func() { endSpan(span, err) }()

	if !domain.ValidTxHash(hash) {
		return nil, apperror.ErrInvalidHash()
	}
	hash = strings.ToLower(hash)

	used, err := s.txRepo.ExistsCompletedByReference(ctx, hash, domain.CurrencyChain)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("check hash: %w", err))
	}
	if used {
		return nil, apperror.ErrAlreadyProcessed()
	}

	address, err := s.GetDepositAddress(ctx, userID)
	if err != nil {
		return nil, err
	}

	unlock, err := s.guard.Lock(ctx, domain.ChainSettlementKey(hash))
	if err != nil {
		return nil, err
	}
	defer unlock()

	transfer, canonical, err := fetchTransfer(ctx, s.chain, hash)
	if err != nil {
		return nil, err
	}
	if transfer.ToAddress != address {
		return nil, apperror.ErrAddressMismatch()
	}

	amount := transfer.MajorAmount()
	if !amount.IsPositive() {
		return nil, apperror.ErrInvalidChainTransaction()
	}

	now := time.Now().UTC()
	txn := &domain.Transaction{
		ID:                uuid.New(),
		Kind:              domain.TransactionKindDeposit,
		Currency:          domain.CurrencyChain,
		Amount:            amount,
		ExternalReference: &canonical,
		Status:            domain.TransactionStatusCompleted,
		Description:       "Chain deposit",
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	err = s.guard.InTx(ctx, func(tx pgx.Tx) error {
		wallet, err := s.walletRepo.GetByUserIDForUpdate(ctx, tx, userID)
		if err != nil {
			return apperror.ErrDatabaseError(fmt.Errorf("lock wallet: %w", err))
		}
		if wallet == nil {
			return apperror.ErrNotFound("Wallet")
		}
		txn.WalletID = wallet.ID

		if err := s.walletRepo.Credit(ctx, tx, wallet.ID, domain.CurrencyChain, amount); err != nil {
			return ledgerError("credit wallet", err)
		}
		if err := s.txRepo.Create(ctx, tx, txn); err != nil {
			return ledgerError("record chain deposit", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("tx_id", txn.ID.String()).
		Str("user_id", userID.String()).
		Str("tx_hash", hash).
		Str("amount", amount.String()).
		Msg("chain deposit credited")

	s.notifier.TransactionCompleted(ctx, userID, txn)

	return &ports.SettlementResult{Transaction: txn}, nil
}

// fetchTransfer loads hash from the node and returns its transfer contract
// together with the node's txID in lower case. Failed or non-transfer
// transactions, a txID that is not hash, and a malformed destination are invalid.
func fetchTransfer(ctx context.Context, chain ports.ChainClient, hash string) (*domain.ChainContract, string, error) {
	chainTx, err := chain.GetTransaction(ctx, hash)
	if err != nil {
		return nil, "", upstreamError(err)
	}
	if !strings.EqualFold(chainTx.Hash, hash) {
		return nil, "", apperror.ErrInvalidChainTransaction()
	}
	if !chainTx.Success {
		return nil, "", apperror.ErrInvalidChainTransaction()
	}
	transfer, ok := chainTx.Transfer()
	if !ok || !domain.ValidChainAddress(transfer.ToAddress) {
		return nil, "", apperror.ErrInvalidChainTransaction()
	}
	return &transfer, strings.ToLower(chainTx.Hash), nil
}
