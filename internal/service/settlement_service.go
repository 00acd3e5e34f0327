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
	"go.opentelemetry.io/otel/attribute"
)

// SettlementServiceImpl implements ports.SettlementService.
type SettlementServiceImpl struct {
	walletRepo  ports.WalletRepository
	txRepo      ports.TransactionRepository
	cartRepo    ports.CartRepository
	invoiceRepo ports.InvoiceRepository
	gateway     ports.PaymentGateway
	chain       ports.ChainClient
	notifier    ports.Notifier
	guard       *Guard
	callbackURL string
	log         zerolog.Logger
}

// NewSettlementService creates a new SettlementServiceImpl. callbackURL is
// where the gateway redirects the payer after a direct cart payment.
func NewSettlementService(
	walletRepo ports.WalletRepository,
	txRepo ports.TransactionRepository,
	cartRepo ports.CartRepository,
	invoiceRepo ports.InvoiceRepository,
	gateway ports.PaymentGateway,
	chain ports.ChainClient,
	notifier ports.Notifier,
	guard *Guard,
	callbackURL string,
	log zerolog.Logger,
) *SettlementServiceImpl {
	return &SettlementServiceImpl{
		walletRepo:  walletRepo,
		txRepo:      txRepo,
		cartRepo:    cartRepo,
		invoiceRepo: invoiceRepo,
		gateway:     gateway,
		chain:       chain,
		notifier:    notifier,
		guard:       guard,
		callbackURL: callbackURL,
		log:         log,
	}
}

// PayCart settles the user's pending cart with method. Wallet methods
// complete immediately; direct methods open a pending payment that a later
// verify call completes.
func (s *SettlementServiceImpl) PayCart(ctx context.Context, payer ports.Payer, method domain.PaymentMethod) (_ *ports.CartPayment, err error) {
	ctx, span := startSpan(ctx, "settlement.PayCart",
		attribute.String("user_id", payer.UserID.String()),
		attribute.String("method", string(method)))
	defer func() { endSpan(span, err) }()

	if !method.Valid() {
		return nil, apperror.ErrInvalidPayMethod()
	}

	cart, err := s.pendingCart(ctx, payer.UserID)
	if err != nil {
		return nil, err
	}
	if !cart.Total.IsPositive() {
		return nil, apperror.Validation("Cart is empty")
	}

	switch method {
	case domain.PayMethodWalletFiat, domain.PayMethodWalletChain:
		return s.payFromWallet(ctx, payer.UserID, cart, method)
	case domain.PayMethodDirectFiat:
		return s.openDirectFiat(ctx, payer, cart)
	default:
		return s.openDirectChain(ctx, payer.UserID, cart)
	}
}

func (s *SettlementServiceImpl) pendingCart(ctx context.Context, userID uuid.UUID) (*domain.Cart, error) {
	cart, err := s.cartRepo.GetPendingByUser(ctx, userID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("get pending cart: %w", err))
	}
	if cart == nil {
		return nil, apperror.ErrNotFound("Cart")
	}
	return cart, nil
}

func (s *SettlementServiceImpl) payFromWallet(ctx context.Context, userID uuid.UUID, cart *domain.Cart, method domain.PaymentMethod) (*ports.CartPayment, error) {
	unlock, err := s.guard.Lock(ctx, domain.CartSettlementKey(cart.ID))
	if err != nil {
		return nil, err
	}
	defer unlock()

	currency := method.Currency()
	var txn *domain.Transaction

	err = s.guard.InTx(ctx, func(tx pgx.Tx) error {
		locked, err := s.lockPendingCart(ctx, tx, cart.ID)
		if err != nil {
			return err
		}

		wallet, err := s.walletRepo.GetByUserIDForUpdate(ctx, tx, userID)
		if err != nil {
			return apperror.ErrDatabaseError(fmt.Errorf("lock wallet: %w", err))
		}
		if wallet == nil {
			return apperror.ErrNotFound("Wallet")
		}
		if wallet.Balance(currency).LessThan(locked.Total) {
			return apperror.ErrInsufficientFunds()
		}

		if err := s.walletRepo.Debit(ctx, tx, wallet.ID, currency, locked.Total); err != nil {
			return ledgerError("debit wallet", err)
		}

		now := time.Now().UTC()
		cartID := locked.ID
		txn = &domain.Transaction{
			ID:          uuid.New(),
			WalletID:    wallet.ID,
			Kind:        domain.TransactionKindPayment,
			Currency:    currency,
			Amount:      locked.Total,
			CartID:      &cartID,
			Status:      domain.TransactionStatusCompleted,
			Description: fmt.Sprintf("Cart %s paid from wallet", cartID),
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := s.txRepo.Create(ctx, tx, txn); err != nil {
			return ledgerError("record payment", err)
		}

		return s.completeCart(ctx, tx, locked)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("tx_id", txn.ID.String()).
		Str("user_id", userID.String()).
		Str("cart_id", cart.ID.String()).
		Str("currency", string(currency)).
		Str("amount", txn.Amount.String()).
		Msg("cart paid from wallet")

	s.notifier.TransactionCompleted(ctx, userID, txn)

	return &ports.CartPayment{
		Method:      method,
		CartID:      cart.ID,
		Amount:      txn.Amount,
		Transaction: txn,
	}, nil
}

func (s *SettlementServiceImpl) openDirectFiat(ctx context.Context, payer ports.Payer, cart *domain.Cart) (*ports.CartPayment, error) {
	wallet, err := s.wallet(ctx, payer.UserID)
	if err != nil {
		return nil, err
	}

	res, err := s.gateway.Initiate(ctx, ports.InitiateRequest{
		Amount:      cart.Total,
		Description: fmt.Sprintf("Cart %s payment", cart.ID),
		CallbackURL: s.callbackURL,
		Email:       payer.Email,
	})
	if err != nil {
		return nil, upstreamError(err)
	}

	authority := res.Authority
	cartID := cart.ID
	now := time.Now().UTC()
	txn := &domain.Transaction{
		ID:                uuid.New(),
		WalletID:          wallet.ID,
		Kind:              domain.TransactionKindPayment,
		Currency:          domain.CurrencyFiat,
		Amount:            cart.Total,
		ExternalReference: &authority,
		CartID:            &cartID,
		Status:            domain.TransactionStatusPending,
		Description:       fmt.Sprintf("Cart %s direct gateway payment", cartID),
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	err = s.guard.InTx(ctx, func(tx pgx.Tx) error {
		if err := s.txRepo.Create(ctx, tx, txn); err != nil {
			return ledgerError("create pending payment", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("tx_id", txn.ID.String()).
		Str("cart_id", cartID.String()).
		Str("authority", authority).
		Msg("direct fiat cart payment initiated")

	return &ports.CartPayment{
		Method:      domain.PayMethodDirectFiat,
		CartID:      cartID,
		Amount:      cart.Total,
		Transaction: txn,
		Fiat: &ports.FiatInitiation{
			Authority:     authority,
			PaymentURL:    res.PaymentURL,
			TransactionID: txn.ID,
		},
	}, nil
}

func (s *SettlementServiceImpl) openDirectChain(ctx context.Context, userID uuid.UUID, cart *domain.Cart) (*ports.CartPayment, error) {
	wallet, err := s.wallet(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !wallet.HasChainAddress() {
		return nil, apperror.ErrNotFound("Chain address")
	}

	txn, err := s.txRepo.GetPendingCartPayment(ctx, wallet.ID, cart.ID, domain.CurrencyChain)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("find pending payment: %w", err))
	}

	if txn == nil {
		cartID := cart.ID
		now := time.Now().UTC()
		txn = &domain.Transaction{
			ID:          uuid.New(),
			WalletID:    wallet.ID,
			Kind:        domain.TransactionKindPayment,
			Currency:    domain.CurrencyChain,
			Amount:      cart.Total,
			CartID:      &cartID,
			Status:      domain.TransactionStatusPending,
			Description: fmt.Sprintf("Cart %s direct chain payment", cartID),
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		err = s.guard.InTx(ctx, func(tx pgx.Tx) error {
			if err := s.txRepo.Create(ctx, tx, txn); err != nil {
				return ledgerError("create pending payment", err)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
		s.log.Info().Str("tx_id", txn.ID.String()).Str("cart_id", cartID.String()).Msg("direct chain cart payment opened")
	}

	return &ports.CartPayment{
		Method:       domain.PayMethodDirectChain,
		CartID:       cart.ID,
		Amount:       cart.Total,
		Transaction:  txn,
		ChainAddress: *wallet.ChainAddress,
	}, nil
}

// VerifyDirectFiat handles the gateway callback for a direct cart payment.
func (s *SettlementServiceImpl) VerifyDirectFiat(ctx context.Context, status, authority string) (_ *ports.SettlementResult, err error) {
	ctx, span := startSpan(ctx, "settlement.VerifyDirectFiat", attribute.String("authority", authority))
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
		return nil, apperror.ErrDatabaseError(fmt.Errorf("find pending payment: %w", err))
	}
	if pending == nil || !pending.IsCartPayment() || pending.Currency != domain.CurrencyFiat {
		return nil, apperror.ErrTransactionNotFoundOrProcessed()
	}

	verified, err := s.gateway.Verify(ctx, authority, pending.Amount)
	if err != nil {
		return nil, s.guard.FailRejected(ctx, s.txRepo, pending, err)
	}
	if verified.AlreadyVerified {
		s.log.Info().Str("tx_id", pending.ID.String()).Str("authority", authority).Msg("cart payment already verified, nothing changed")
		return &ports.SettlementResult{Transaction: pending, RefID: verified.RefID, AlreadyVerified: true}, nil
	}

	var buyer uuid.UUID
	var orphaned bool
	err = s.guard.InTx(ctx, func(tx pgx.Tx) error {
		cart, err := s.cartRepo.GetByIDForUpdate(ctx, tx, *pending.CartID)
		if err != nil {
			return apperror.ErrDatabaseError(fmt.Errorf("lock cart: %w", err))
		}
		if cart == nil {
			return apperror.ErrNotFound("Cart")
		}
		buyer = cart.UserID

		// The gateway has captured the money; keep the row for reconciliation.
		if !cart.IsPending() {
			orphaned = true
			reason := fmt.Sprintf("cart no longer pending, captured ref_id: %s", verified.RefID)
			if err := s.txRepo.MarkFailed(ctx, tx, pending.ID, reason); err != nil {
				return ledgerError("fail orphaned payment", err)
			}
			return nil
		}

		locked, err := s.txRepo.GetPendingByReferenceForUpdate(ctx, tx, authority)
		if err != nil {
			return apperror.ErrDatabaseError(fmt.Errorf("lock pending payment: %w", err))
		}
		if locked == nil {
			return apperror.ErrTransactionNotFoundOrProcessed()
		}

		refID := verified.RefID
		locked.GatewayRefID = &refID
		locked.Description = fmt.Sprintf("%s | ref_id: %s", locked.Description, refID)
		if err := s.txRepo.Complete(ctx, tx, locked); err != nil {
			return ledgerError("complete payment", err)
		}
		pending = locked

		return s.completeCart(ctx, tx, cart)
	})
	if err != nil {
		return nil, err
	}
	if orphaned {
		s.log.Warn().
			Str("tx_id", pending.ID.String()).
			Str("cart_id", pending.CartID.String()).
			Str("ref_id", verified.RefID).
			Msg("captured payment for a settled cart, marked failed for reconciliation")
		return nil, apperror.ErrCartNotPending()
	}

	s.log.Info().
		Str("tx_id", pending.ID.String()).
		Str("cart_id", pending.CartID.String()).
		Str("ref_id", verified.RefID).
		Msg("direct fiat cart payment settled")

	s.notifier.TransactionCompleted(ctx, buyer, pending)

	return &ports.SettlementResult{Transaction: pending, RefID: verified.RefID}, nil
}

// VerifyDirectChain settles the user's pending cart with a transfer they
// sent to their own deposit address.
func (s *SettlementServiceImpl) VerifyDirectChain(ctx context.Context, userID uuid.UUID, hash string) (_ *ports.SettlementResult, err error) {
	ctx, span := startSpan(ctx, "settlement.VerifyDirectChain", attribute.String("tx_hash", hash))
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

	wallet, err := s.wallet(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !wallet.HasChainAddress() {
		return nil, apperror.ErrNotFound("Chain address")
	}

	cart, err := s.pendingCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	unlock, err := s.guard.Lock(ctx, domain.CartSettlementKey(cart.ID))
	if err != nil {
		return nil, err
	}
	defer unlock()

	transfer, canonical, err := fetchTransfer(ctx, s.chain, hash)
	if err != nil {
		return nil, err
	}
	if transfer.ToAddress != *wallet.ChainAddress {
		return nil, apperror.ErrAddressMismatch()
	}
	if transfer.MajorAmount().LessThan(cart.Total) {
		return nil, apperror.ErrPaymentMismatch()
	}

	var txn *domain.Transaction
	err = s.guard.InTx(ctx, func(tx pgx.Tx) error {
		locked, err := s.lockPendingCart(ctx, tx, cart.ID)
		if err != nil {
			return err
		}
		if transfer.MajorAmount().LessThan(locked.Total) {
			return apperror.ErrPaymentMismatch()
		}

		pending, err := s.txRepo.GetPendingCartPaymentForUpdate(ctx, tx, wallet.ID, cart.ID, domain.CurrencyChain)
		if err != nil {
			return apperror.ErrDatabaseError(fmt.Errorf("lock pending payment: %w", err))
		}
		if pending == nil {
			return apperror.ErrTransactionNotFoundOrProcessed()
		}

		pending.ExternalReference = &canonical
		if err := s.txRepo.Complete(ctx, tx, pending); err != nil {
			return ledgerError("complete payment", err)
		}
		txn = pending

		return s.completeCart(ctx, tx, locked)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("tx_id", txn.ID.String()).
		Str("cart_id", cart.ID.String()).
		Str("tx_hash", hash).
		Msg("direct chain cart payment settled")

	s.notifier.TransactionCompleted(ctx, userID, txn)

	return &ports.SettlementResult{Transaction: txn}, nil
}

func (s *SettlementServiceImpl) wallet(ctx context.Context, userID uuid.UUID) (*domain.Wallet, error) {
	wallet, err := s.walletRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("get wallet: %w", err))
	}
	if wallet == nil {
		return nil, apperror.ErrNotFound("Wallet")
	}
	return wallet, nil
}

// lockPendingCart row-locks the cart and re-checks it is still pending.
// A concurrent settlement that committed first leaves it completed.
func (s *SettlementServiceImpl) lockPendingCart(ctx context.Context, tx pgx.Tx, cartID uuid.UUID) (*domain.Cart, error) {
	cart, err := s.cartRepo.GetByIDForUpdate(ctx, tx, cartID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("lock cart: %w", err))
	}
	if cart == nil {
		return nil, apperror.ErrNotFound("Cart")
	}
	if !cart.IsPending() {
		return nil, apperror.ErrCartNotPending()
	}
	return cart, nil
}

// completeCart flips cart to completed and writes its invoice.
func (s *SettlementServiceImpl) completeCart(ctx context.Context, tx pgx.Tx, cart *domain.Cart) error {
	if err := s.cartRepo.MarkCompleted(ctx, tx, cart.ID); err != nil {
		return ledgerError("complete cart", err)
	}
	invoice := &domain.Invoice{
		ID:        uuid.New(),
		CartID:    cart.ID,
		Amount:    cart.Total,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.invoiceRepo.Create(ctx, tx, invoice); err != nil {
		return ledgerError("create invoice", err)
	}
	return nil
}
