package service

import (
	"context"
	"strings"
	"testing"

	"wallet-settlement/internal/core/domain"
	"wallet-settlement/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testCartCallback = "https://shop.example.com/cart/pay/callback"

func newSettlementService(d *workflowDeps) *SettlementServiceImpl {
	return NewSettlementService(d.walletRepo, d.txRepo, d.cartRepo, d.invoiceRepo, d.gateway, d.chain, d.notifier, d.guard, testCartCallback, newTestLogger())
}

func testCart(userID uuid.UUID, total string) *domain.Cart {
	return &domain.Cart{
		ID:     uuid.New(),
		UserID: userID,
		Status: domain.CartStatusPending,
		Total:  decimal.RequireFromString(total),
	}
}

// expectCartCompletion expects the cart flip and invoice write inside d.tx.
func (d *workflowDeps) expectCartCompletion(t *testing.T, cart *domain.Cart) {
	d.cartRepo.EXPECT().MarkCompleted(gomock.Any(), d.tx, cart.ID).Return(nil)
	d.invoiceRepo.EXPECT().Create(gomock.Any(), d.tx, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ pgx.Tx, inv *domain.Invoice) error {
			assert.Equal(t, cart.ID, inv.CartID)
			assert.True(t, inv.Amount.Equal(cart.Total))
			return nil
		})
}

// ==================== PayCart: wallet methods ====================

func TestSettlementService_PayCart_WalletFiat(t *testing.T) {
	d := newWorkflowDeps(t)
	svc := newSettlementService(d)

	userID := uuid.New()
	wallet := testWallet(userID)
	wallet.BalanceFiat = decimal.NewFromInt(100000)
	cart := testCart(userID, "30000")
	lockedCart := *cart

	d.cartRepo.EXPECT().GetPendingByUser(gomock.Any(), userID).Return(cart, nil)
	d.expectLock(domain.CartSettlementKey(cart.ID))
	d.expectTx()
	d.cartRepo.EXPECT().GetByIDForUpdate(gomock.Any(), d.tx, cart.ID).Return(&lockedCart, nil)
	d.walletRepo.EXPECT().GetByUserIDForUpdate(gomock.Any(), d.tx, userID).Return(wallet, nil)
	d.walletRepo.EXPECT().Debit(gomock.Any(), d.tx, wallet.ID, domain.CurrencyFiat, decEq("30000")).DoAndReturn(
		func(_ context.Context, _ pgx.Tx, _ uuid.UUID, _ domain.Currency, amount decimal.Decimal) error {
			wallet.BalanceFiat = wallet.BalanceFiat.Sub(amount)
			return nil
		})

	var created *domain.Transaction
	d.txRepo.EXPECT().Create(gomock.Any(), d.tx, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ pgx.Tx, txn *domain.Transaction) error {
			created = txn
			return nil
		})
	d.cartRepo.EXPECT().MarkCompleted(gomock.Any(), d.tx, cart.ID).DoAndReturn(
		func(context.Context, pgx.Tx, uuid.UUID) error {
			lockedCart.Status = domain.CartStatusCompleted
			return nil
		})
	d.invoiceRepo.EXPECT().Create(gomock.Any(), d.tx, gomock.Any()).Return(nil)
	d.notifier.EXPECT().TransactionCompleted(gomock.Any(), userID, gomock.Any())

	res, err := svc.PayCart(context.Background(), ports.Payer{UserID: userID}, domain.PayMethodWalletFiat)
	require.NoError(t, err)

	assert.True(t, wallet.BalanceFiat.Equal(decimal.NewFromInt(70000)), "balance is %s", wallet.BalanceFiat)
	assert.Equal(t, domain.CartStatusCompleted, lockedCart.Status)
	require.NotNil(t, created)
	assert.Same(t, created, res.Transaction)
	assert.Equal(t, domain.TransactionKindPayment, created.Kind)
	assert.Equal(t, domain.CurrencyFiat, created.Currency)
	assert.Equal(t, domain.TransactionStatusCompleted, created.Status)
	assert.True(t, created.Amount.Equal(decimal.NewFromInt(30000)))
	require.NotNil(t, created.CartID)
	assert.Equal(t, cart.ID, *created.CartID)
	assert.True(t, d.tx.committed)
}

func TestSettlementService_PayCart_WalletChain(t *testing.T) {
	d := newWorkflowDeps(t)
	svc := newSettlementService(d)

	userID := uuid.New()
	wallet := testWallet(userID)
	wallet.BalanceChain = decimal.RequireFromString("40.5")
	cart := testCart(userID, "40.5")

	d.cartRepo.EXPECT().GetPendingByUser(gomock.Any(), userID).Return(cart, nil)
	d.expectLock(domain.CartSettlementKey(cart.ID))
	d.expectTx()
	d.cartRepo.EXPECT().GetByIDForUpdate(gomock.Any(), d.tx, cart.ID).Return(cart, nil)
	d.walletRepo.EXPECT().GetByUserIDForUpdate(gomock.Any(), d.tx, userID).Return(wallet, nil)
	d.walletRepo.EXPECT().Debit(gomock.Any(), d.tx, wallet.ID, domain.CurrencyChain, decEq("40.5")).Return(nil)
	d.txRepo.EXPECT().Create(gomock.Any(), d.tx, gomock.Any()).Return(nil)
	d.expectCartCompletion(t, cart)
	d.notifier.EXPECT().TransactionCompleted(gomock.Any(), userID, gomock.Any())

	res, err := svc.PayCart(context.Background(), ports.Payer{UserID: userID}, domain.PayMethodWalletChain)
	require.NoError(t, err)
	assert.Equal(t, domain.CurrencyChain, res.Transaction.Currency)
}

func TestSettlementService_PayCart_InsufficientFunds(t *testing.T) {
	d := newWorkflowDeps(t)
	svc := newSettlementService(d)

	userID := uuid.New()
	wallet := testWallet(userID)
	wallet.BalanceFiat = decimal.NewFromInt(10000)
	cart := testCart(userID, "30000")

	d.cartRepo.EXPECT().GetPendingByUser(gomock.Any(), userID).Return(cart, nil)
	d.expectLock(domain.CartSettlementKey(cart.ID))
	d.expectTx()
	d.cartRepo.EXPECT().GetByIDForUpdate(gomock.Any(), d.tx, cart.ID).Return(cart, nil)
	d.walletRepo.EXPECT().GetByUserIDForUpdate(gomock.Any(), d.tx, userID).Return(wallet, nil)

	_, err := svc.PayCart(context.Background(), ports.Payer{UserID: userID}, domain.PayMethodWalletFiat)
	assertAppError(t, err, "PAY_001")
	assert.False(t, d.tx.committed)
}

func TestSettlementService_PayCart_GuardedDebitRejects(t *testing.T) {
	d := newWorkflowDeps(t)
	svc := newSettlementService(d)

	userID := uuid.New()
	wallet := testWallet(userID)
	wallet.BalanceFiat = decimal.NewFromInt(50000) // stale read; the UPDATE guard decides
	cart := testCart(userID, "30000")

	d.cartRepo.EXPECT().GetPendingByUser(gomock.Any(), userID).Return(cart, nil)
	d.expectLock(domain.CartSettlementKey(cart.ID))
	d.expectTx()
	d.cartRepo.EXPECT().GetByIDForUpdate(gomock.Any(), d.tx, cart.ID).Return(cart, nil)
	d.walletRepo.EXPECT().GetByUserIDForUpdate(gomock.Any(), d.tx, userID).Return(wallet, nil)
	d.walletRepo.EXPECT().Debit(gomock.Any(), d.tx, wallet.ID, domain.CurrencyFiat, gomock.Any()).Return(domain.ErrInsufficientFunds)

	_, err := svc.PayCart(context.Background(), ports.Payer{UserID: userID}, domain.PayMethodWalletFiat)
	assertAppError(t, err, "PAY_001")
	assert.False(t, d.tx.committed)
}

func TestSettlementService_PayCart_LoserSeesCompletedCart(t *testing.T) {
	d := newWorkflowDeps(t)
	svc := newSettlementService(d)

	userID := uuid.New()
	cart := testCart(userID, "30000")
	settled := *cart
	settled.Status = domain.CartStatusCompleted

	d.cartRepo.EXPECT().GetPendingByUser(gomock.Any(), userID).Return(cart, nil)
	d.expectLock(domain.CartSettlementKey(cart.ID))
	d.expectTx()
	d.cartRepo.EXPECT().GetByIDForUpdate(gomock.Any(), d.tx, cart.ID).Return(&settled, nil)

	_, err := svc.PayCart(context.Background(), ports.Payer{UserID: userID}, domain.PayMethodWalletFiat)
	assertAppError(t, err, "PAY_011")
}

func TestSettlementService_PayCart_InvalidMethod(t *testing.T) {
	d := newWorkflowDeps(t)
	svc := newSettlementService(d)

	_, err := svc.PayCart(context.Background(), ports.Payer{UserID: uuid.New()}, "paypal")
	assertAppError(t, err, "VAL_001")
}

func TestSettlementService_PayCart_NoPendingCart(t *testing.T) {
	d := newWorkflowDeps(t)
	svc := newSettlementService(d)

	d.cartRepo.EXPECT().GetPendingByUser(gomock.Any(), gomock.Any()).Return(nil, nil)

	_, err := svc.PayCart(context.Background(), ports.Payer{UserID: uuid.New()}, domain.PayMethodWalletFiat)
	assertAppError(t, err, "PAY_004")
}

func TestSettlementService_PayCart_EmptyCart(t *testing.T) {
	d := newWorkflowDeps(t)
	svc := newSettlementService(d)

	userID := uuid.New()
	d.cartRepo.EXPECT().GetPendingByUser(gomock.Any(), userID).Return(testCart(userID, "0"), nil)

	_, err := svc.PayCart(context.Background(), ports.Payer{UserID: userID}, domain.PayMethodDirectFiat)
	assertAppError(t, err, "PAY_002")
}

// ==================== PayCart: direct methods ====================

func TestSettlementService_PayCart_DirectFiat(t *testing.T) {
	d := newWorkflowDeps(t)
	svc := newSettlementService(d)

	userID := uuid.New()
	wallet := testWallet(userID)
	cart := testCart(userID, "30000")

	d.cartRepo.EXPECT().GetPendingByUser(gomock.Any(), userID).Return(cart, nil)
	d.walletRepo.EXPECT().GetByUserID(gomock.Any(), userID).Return(wallet, nil)
	d.gateway.EXPECT().Initiate(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req ports.InitiateRequest) (*ports.InitiateResult, error) {
			assert.True(t, req.Amount.Equal(cart.Total))
			assert.Equal(t, testCartCallback, req.CallbackURL)
			assert.Equal(t, "buyer@example.com", req.Email)
			return &ports.InitiateResult{Authority: testAuthority, PaymentURL: "https://gw/pg/StartPay/" + testAuthority}, nil
		})
	d.expectTx()

	var created *domain.Transaction
	d.txRepo.EXPECT().Create(gomock.Any(), d.tx, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ pgx.Tx, txn *domain.Transaction) error {
			created = txn
			return nil
		})

	res, err := svc.PayCart(context.Background(), ports.Payer{UserID: userID, Email: "buyer@example.com"}, domain.PayMethodDirectFiat)
	require.NoError(t, err)

	require.NotNil(t, res.Fiat)
	assert.Equal(t, testAuthority, res.Fiat.Authority)
	assert.Equal(t, created.ID, res.Fiat.TransactionID)
	assert.Equal(t, domain.TransactionStatusPending, created.Status)
	assert.Equal(t, testAuthority, created.Reference())
	require.NotNil(t, created.CartID)
	assert.Equal(t, cart.ID, *created.CartID)
}

func TestSettlementService_PayCart_DirectChain_OpensIntent(t *testing.T) {
	d := newWorkflowDeps(t)
	svc := newSettlementService(d)

	userID := uuid.New()
	wallet := testWallet(userID)
	cart := testCart(userID, "30")

	d.cartRepo.EXPECT().GetPendingByUser(gomock.Any(), userID).Return(cart, nil)
	d.walletRepo.EXPECT().GetByUserID(gomock.Any(), userID).Return(wallet, nil)
	d.txRepo.EXPECT().GetPendingCartPayment(gomock.Any(), wallet.ID, cart.ID, domain.CurrencyChain).Return(nil, nil)
	d.expectTx()
	d.txRepo.EXPECT().Create(gomock.Any(), d.tx, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ pgx.Tx, txn *domain.Transaction) error {
			assert.Equal(t, domain.TransactionStatusPending, txn.Status)
			assert.Nil(t, txn.ExternalReference)
			return nil
		})

	res, err := svc.PayCart(context.Background(), ports.Payer{UserID: userID}, domain.PayMethodDirectChain)
	require.NoError(t, err)
	assert.Equal(t, testAddress, res.ChainAddress)
	assert.True(t, res.Amount.Equal(decimal.NewFromInt(30)))
}

func TestSettlementService_PayCart_DirectChain_ReusesIntent(t *testing.T) {
	d := newWorkflowDeps(t)
	svc := newSettlementService(d)

	userID := uuid.New()
	wallet := testWallet(userID)
	cart := testCart(userID, "30")
	existing := &domain.Transaction{ID: uuid.New(), Status: domain.TransactionStatusPending}

	d.cartRepo.EXPECT().GetPendingByUser(gomock.Any(), userID).Return(cart, nil)
	d.walletRepo.EXPECT().GetByUserID(gomock.Any(), userID).Return(wallet, nil)
	d.txRepo.EXPECT().GetPendingCartPayment(gomock.Any(), wallet.ID, cart.ID, domain.CurrencyChain).Return(existing, nil)

	res, err := svc.PayCart(context.Background(), ports.Payer{UserID: userID}, domain.PayMethodDirectChain)
	require.NoError(t, err)
	assert.Same(t, existing, res.Transaction)
}

func TestSettlementService_PayCart_DirectChain_NoAddress(t *testing.T) {
	d := newWorkflowDeps(t)
	svc := newSettlementService(d)

	userID := uuid.New()
	wallet := testWallet(userID)
	wallet.ChainAddress = nil

	d.cartRepo.EXPECT().GetPendingByUser(gomock.Any(), userID).Return(testCart(userID, "30"), nil)
	d.walletRepo.EXPECT().GetByUserID(gomock.Any(), userID).Return(wallet, nil)

	_, err := svc.PayCart(context.Background(), ports.Payer{UserID: userID}, domain.PayMethodDirectChain)
	assertAppError(t, err, "PAY_004")
}

// ==================== VerifyDirectFiat ====================

func pendingCartFiat(cart *domain.Cart) *domain.Transaction {
	ref := testAuthority
	cartID := cart.ID
	return &domain.Transaction{
		ID:                uuid.New(),
		WalletID:          uuid.New(),
		Kind:              domain.TransactionKindPayment,
		Currency:          domain.CurrencyFiat,
		Amount:            cart.Total,
		ExternalReference: &ref,
		CartID:            &cartID,
		Status:            domain.TransactionStatusPending,
		Description:       "Cart direct gateway payment",
	}
}

func TestSettlementService_VerifyDirectFiat_Settles(t *testing.T) {
	d := newWorkflowDeps(t)
	svc := newSettlementService(d)

	userID := uuid.New()
	cart := testCart(userID, "30000")
	pending := pendingCartFiat(cart)
	locked := *pending

	d.expectLock(domain.FiatSettlementKey(testAuthority))
	d.txRepo.EXPECT().GetPendingByReference(gomock.Any(), testAuthority).Return(pending, nil)
	d.gateway.EXPECT().Verify(gomock.Any(), testAuthority, decEq("30000")).Return(&ports.VerifyResult{Code: 100, RefID: "555"}, nil)
	d.expectTx()
	d.cartRepo.EXPECT().GetByIDForUpdate(gomock.Any(), d.tx, cart.ID).Return(cart, nil)
	d.txRepo.EXPECT().GetPendingByReferenceForUpdate(gomock.Any(), d.tx, testAuthority).Return(&locked, nil)
	d.txRepo.EXPECT().Complete(gomock.Any(), d.tx, &locked).DoAndReturn(
		func(_ context.Context, _ pgx.Tx, txn *domain.Transaction) error {
			require.NotNil(t, txn.GatewayRefID)
			assert.Equal(t, "555", *txn.GatewayRefID)
			assert.Contains(t, txn.Description, "ref_id: 555")
			txn.Status = domain.TransactionStatusCompleted
			return nil
		})
	d.expectCartCompletion(t, cart)
	d.notifier.EXPECT().TransactionCompleted(gomock.Any(), userID, &locked)

	res, err := svc.VerifyDirectFiat(context.Background(), "OK", testAuthority)
	require.NoError(t, err)
	assert.False(t, res.AlreadyVerified)
	assert.Equal(t, domain.TransactionStatusCompleted, res.Transaction.Status)
	assert.True(t, d.tx.committed)
}

func TestSettlementService_VerifyDirectFiat_AlreadyVerifiedNoMutation(t *testing.T) {
	d := newWorkflowDeps(t)
	svc := newSettlementService(d)

	cart := testCart(uuid.New(), "30000")
	pending := pendingCartFiat(cart)

	d.expectLock(domain.FiatSettlementKey(testAuthority))
	d.txRepo.EXPECT().GetPendingByReference(gomock.Any(), testAuthority).Return(pending, nil)
	d.gateway.EXPECT().Verify(gomock.Any(), testAuthority, gomock.Any()).
		Return(&ports.VerifyResult{Code: 101, RefID: "555", AlreadyVerified: true}, nil)
	// No Begin, no Create, no Complete: strict mocks fail on any of them.

	res, err := svc.VerifyDirectFiat(context.Background(), "OK", testAuthority)
	require.NoError(t, err)
	assert.True(t, res.AlreadyVerified)
	assert.Equal(t, "555", res.RefID)
}

func TestSettlementService_VerifyDirectFiat_CartAlreadySettled(t *testing.T) {
	d := newWorkflowDeps(t)
	svc := newSettlementService(d)

	cart := testCart(uuid.New(), "30000")
	pending := pendingCartFiat(cart)
	settled := *cart
	settled.Status = domain.CartStatusCompleted

	d.expectLock(domain.FiatSettlementKey(testAuthority))
	d.txRepo.EXPECT().GetPendingByReference(gomock.Any(), testAuthority).Return(pending, nil)
	d.gateway.EXPECT().Verify(gomock.Any(), testAuthority, gomock.Any()).Return(&ports.VerifyResult{Code: 100, RefID: "1"}, nil)
	d.expectTx()
	d.cartRepo.EXPECT().GetByIDForUpdate(gomock.Any(), d.tx, cart.ID).Return(&settled, nil)
	d.txRepo.EXPECT().MarkFailed(gomock.Any(), d.tx, pending.ID, "cart no longer pending, captured ref_id: 1").Return(nil)

	_, err := svc.VerifyDirectFiat(context.Background(), "OK", testAuthority)
	assertAppError(t, err, "PAY_011")
	assert.True(t, d.tx.committed, "failed row must be persisted")
}

func TestSettlementService_VerifyDirectFiat_CartGoneWithoutCapture(t *testing.T) {
	d := newWorkflowDeps(t)
	svc := newSettlementService(d)

	cart := testCart(uuid.New(), "30000")
	pending := pendingCartFiat(cart)

	d.expectLock(domain.FiatSettlementKey(testAuthority))
	d.txRepo.EXPECT().GetPendingByReference(gomock.Any(), testAuthority).Return(pending, nil)
	d.gateway.EXPECT().Verify(gomock.Any(), testAuthority, gomock.Any()).Return(&ports.VerifyResult{Code: 100, RefID: "1"}, nil)
	d.expectTx()
	d.cartRepo.EXPECT().GetByIDForUpdate(gomock.Any(), d.tx, cart.ID).Return(nil, nil)

	_, err := svc.VerifyDirectFiat(context.Background(), "OK", testAuthority)
	assertAppError(t, err, "PAY_004")
	assert.False(t, d.tx.committed)
}

func TestSettlementService_VerifyDirectFiat_DepositRowRejected(t *testing.T) {
	d := newWorkflowDeps(t)
	svc := newSettlementService(d)

	row := pendingFiatDeposit(uuid.New(), "1000")

	d.expectLock(domain.FiatSettlementKey(testAuthority))
	d.txRepo.EXPECT().GetPendingByReference(gomock.Any(), testAuthority).Return(row, nil)

	_, err := svc.VerifyDirectFiat(context.Background(), "OK", testAuthority)
	assertAppError(t, err, "PAY_003")
}

func TestSettlementService_VerifyDirectFiat_Rejected(t *testing.T) {
	d := newWorkflowDeps(t)
	svc := newSettlementService(d)

	cart := testCart(uuid.New(), "30000")
	pending := pendingCartFiat(cart)

	d.expectLock(domain.FiatSettlementKey(testAuthority))
	d.txRepo.EXPECT().GetPendingByReference(gomock.Any(), testAuthority).Return(pending, nil)
	d.gateway.EXPECT().Verify(gomock.Any(), testAuthority, gomock.Any()).Return(nil, &ports.GatewayError{Code: -54, Message: "Invalid authority"})
	d.expectTx()
	d.txRepo.EXPECT().MarkFailed(gomock.Any(), d.tx, pending.ID, gomock.Any()).Return(nil)

	_, err := svc.VerifyDirectFiat(context.Background(), "OK", testAuthority)
	assertAppError(t, err, "GW_001")
}

func TestSettlementService_VerifyDirectFiat_StatusNotOK(t *testing.T) {
	d := newWorkflowDeps(t)
	svc := newSettlementService(d)

	_, err := svc.VerifyDirectFiat(context.Background(), "NOK", testAuthority)
	assertAppError(t, err, "GW_002")
}

// ==================== VerifyDirectChain ====================

func TestSettlementService_VerifyDirectChain_Settles(t *testing.T) {
	d := newWorkflowDeps(t)
	svc := newSettlementService(d)

	userID := uuid.New()
	wallet := testWallet(userID)
	cart := testCart(userID, "30")
	cartID := cart.ID
	pending := &domain.Transaction{
		ID:       uuid.New(),
		WalletID: wallet.ID,
		Kind:     domain.TransactionKindPayment,
		Currency: domain.CurrencyChain,
		Amount:   cart.Total,
		CartID:   &cartID,
		Status:   domain.TransactionStatusPending,
	}

	d.txRepo.EXPECT().ExistsCompletedByReference(gomock.Any(), testHash, domain.CurrencyChain).Return(false, nil)
	d.walletRepo.EXPECT().GetByUserID(gomock.Any(), userID).Return(wallet, nil)
	d.cartRepo.EXPECT().GetPendingByUser(gomock.Any(), userID).Return(cart, nil)
	d.expectLock(domain.CartSettlementKey(cart.ID))
	d.chain.EXPECT().GetTransaction(gomock.Any(), testHash).Return(transferTx(testAddress, 30_500_000), nil)
	d.expectTx()
	d.cartRepo.EXPECT().GetByIDForUpdate(gomock.Any(), d.tx, cart.ID).Return(cart, nil)
	d.txRepo.EXPECT().GetPendingCartPaymentForUpdate(gomock.Any(), d.tx, wallet.ID, cart.ID, domain.CurrencyChain).Return(pending, nil)
	d.txRepo.EXPECT().Complete(gomock.Any(), d.tx, pending).DoAndReturn(
		func(_ context.Context, _ pgx.Tx, txn *domain.Transaction) error {
			assert.Equal(t, testHash, txn.Reference())
			txn.Status = domain.TransactionStatusCompleted
			return nil
		})
	d.expectCartCompletion(t, cart)
	d.notifier.EXPECT().TransactionCompleted(gomock.Any(), userID, pending)

	res, err := svc.VerifyDirectChain(context.Background(), userID, testHash)
	require.NoError(t, err)
	assert.Same(t, pending, res.Transaction)
	assert.Equal(t, domain.TransactionStatusCompleted, pending.Status)
}

func TestSettlementService_VerifyDirectChain_Underpaid(t *testing.T) {
	d := newWorkflowDeps(t)
	svc := newSettlementService(d)

	userID := uuid.New()
	cart := testCart(userID, "30")

	d.txRepo.EXPECT().ExistsCompletedByReference(gomock.Any(), testHash, domain.CurrencyChain).Return(false, nil)
	d.walletRepo.EXPECT().GetByUserID(gomock.Any(), userID).Return(testWallet(userID), nil)
	d.cartRepo.EXPECT().GetPendingByUser(gomock.Any(), userID).Return(cart, nil)
	d.expectLock(domain.CartSettlementKey(cart.ID))
	d.chain.EXPECT().GetTransaction(gomock.Any(), testHash).Return(transferTx(testAddress, 29_999_999), nil)

	_, err := svc.VerifyDirectChain(context.Background(), userID, testHash)
	assertAppError(t, err, "PAY_008")
}

func TestSettlementService_VerifyDirectChain_WrongDestination(t *testing.T) {
	d := newWorkflowDeps(t)
	svc := newSettlementService(d)

	userID := uuid.New()
	cart := testCart(userID, "30")

	d.txRepo.EXPECT().ExistsCompletedByReference(gomock.Any(), testHash, domain.CurrencyChain).Return(false, nil)
	d.walletRepo.EXPECT().GetByUserID(gomock.Any(), userID).Return(testWallet(userID), nil)
	d.cartRepo.EXPECT().GetPendingByUser(gomock.Any(), userID).Return(cart, nil)
	d.expectLock(domain.CartSettlementKey(cart.ID))
	d.chain.EXPECT().GetTransaction(gomock.Any(), testHash).Return(transferTx("TDvSsdrNM5eeXNL3czpa6AxLDHZA9nwe9K", 50_000_000), nil)

	_, err := svc.VerifyDirectChain(context.Background(), userID, testHash)
	assertAppError(t, err, "PAY_008")
}

func TestSettlementService_VerifyDirectChain_HashReused(t *testing.T) {
	d := newWorkflowDeps(t)
	svc := newSettlementService(d)

	d.txRepo.EXPECT().ExistsCompletedByReference(gomock.Any(), testHash, domain.CurrencyChain).Return(true, nil)

	_, err := svc.VerifyDirectChain(context.Background(), uuid.New(), testHash)
	assertAppError(t, err, "PAY_003")
}

func TestSettlementService_VerifyDirectChain_CaseFlippedHashReused(t *testing.T) {
	d := newWorkflowDeps(t)
	svc := newSettlementService(d)

	d.txRepo.EXPECT().ExistsCompletedByReference(gomock.Any(), testHash, domain.CurrencyChain).Return(true, nil)

	_, err := svc.VerifyDirectChain(context.Background(), uuid.New(), strings.ToUpper(testHash))
	assertAppError(t, err, "PAY_003")
}

func TestSettlementService_VerifyDirectChain_BadHash(t *testing.T) {
	d := newWorkflowDeps(t)
	svc := newSettlementService(d)

	_, err := svc.VerifyDirectChain(context.Background(), uuid.New(), testHash[:63])
	assertAppError(t, err, "VAL_001")
}

func TestSettlementService_VerifyDirectChain_NoIntent(t *testing.T) {
	d := newWorkflowDeps(t)
	svc := newSettlementService(d)

	userID := uuid.New()
	wallet := testWallet(userID)
	cart := testCart(userID, "30")

	d.txRepo.EXPECT().ExistsCompletedByReference(gomock.Any(), testHash, domain.CurrencyChain).Return(false, nil)
	d.walletRepo.EXPECT().GetByUserID(gomock.Any(), userID).Return(wallet, nil)
	d.cartRepo.EXPECT().GetPendingByUser(gomock.Any(), userID).Return(cart, nil)
	d.expectLock(domain.CartSettlementKey(cart.ID))
	d.chain.EXPECT().GetTransaction(gomock.Any(), testHash).Return(transferTx(testAddress, 30_000_000), nil)
	d.expectTx()
	d.cartRepo.EXPECT().GetByIDForUpdate(gomock.Any(), d.tx, cart.ID).Return(cart, nil)
	d.txRepo.EXPECT().GetPendingCartPaymentForUpdate(gomock.Any(), d.tx, wallet.ID, cart.ID, domain.CurrencyChain).Return(nil, nil)

	_, err := svc.VerifyDirectChain(context.Background(), userID, testHash)
	assertAppError(t, err, "PAY_003")
}
