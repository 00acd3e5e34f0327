package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"

	"wallet-settlement/internal/core/ports/mocks"
	"wallet-settlement/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// mockTx implements pgx.Tx for testing.
type mockTx struct {
	pgx.Tx
	committed bool
	commitErr error
}

func (m *mockTx) Rollback(_ context.Context) error { return nil }
func (m *mockTx) Commit(_ context.Context) error {
	m.committed = true
	return m.commitErr
}

func newTestLogger() zerolog.Logger {
	return zerolog.New(io.Discard)
}

func assertAppError(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %T: %v", err, err)
	assert.Equal(t, code, appErr.Code)
}

// decEq matches a decimal.Decimal by value, ignoring exponent.
type decimalMatcher struct{ want decimal.Decimal }

func decEq(s string) gomock.Matcher {
	return decimalMatcher{want: decimal.RequireFromString(s)}
}

func (m decimalMatcher) Matches(x interface{}) bool {
	d, ok := x.(decimal.Decimal)
	return ok && d.Equal(m.want)
}

func (m decimalMatcher) String() string {
	return fmt.Sprintf("is decimal %s", m.want)
}

// workflowDeps bundles the mocks every workflow service is built from.
type workflowDeps struct {
	ctrl        *gomock.Controller
	walletRepo  *mocks.MockWalletRepository
	txRepo      *mocks.MockTransactionRepository
	cartRepo    *mocks.MockCartRepository
	invoiceRepo *mocks.MockInvoiceRepository
	gateway     *mocks.MockPaymentGateway
	chain       *mocks.MockChainClient
	notifier    *mocks.MockNotifier
	transactor  *mocks.MockDBTransactor
	locker      *mocks.MockSettlementLocker
	guard       *Guard
	tx          *mockTx
}

func newWorkflowDeps(t *testing.T) *workflowDeps {
	ctrl := gomock.NewController(t)
	d := &workflowDeps{
		ctrl:        ctrl,
		walletRepo:  mocks.NewMockWalletRepository(ctrl),
		txRepo:      mocks.NewMockTransactionRepository(ctrl),
		cartRepo:    mocks.NewMockCartRepository(ctrl),
		invoiceRepo: mocks.NewMockInvoiceRepository(ctrl),
		gateway:     mocks.NewMockPaymentGateway(ctrl),
		chain:       mocks.NewMockChainClient(ctrl),
		notifier:    mocks.NewMockNotifier(ctrl),
		transactor:  mocks.NewMockDBTransactor(ctrl),
		locker:      mocks.NewMockSettlementLocker(ctrl),
		tx:          &mockTx{},
	}
	d.guard = NewGuard(d.transactor, d.locker, testLockTTL, newTestLogger())
	return d
}

// expectLock expects one successful acquire/release of key.
func (d *workflowDeps) expectLock(key string) {
	d.locker.EXPECT().Acquire(gomock.Any(), key, testLockTTL).Return("tok", true, nil)
	d.locker.EXPECT().Release(gomock.Any(), key, "tok").Return(nil)
}

// expectTx expects one Begin returning d.tx.
func (d *workflowDeps) expectTx() {
	d.transactor.EXPECT().Begin(gomock.Any()).Return(d.tx, nil)
}
