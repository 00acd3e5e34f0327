package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"wallet-settlement/internal/core/domain"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvoiceRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	inv := &domain.Invoice{
		ID:        uuid.New(),
		CartID:    uuid.New(),
		Amount:    decimal.NewFromInt(30000),
		CreatedAt: time.Now().UTC(),
	}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO invoices .+ ON CONFLICT \\(cart_id\\) DO NOTHING").
		WithArgs(inv.ID, inv.CartID, "30000", inv.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	assert.NoError(t, NewInvoiceRepo().Create(context.Background(), tx, inv))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInvoiceRepo_Create_Error(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO invoices").
		WillReturnError(errors.New("conn reset"))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = NewInvoiceRepo().Create(context.Background(), tx, &domain.Invoice{ID: uuid.New(), CartID: uuid.New()})
	assert.ErrorContains(t, err, "insert invoice")
}

func TestAuditRepo_Create_CartPayment(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	userID := uuid.New()
	entry := &domain.AuditLog{
		ID:           uuid.New(),
		UserID:       &userID,
		Action:       domain.AuditActionCartPayment,
		ResourceType: "cart",
		ResourceID:   uuid.NewString(),
		IPAddress:    "10.0.0.1",
		CreatedAt:    time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO audit_logs").
		WithArgs(entry.ID, entry.UserID, "CART_PAYMENT", "cart",
			entry.ResourceID, "", "10.0.0.1", entry.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	assert.NoError(t, NewAuditRepo(mock).Create(context.Background(), entry))
	assert.NoError(t, mock.ExpectationsWereMet())
}
