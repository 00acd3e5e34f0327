package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// NotificationEvent names a user-facing event.
type NotificationEvent string

const (
	NotificationTransactionCompleted NotificationEvent = "transaction.completed"
)

// NotificationPayload is the signed body posted to the notification relay.
type NotificationPayload struct {
	Event         NotificationEvent `json:"event"`
	UserID        uuid.UUID         `json:"user_id"`
	TransactionID uuid.UUID         `json:"transaction_id"`
	Kind          TransactionKind   `json:"kind"`
	Amount        decimal.Decimal   `json:"amount"`
	Currency      Currency          `json:"currency"`
	Reference     string            `json:"reference,omitempty"`
	Timestamp     time.Time         `json:"timestamp"`
}
