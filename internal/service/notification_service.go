package service

import (
	"context"
	"encoding/json"
	"time"

	"wallet-settlement/config"
	"wallet-settlement/internal/core/domain"
	"wallet-settlement/internal/core/ports"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const signatureHeader = "X-Signature"

// notifyRetryIntervals is the fixed back-off between delivery attempts.
var notifyRetryIntervals = []time.Duration{
	5 * time.Second,
	30 * time.Second,
	2 * time.Minute,
}

// NotificationService implements ports.Notifier by posting signed events to
// the mail relay.
type NotificationService struct {
	url     string
	secret  string
	sigSvc  ports.SignatureService
	http    *resty.Client
	retries []time.Duration
	log     zerolog.Logger
}

// NewNotificationService creates a notifier. An empty cfg.URL disables delivery.
// Retries are driven by the notifier, not by resty.
func NewNotificationService(cfg config.NotifyConfig, sigSvc ports.SignatureService, log zerolog.Logger) *NotificationService {
	rc := resty.New().
		SetTimeout(cfg.Timeout).
		SetHeader("Content-Type", "application/json")

	return &NotificationService{
		url:     cfg.URL,
		secret:  cfg.Secret,
		sigSvc:  sigSvc,
		http:    rc,
		retries: notifyRetryIntervals,
		log:     log,
	}
}

// TransactionCompleted queues delivery of a transaction.completed event.
// It never blocks on the network and never fails the caller.
func (s *NotificationService) TransactionCompleted(ctx context.Context, userID uuid.UUID, txn *domain.Transaction) {
	if s.url == "" {
		s.log.Debug().Str("tx_id", txn.ID.String()).Msg("notify: no relay URL configured, skipping")
		return
	}

	payload := domain.NotificationPayload{
		Event:         domain.NotificationTransactionCompleted,
		UserID:        userID,
		TransactionID: txn.ID,
		Kind:          txn.Kind,
		Amount:        txn.Amount,
		Currency:      txn.Currency,
		Reference:     txn.Reference(),
		Timestamp:     time.Now().UTC(),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		s.log.Error().Err(err).Str("tx_id", txn.ID.String()).Msg("notify: failed to marshal payload")
		return
	}
	signature := s.sigSvc.Sign(s.secret, string(body))

	go s.deliverWithRetries(context.WithoutCancel(ctx), body, signature, txn.ID.String())
}

func (s *NotificationService) deliverWithRetries(ctx context.Context, body []byte, signature, txID string) {
	for attempt := 0; attempt <= len(s.retries); attempt++ {
		if attempt > 0 {
			time.Sleep(s.retries[attempt-1])
		}

		resp, err := s.http.R().
			SetContext(ctx).
			SetHeader(signatureHeader, signature).
			SetBody(body).
			Post(s.url)
		if err != nil {
			s.log.Warn().Err(err).Str("tx_id", txID).Int("attempt", attempt+1).Msg("notify: delivery failed")
			continue
		}

		if resp.IsSuccess() {
			s.log.Info().Str("tx_id", txID).Int("attempt", attempt+1).Msg("notify: delivered")
			return
		}

		s.log.Warn().Str("tx_id", txID).Int("attempt", attempt+1).Int("status", resp.StatusCode()).Msg("notify: non-2xx response, retrying")
	}

	s.log.Error().Str("tx_id", txID).Msg("notify: all retry attempts exhausted")
}
