package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"wallet-settlement/internal/core/domain"
	"wallet-settlement/internal/core/ports"
	"wallet-settlement/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// Guard demarcates settlement atomic units. Row locks taken inside InTx
// serialize writers in the database; the optional Redis lock rejects a
// concurrent settlement of the same reference before it reaches the database.
type Guard struct {
	transactor ports.DBTransactor
	locker     ports.SettlementLocker
	lockTTL    time.Duration
	log        zerolog.Logger
}

// NewGuard creates a guard. locker may be nil, in which case only the
// database guards apply.
func NewGuard(transactor ports.DBTransactor, locker ports.SettlementLocker, lockTTL time.Duration, log zerolog.Logger) *Guard {
	return &Guard{
		transactor: transactor,
		locker:     locker,
		lockTTL:    lockTTL,
		log:        log,
	}
}

// Lock takes the settlement lock for key. The returned func releases it and
// must always be called. A held lock yields ErrSettlementInProgress; a Redis
// failure is logged and the call proceeds unlocked.
func (g *Guard) Lock(ctx context.Context, key string) (func(), error) {
	noop := func() {}
	if g.locker == nil {
		return noop, nil
	}

	token, ok, err := g.locker.Acquire(ctx, key, g.lockTTL)
	if err != nil {
		g.log.Warn().Err(err).Str("key", key).Msg("settlement lock unavailable, relying on database guards")
		return noop, nil
	}
	if !ok {
		return nil, apperror.ErrSettlementInProgress()
	}

	return func() {
		if err := g.locker.Release(context.WithoutCancel(ctx), key, token); err != nil {
			g.log.Warn().Err(err).Str("key", key).Msg("failed to release settlement lock")
		}
	}, nil
}

// InTx runs fn inside one database transaction and commits when fn
// succeeds. Any error rolls everything back; fn's error is returned as is.
func (g *Guard) InTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	dbTx, err := g.transactor.Begin(ctx)
	if err != nil {
		return apperror.ErrDatabaseError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if err := fn(dbTx); err != nil {
		return err
	}

	if err := dbTx.Commit(ctx); err != nil {
		return apperror.ErrDatabaseError(fmt.Errorf("commit tx: %w", err))
	}
	return nil
}

// ledgerError maps repository sentinels onto API errors. AppErrors pass
// through untouched.
func ledgerError(op string, err error) error {
	var appErr *apperror.AppError
	switch {
	case errors.As(err, &appErr):
		return appErr
	case errors.Is(err, domain.ErrInsufficientFunds):
		return apperror.ErrInsufficientFunds()
	case errors.Is(err, domain.ErrDuplicateReference):
		return apperror.ErrAlreadyProcessed()
	case errors.Is(err, domain.ErrTransactionNotPending):
		return apperror.ErrTransactionNotFoundOrProcessed()
	case errors.Is(err, domain.ErrCartNotPending):
		return apperror.ErrCartNotPending()
	case errors.Is(err, domain.ErrWalletExists):
		return apperror.ErrWalletExists()
	default:
		return apperror.ErrDatabaseError(fmt.Errorf("%s: %w", op, err))
	}
}

// upstreamError maps gateway and chain client failures onto API errors.
func upstreamError(err error) error {
	var gwErr *ports.GatewayError
	var netErr *ports.NetworkError
	switch {
	case errors.As(err, &gwErr):
		return apperror.ErrGateway(gwErr.Message, err)
	case errors.As(err, &netErr):
		return apperror.ErrNetwork(err)
	case errors.Is(err, ports.ErrChainTxNotFound):
		return apperror.ErrNotFound("Chain transaction")
	default:
		return apperror.ErrNetwork(err)
	}
}

// FailRejected settles the outcome of a failed gateway verify. A confirmed
// GatewayError moves pending to failed; anything else leaves it pending for
// manual reconciliation. The returned error is always the mapped verifyErr.
func (g *Guard) FailRejected(ctx context.Context, txRepo ports.TransactionRepository, pending *domain.Transaction, verifyErr error) error {
	var gwErr *ports.GatewayError
	if !errors.As(verifyErr, &gwErr) {
		g.log.Warn().Err(verifyErr).Str("tx_id", pending.ID.String()).Msg("gateway verify failed in transit, left pending")
		return upstreamError(verifyErr)
	}
	if pending.IsTerminal() {
		return upstreamError(verifyErr)
	}

	reason := fmt.Sprintf("gateway rejected: %d %s", gwErr.Code, gwErr.Message)
	err := g.InTx(ctx, func(tx pgx.Tx) error {
		return txRepo.MarkFailed(ctx, tx, pending.ID, reason)
	})
	if err != nil && !errors.Is(err, domain.ErrTransactionNotPending) {
		g.log.Error().Err(err).Str("tx_id", pending.ID.String()).Msg("failed to mark transaction failed")
	}

	g.log.Info().Str("tx_id", pending.ID.String()).Int("gateway_code", gwErr.Code).Msg("payment rejected by gateway")
	return upstreamError(verifyErr)
}
