package service

import (
	"context"
	"fmt"
	"time"

	"wallet-settlement/config"
	"wallet-settlement/internal/core/domain"
	"wallet-settlement/internal/core/ports"

	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog"
)

// Sweeper periodically fails direct chain payment intents nobody completed.
// Fiat rows are never swept: a stale fiat row may still be captured at the
// gateway and needs manual reconciliation.
type Sweeper struct {
	txRepo    ports.TransactionRepository
	scheduler gocron.Scheduler
	interval  time.Duration
	ttl       time.Duration
	now       func() time.Time
	log       zerolog.Logger
}

// NewSweeper creates a sweeper. Call Start to schedule it.
func NewSweeper(txRepo ports.TransactionRepository, cfg config.SweeperConfig, log zerolog.Logger) (*Sweeper, error) {
	sched, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("create scheduler: %w", err)
	}
	return &Sweeper{
		txRepo:    txRepo,
		scheduler: sched,
		interval:  cfg.Interval,
		ttl:       cfg.PendingTTL,
		now:       time.Now,
		log:       log,
	}, nil
}

// Start registers the sweep job and starts the scheduler.
func (s *Sweeper) Start() error {
	_, err := s.scheduler.NewJob(
		gocron.DurationJob(s.interval),
		gocron.NewTask(func() {
			if _, err := s.Sweep(context.Background()); err != nil {
				s.log.Error().Err(err).Msg("pending sweep failed")
			}
		}),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return fmt.Errorf("schedule sweep: %w", err)
	}
	s.scheduler.Start()

	s.log.Info().
		Dur("interval", s.interval).
		Dur("pending_ttl", s.ttl).
		Msg("pending sweeper started")
	return nil
}

// Sweep runs one pass and returns how many rows were failed.
func (s *Sweeper) Sweep(ctx context.Context) (int64, error) {
	cutoff := s.now().Add(-s.ttl)
	n, err := s.txRepo.FailStalePending(ctx, domain.CurrencyChain, domain.TransactionKindPayment, cutoff)
	if err != nil {
		return 0, fmt.Errorf("fail stale chain payments: %w", err)
	}
	if n > 0 {
		s.log.Info().Int64("count", n).Time("cutoff", cutoff).Msg("stale chain payments failed")
	}
	return n, nil
}

// Shutdown stops the scheduler and waits for a running sweep.
func (s *Sweeper) Shutdown() error {
	return s.scheduler.Shutdown()
}
