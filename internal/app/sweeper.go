package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

const sweepTimeout = 30 * time.Second

type codeCleaner interface {
	CleanupExpiredCodes(ctx context.Context) (int64, error)
}

// OTPSweeper periodically deletes expired login codes. Verification already
// refuses expired codes, so the sweep only keeps the table small.
type OTPSweeper struct {
	cron    *cron.Cron
	cleaner codeCleaner
	log     *slog.Logger
}

// NewOTPSweeper schedules the sweep using a cron expression such as "@every 1m".
func NewOTPSweeper(cleaner codeCleaner, schedule string, logger *slog.Logger) (*OTPSweeper, error) {
	s := &OTPSweeper{
		cron:    cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		cleaner: cleaner,
		log:     logger.With("job", "otp_sweeper"),
	}
	if _, err := s.cron.AddFunc(schedule, s.Sweep); err != nil {
		return nil, fmt.Errorf("otp sweeper: schedule %q: %w", schedule, err)
	}
	return s, nil
}

// Start runs the schedule in the background.
func (s *OTPSweeper) Start() {
	s.cron.Start()
	s.log.Info("otp sweeper started")
}

// Stop halts the schedule and waits for a running sweep to finish.
func (s *OTPSweeper) Stop() {
	<-s.cron.Stop().Done()
}

// Sweep runs one cleanup pass.
func (s *OTPSweeper) Sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
	defer cancel()

	if _, err := s.cleaner.CleanupExpiredCodes(ctx); err != nil {
		s.log.Error("sweep expired codes", slog.String("error", err.Error()))
	}
}
