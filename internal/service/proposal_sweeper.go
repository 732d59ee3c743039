package service

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// ProposalSweeper is a background worker that periodically drops expired proposals
type ProposalSweeper struct {
	commands *CommandService
	logger   zerolog.Logger
	interval time.Duration
	stopCh   chan struct{}
	doneCh   chan struct{}
	mu       sync.Mutex
	running  bool
}

// NewProposalSweeper creates a new sweeper. A non-positive interval falls back to DefaultProposalTTL.
func NewProposalSweeper(commands *CommandService, logger zerolog.Logger, interval time.Duration) *ProposalSweeper {
	if interval <= 0 {
		interval = DefaultProposalTTL
	}

	return &ProposalSweeper{
		commands: commands,
		logger:   logger.With().Str("component", "proposal_sweeper").Logger(),
		interval: interval,
		doneCh:   closedChan(),
	}
}

// Start begins sweeping in the background. A stopped sweeper can be started again.
func (w *ProposalSweeper) Start(ctx context.Context) {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return
	}
	w.running = true
	w.stopCh = make(chan struct{})
	w.doneCh = make(chan struct{})
	stopCh, doneCh := w.stopCh, w.doneCh
	w.mu.Unlock()

	w.logger.Info().Dur("interval", w.interval).Msg("Starting proposal sweeper")

	go w.run(ctx, stopCh, doneCh)
}

// Stop gracefully stops the sweeper. Concurrent calls wait for the same shutdown.
func (w *ProposalSweeper) Stop() {
	w.mu.Lock()
	doneCh := w.doneCh
	stopping := w.running
	if stopping {
		w.running = false
		close(w.stopCh)
	}
	w.mu.Unlock()

	<-doneCh
	if stopping {
		w.logger.Info().Msg("Proposal sweeper stopped")
	}
}

func (w *ProposalSweeper) run(ctx context.Context, stopCh, doneCh chan struct{}) {
	defer close(doneCh)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.setStopped(stopCh)
			return
		case <-stopCh:
			return
		case <-ticker.C:
			w.Sweep()
		}
	}
}

// Sweep drops expired proposals once
func (w *ProposalSweeper) Sweep() int {
	removed := w.commands.SweepExpired()
	if removed > 0 {
		w.logger.Debug().
			Int("removed", removed).
			Int("pending", w.commands.Pending()).
			Msg("Swept expired proposals")
	}
	return removed
}

// IsRunning returns whether the sweeper is currently running
func (w *ProposalSweeper) IsRunning() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.running
}

// setStopped clears running only if no newer run has replaced stopCh
func (w *ProposalSweeper) setStopped(stopCh chan struct{}) {
	w.mu.Lock()
	if w.stopCh == stopCh {
		w.running = false
	}
	w.mu.Unlock()
}

func closedChan() chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}
