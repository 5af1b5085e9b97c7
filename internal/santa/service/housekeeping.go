package service

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/aussiebroadwan/santa/internal/santa/store"
)

// HousekeepingService periodically flushes the store and prunes old
// backups. The flush picks up any save that was dropped because another
// was in flight at the time.
type HousekeepingService struct {
	Store           store.Store
	Logger          *slog.Logger
	Interval        time.Duration
	BackupRetention int

	started  atomic.Bool
	stopOnce sync.Once
	stopCh   chan struct{}
	doneCh  chan struct{}
}

// NewHousekeepingService creates a housekeeping service. A non-positive
// interval defaults to one minute.
func NewHousekeepingService(st store.Store, logger *slog.Logger, interval time.Duration, retention int) *HousekeepingService {
	if interval <= 0 {
		interval = time.Minute
	}

	return &HousekeepingService{
		Store:           st,
		Logger:          logger,
		Interval:        interval,
		BackupRetention: retention,
		stopCh:          make(chan struct{}),
		doneCh:          make(chan struct{}),
	}
}

// Start runs the worker in the background until Stop is called.
func (s *HousekeepingService) Start() {
	if !s.started.CompareAndSwap(false, true) {
		return
	}
	go s.run()
	s.Logger.Info("housekeeping service started",
		"interval", s.Interval,
		"backup_retention", s.BackupRetention,
	)
}

// Stop signals the worker and waits for any in-progress pass to finish.
// Stopping a service that was never started, or was already stopped, does
// nothing. A stopped service cannot be started again.
func (s *HousekeepingService) Stop() {
	if !s.started.Load() {
		return
	}
	s.stopOnce.Do(func() {
		close(s.stopCh)
		<-s.doneCh
		s.Logger.Info("housekeeping service stopped")
	})
}

func (s *HousekeepingService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sweep()
		case <-s.stopCh:
			return
		}
	}
}

// sweep flushes then prunes. The two steps are independent; a failed
// flush does not skip pruning.
func (s *HousekeepingService) sweep() {
	ctx := context.Background()

	if err := s.Store.Save(ctx); err != nil {
		s.Logger.Error("periodic flush failed", "error", err)
	}

	removed, err := s.Store.PruneBackups(ctx, s.BackupRetention)
	if err != nil {
		s.Logger.Error("failed to prune backups", "error", err)
	}
	if removed > 0 {
		s.Logger.Debug("pruned backups", "removed", removed)
	}
}
