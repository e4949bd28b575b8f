package scheduler

import (
	"context"
	"sync"
	"time"

	"polyglot/internal/service"
	"polyglot/pkg/logger"
)

type Scheduler struct {
	syncService service.SyncService
	interval    time.Duration
	stopCh      chan struct{}
	wg          sync.WaitGroup
	cancelFunc  context.CancelFunc // cancels the current sync operation
	mu          sync.Mutex         // protects cancelFunc
}

func New(syncService service.SyncService, interval time.Duration) *Scheduler {
	return &Scheduler{
		syncService: syncService,
		interval:    interval,
		stopCh:      make(chan struct{}),
	}
}

func (s *Scheduler) Start() {
	s.wg.Add(1)
	go s.run()
	logger.Info("scheduler started", "interval", s.interval)
}

func (s *Scheduler) Stop() {
	// Cancel any ongoing sync operation first
	s.mu.Lock()
	if s.cancelFunc != nil {
		s.cancelFunc()
	}
	s.mu.Unlock()

	close(s.stopCh)
	s.wg.Wait()
	logger.Info("scheduler stopped")
}

func (s *Scheduler) run() {
	defer s.wg.Done()

	// Run immediately on start
	s.sync()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sync()
		case <-s.stopCh:
			return
		}
	}
}

func (s *Scheduler) sync() {
	// Use the same timeout as the sync interval
	ctx, cancel := context.WithTimeout(context.Background(), s.interval)

	// Store cancel function so Stop() can cancel ongoing sync
	s.mu.Lock()
	s.cancelFunc = cancel
	s.mu.Unlock()

	defer func() {
		cancel()
		s.mu.Lock()
		s.cancelFunc = nil
		s.mu.Unlock()
	}()

	report, err := s.syncService.Sync(ctx, service.SyncOptions{})
	if err != nil {
		if ctx.Err() != nil {
			logger.Info("scheduled sync cancelled")
			return
		}
		logger.Error("scheduled sync", "error", err)
		return
	}
	if report.Obsolete > 0 {
		logger.Info("scheduled sync reconciled store",
			"run", report.RunID,
			"obsolete", report.Obsolete,
			"deleted", report.Deleted,
			"flagged", report.Flagged,
		)
	}
}
