// Package scheduler runs the periodic jobs of the digest service: feed sync,
// daily digests and weekly digests, all driven by cron expressions from the
// configuration. The processors are also callable directly for manual runs
// triggered over the API.
package scheduler

import (
	"context"
	"fmt"

	"github.com/go-pkgz/lgr"
	"github.com/robfig/cron/v3"

	"github.com/dkhrunov/newsdigest/pkg/config"
	"github.com/dkhrunov/newsdigest/pkg/domain"
)

// Scheduler wires the ingest and digest processors to cron triggers
type Scheduler struct {
	ingest  *IngestProcessor
	digests *DigestProcessor
	cfg     config.ScheduleConfig
	cron    *cron.Cron
}

// NewScheduler creates a scheduler with the given processors and cron specs
func NewScheduler(ingest *IngestProcessor, digests *DigestProcessor, cfg config.ScheduleConfig) *Scheduler {
	return &Scheduler{ingest: ingest, digests: digests, cfg: cfg}
}

// Start registers the cron jobs and begins running them. Jobs stop when ctx
// is canceled or Stop is called.
func (s *Scheduler) Start(ctx context.Context) error {
	s.cron = cron.New()

	if _, err := s.cron.AddFunc(s.cfg.SyncSpec, func() {
		if err := s.ingest.Sync(ctx); err != nil {
			lgr.Printf("[ERROR] scheduled sync failed: %v", err)
		}
	}); err != nil {
		return fmt.Errorf("register sync job %q: %w", s.cfg.SyncSpec, err)
	}

	if _, err := s.cron.AddFunc(s.cfg.DailySpec, func() {
		if err := s.digests.Run(ctx, domain.DigestDaily); err != nil {
			lgr.Printf("[ERROR] scheduled daily digest failed: %v", err)
		}
	}); err != nil {
		return fmt.Errorf("register daily digest job %q: %w", s.cfg.DailySpec, err)
	}

	if _, err := s.cron.AddFunc(s.cfg.WeeklySpec, func() {
		if err := s.digests.Run(ctx, domain.DigestWeekly); err != nil {
			lgr.Printf("[ERROR] scheduled weekly digest failed: %v", err)
		}
	}); err != nil {
		return fmt.Errorf("register weekly digest job %q: %w", s.cfg.WeeklySpec, err)
	}

	s.cron.Start()
	lgr.Printf("[INFO] scheduler started, sync: %q, daily: %q, weekly: %q",
		s.cfg.SyncSpec, s.cfg.DailySpec, s.cfg.WeeklySpec)

	go func() {
		<-ctx.Done()
		s.Stop()
	}()
	return nil
}

// Stop halts the cron schedule and waits for running jobs to finish
func (s *Scheduler) Stop() {
	if s.cron == nil {
		return
	}
	<-s.cron.Stop().Done()
	lgr.Printf("[INFO] scheduler stopped")
}

// SyncNow runs a feed sync outside the schedule
func (s *Scheduler) SyncNow(ctx context.Context) error {
	return s.ingest.Sync(ctx)
}

// RunDigestNow runs a digest of the given type outside the schedule
func (s *Scheduler) RunDigestNow(ctx context.Context, dt domain.DigestType) error {
	return s.digests.Run(ctx, dt)
}
