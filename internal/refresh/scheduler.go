package refresh

import (
	"context"
	"fmt"
	"log"

	"github.com/robfig/cron/v3"
)

// Scheduler runs the daily refresh pass on a cron schedule.
type Scheduler struct {
	Cron      *cron.Cron
	Refresher *Refresher
	Ctx       context.Context
}

// NewScheduler creates a Scheduler bound to the given context.
func NewScheduler(ctx context.Context, r *Refresher) *Scheduler {
	return &Scheduler{
		Cron:      cron.New(cron.WithSeconds()),
		Refresher: r,
		Ctx:       ctx,
	}
}

// Register adds the daily refresh task.
func (s *Scheduler) Register(dailyCron string) error {
	if _, err := s.Cron.AddFunc(dailyCron, s.dailyRefresh); err != nil {
		return fmt.Errorf("register daily refresh: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] refresh scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] refresh scheduler stopped")
}

// RunNow executes the refresh pass immediately (manual trigger /
// RUN_ON_START).
func (s *Scheduler) RunNow(force bool) {
	summary := s.Refresher.RefreshAll(s.Ctx, force)
	log.Printf("[INFO] refresh pass: %d refreshed, %d skipped, %d errors",
		len(summary.Refreshed), len(summary.Skipped), len(summary.Errors))
	for _, e := range summary.Errors {
		log.Printf("[ERROR] refresh: %s", e)
	}
}

func (s *Scheduler) dailyRefresh() {
	log.Println("[INFO] running daily refresh task")
	s.RunNow(false)
}
