// Package scheduler runs the pipeline on a cron cadence for daemon mode.
// One process owns the schedule, which is what upholds the pipeline's
// single-runner requirement.
package scheduler

import (
	"errors"
	"log"

	"github.com/robfig/cron/v3"
)

// Scheduler triggers a job on a cron spec.
type Scheduler struct {
	c      *cron.Cron
	logger *log.Logger
}

// New schedules job on spec (standard 5-field cron). The job runs
// sequentially; cron's default behavior of skipping nothing is fine here
// because one generation finishes well inside a day.
func New(spec string, job func(), logger *log.Logger) (*Scheduler, error) {
	if job == nil {
		return nil, errors.New("job is required")
	}
	if logger == nil {
		logger = log.Default()
	}

	c := cron.New()
	if _, err := c.AddFunc(spec, job); err != nil {
		return nil, err
	}
	return &Scheduler{c: c, logger: logger}, nil
}

// Start begins the schedule in the background.
func (s *Scheduler) Start() {
	s.c.Start()
	s.logger.Printf("[scheduler] started")
}

// Stop halts the schedule, waiting for a running job is the caller's
// concern (cron.Stop does not interrupt a job in flight).
func (s *Scheduler) Stop() {
	s.c.Stop()
	s.logger.Printf("[scheduler] stopped")
}
