package scheduler

import (
	"context"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/shoresign/shoresign/internal/logger"
)

// Job is a single refresh cycle.
type Job interface {
	Run(ctx context.Context) error
}

// Scheduler drives the refresh job on a fixed interval for hosts without a
// cron daemon. SingletonMode keeps runs from overlapping, preserving the
// one-run-at-a-time assumption the cache file depends on.
type Scheduler struct {
	scheduler *gocron.Scheduler
	job       Job
	interval  time.Duration
	timeout   time.Duration
}

// New creates a Scheduler running job every interval.
func New(job Job, interval, timeout time.Duration) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		job:       job,
		interval:  interval,
		timeout:   timeout,
	}
}

// Start schedules the periodic job, runs it once immediately, and starts
// the underlying scheduler.
func (s *Scheduler) Start() error {
	log := logger.WithComponent("scheduler")

	_, err := s.scheduler.Every(s.interval).StartImmediately().SingletonMode().Do(func() {
		log.Info("running refresh job")

		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()

		if err := s.job.Run(ctx); err != nil {
			log.WithError(err).Error("refresh job failed")
			return
		}
		log.Info("refresh job completed")
	})
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
