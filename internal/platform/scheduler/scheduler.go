package scheduler

import (
	"context"
	"errors"
	"fmt"
	"pricesplash/internal/platform/metrics"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Job is one scheduled task. Errors returned by Run are logged and never
// propagate further; errors matching Expected are logged at info level.
type Job struct {
	Name     string
	Cron     string
	Run      func(ctx context.Context) error
	Expected []error
}

type Scheduler struct {
	jobs       []Job
	runOnStart bool
	// -----
	mu    sync.Mutex
	sched gocron.Scheduler
}

func (s *Scheduler) Start(ctx context.Context) error {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return err
	}

	for _, job := range s.jobs {
		opts := []gocron.JobOption{
			gocron.WithName(job.Name),
			gocron.WithSingletonMode(gocron.LimitModeReschedule),
		}
		if s.runOnStart {
			opts = append(opts, gocron.WithStartAt(gocron.WithStartImmediately()))
		}

		task := func(jobCtx context.Context) {
			s.execute(jobCtx, job)
		}
		if _, err = scheduler.NewJob(gocron.CronJob(job.Cron, false), gocron.NewTask(task), opts...); err != nil {
			_ = scheduler.Shutdown()
			return fmt.Errorf("failed to schedule job %q with cron %q: %w", job.Name, job.Cron, err)
		}
	}

	s.mu.Lock()
	s.sched = scheduler
	s.mu.Unlock()
	scheduler.Start()

	// Stop scheduler when the provided context is canceled.
	go func() {
		<-ctx.Done()
		if sdErr := s.Shutdown(); sdErr != nil {
			logrus.Errorf("Scheduler shutdown error: %v", sdErr)
		}
	}()
	return nil
}

func (s *Scheduler) running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sched != nil
}

// execute runs job once and swallows its error after logging it.
func (s *Scheduler) execute(ctx context.Context, job Job) {
	execID := uuid.NewString()
	log := logrus.WithFields(logrus.Fields{"job": job.Name, "exec_id": execID})
	start := time.Now()

	err := job.Run(ctx)
	duration := time.Since(start)

	switch {
	case err == nil:
		metrics.RecordJobRun(job.Name, metrics.ResultSuccess, duration)
		log.Debugf("Job finished in %s", duration)
	case isExpected(err, job.Expected):
		metrics.RecordJobRun(job.Name, metrics.ResultSkipped, duration)
		log.Infof("Job skipped: %v", err)
	default:
		metrics.RecordJobRun(job.Name, metrics.ResultFailure, duration)
		log.WithError(err).Error("Job failed")
	}
}

func isExpected(err error, expected []error) bool {
	for _, target := range expected {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func (s *Scheduler) Shutdown() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sched == nil {
		return nil
	}
	err := s.sched.Shutdown()
	s.sched = nil
	return err
}

func NewScheduler(runOnStart bool, jobs ...Job) *Scheduler {
	return &Scheduler{jobs: jobs, runOnStart: runOnStart}
}
