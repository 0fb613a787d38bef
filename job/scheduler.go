package job

import (
	"context"
	"sync"
	"time"

	"dive-media/utils/logger"
)

// Job defines a periodic background job.
type Job struct {
	Name     string
	Interval time.Duration
	Timeout  time.Duration
	Fn       func(ctx context.Context) error
}

// JobScheduler runs periodic jobs until its context is cancelled.
type JobScheduler struct {
	jobs []Job
	wg   sync.WaitGroup
	log  *logger.ContextLogger
}

func NewJobScheduler() *JobScheduler {
	return &JobScheduler{log: logger.NewContextLogger(logger.Logger)}
}

// Add registers a job to be run when Start is called.
func (s *JobScheduler) Add(j Job) {
	s.jobs = append(s.jobs, j)
}

// Start launches every registered job. Each runs immediately, then on its
// interval, and stops when ctx is cancelled.
func (s *JobScheduler) Start(ctx context.Context) {
	for _, j := range s.jobs {
		s.wg.Add(1)
		go s.runJob(ctx, j)
	}
}

func (s *JobScheduler) runJob(ctx context.Context, j Job) {
	defer s.wg.Done()

	s.executeJob(ctx, j)

	ticker := time.NewTicker(j.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.SafeInfoContext(ctx, "job stopping", "job", j.Name)
			return
		case <-ticker.C:
			s.executeJob(ctx, j)
		}
	}
}

func (s *JobScheduler) executeJob(ctx context.Context, j Job) {
	if ctx.Err() != nil {
		return
	}

	jobCtx, cancel := context.WithTimeout(context.WithValue(ctx, logger.OperationKey, j.Name), j.Timeout)
	defer cancel()

	start := time.Now()
	if err := j.Fn(jobCtx); err != nil {
		s.log.LogError(jobCtx, j.Name, err)
		return
	}
	s.log.LogDuration(jobCtx, j.Name, time.Since(start))
}

// Shutdown blocks until all running jobs complete.
func (s *JobScheduler) Shutdown() {
	s.wg.Wait()
}
