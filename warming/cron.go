package warming

import (
	"context"
	"fmt"
	"sync"
	"time"

	"encore.dev/cron"
)

// Svc is the process-wide warming Service the fixed cron jobs below drive.
// A caller wires it with Init once a *gdcf.Gdcf is available; until then the
// jobs are no-ops. Adapted from the teacher's package-level svc variable
// (warming/cron.go), which carried the same nil-guard idiom.
var Svc *Service

// Init installs the process-wide Service the scheduled jobs drive.
func Init(svc *Service) {
	Svc = svc
}

// DailyWarmup predictively warms the day's likely-hot levels at 2 AM.
var _ = cron.NewJob("gdcf-daily-warmup", cron.JobConfig{
	Title:    "Daily Cache Warmup",
	Schedule: "0 2 * * *",
	Endpoint: DailyWarmup,
})

//encore:api private
func DailyWarmup(ctx context.Context) error {
	if Svc == nil {
		return nil
	}
	_, err := Svc.TriggerPredictive(ctx, 24*time.Hour, 200)
	return err
}

// HourlyRefresh keeps the last hour's hot levels fresh.
var _ = cron.NewJob("gdcf-hourly-refresh", cron.JobConfig{
	Title:    "Hourly Cache Refresh",
	Schedule: "0 * * * *",
	Endpoint: HourlyRefresh,
})

//encore:api private
func HourlyRefresh(ctx context.Context) error {
	if Svc == nil {
		return nil
	}
	_, err := Svc.TriggerPredictive(ctx, time.Hour, 50)
	return err
}

// PeakHoursWarmup warms more aggressively ahead of expected traffic peaks.
var _ = cron.NewJob("gdcf-peak-hours-warmup", cron.JobConfig{
	Title:    "Peak Hours Cache Warmup",
	Schedule: "0 7,11,17 * * *",
	Endpoint: PeakHoursWarmup,
})

//encore:api private
func PeakHoursWarmup(ctx context.Context) error {
	if Svc == nil {
		return nil
	}
	_, err := Svc.TriggerPredictive(ctx, 2*time.Hour, 100)
	return err
}

// Scheduler tracks caller-registered warming jobs beyond the three fixed
// cron schedules above, adapted from the teacher's Scheduler
// (warming/cron.go) with string key patterns replaced by explicit level id
// sets.
type Scheduler struct {
	service *Service

	mu   sync.RWMutex
	jobs map[string]*ScheduledJob
}

// ScheduledJob is a recurring warming job outside the fixed schedules.
type ScheduledJob struct {
	ID        string
	Name      string
	Schedule  string
	Strategy  string
	LevelIDs  []uint64
	Limit     int
	Priority  int
	Enabled   bool
	LastRun   *time.Time
	RunCount  int64
	FailCount int64
}

// NewScheduler creates a scheduler bound to service.
func NewScheduler(service *Service) *Scheduler {
	return &Scheduler{service: service, jobs: make(map[string]*ScheduledJob)}
}

// RegisterJob adds a custom scheduled warming job.
func (s *Scheduler) RegisterJob(job *ScheduledJob) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.jobs[job.ID]; exists {
		return fmt.Errorf("warming: job %q already registered", job.ID)
	}
	s.jobs[job.ID] = job
	return nil
}

// UnregisterJob removes a previously registered job.
func (s *Scheduler) UnregisterJob(jobID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.jobs[jobID]; !exists {
		return fmt.Errorf("warming: job %q not found", jobID)
	}
	delete(s.jobs, jobID)
	return nil
}

// ListJobs returns every registered job.
func (s *Scheduler) ListJobs() []*ScheduledJob {
	s.mu.RLock()
	defer s.mu.RUnlock()
	jobs := make([]*ScheduledJob, 0, len(s.jobs))
	for _, j := range s.jobs {
		jobs = append(jobs, j)
	}
	return jobs
}

// RunJob executes a single registered job immediately, as its schedule
// would. Encore's cron.NewJob only accepts endpoints known at compile time,
// so caller-registered jobs are driven by the caller's own ticker or test
// rather than a dynamically created cron.NewJob.
func (s *Scheduler) RunJob(ctx context.Context, jobID string) error {
	s.mu.Lock()
	job, ok := s.jobs[jobID]
	s.mu.Unlock()
	if !ok {
		return fmt.Errorf("warming: job %q not found", jobID)
	}
	if !job.Enabled {
		return nil
	}

	now := time.Now()
	job.LastRun = &now

	queued, err := s.service.WarmLevels(ctx, job.LevelIDs, job.Priority, job.Strategy)
	if err != nil {
		job.FailCount++
		return fmt.Errorf("warming: job %q failed: %w", jobID, err)
	}
	if queued > 0 {
		job.RunCount++
	}
	return nil
}
