package warming

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"encore.dev/pubsub"
	"golang.org/x/sync/singleflight"

	"github.com/stadust/gdcf"
	"github.com/stadust/gdcf/request"
)

// Config tunes the warming service, adapted from the teacher's
// warming.Config (warming/service.go) — origin-RPS and batch-size fields
// were dropped; request pacing is left to the client.Client the facade was
// built with (client/ratelimit provides a rate-limited decorator).
type Config struct {
	ConcurrentWarmers  int
	OriginTimeout      time.Duration
	RetryAttempts      int
	BackoffBase        time.Duration
	EmergencyThreshold time.Duration
	DefaultStrategy    string
}

// DefaultConfig returns sane out-of-the-box tunables.
func DefaultConfig() Config {
	return Config{
		ConcurrentWarmers:  10,
		OriginTimeout:      5 * time.Second,
		RetryAttempts:      3,
		BackoffBase:        100 * time.Millisecond,
		EmergencyThreshold: 2 * time.Second,
		DefaultStrategy:    "priority",
	}
}

// Metrics tracks warming performance counters.
type Metrics struct {
	JobsTotal      atomic.Int64
	SuccessTotal   atomic.Int64
	FailureTotal   atomic.Int64
	OriginRequests atomic.Int64
	EmergencyStops atomic.Int64
	TotalDuration  atomic.Int64 // cumulative milliseconds
}

// Snapshot is a point-in-time read of Metrics plus worker/queue state.
type Snapshot struct {
	ActiveWorkers int
	QueuedTasks   int
	EmergencyStop bool
	JobsTotal     int64
	SuccessTotal  int64
	FailureTotal  int64
	SuccessRate   float64
}

// Service proactively refreshes gdcf's cache for a set of level ids, ahead
// of them going stale or being requested cold. Adapted from the teacher's
// warming.Service: a real encore.dev/pubsub topic for completion events, a
// real golang.org/x/sync/singleflight dedup group, and the same
// worker-pool-plus-strategy-plus-predictor shape, all retargeted at gdcf's
// *gdcf.Gdcf facade instead of a generic OriginFetcher/CacheClient pair.
type Service struct {
	g      *gdcf.Gdcf
	config Config

	strategies map[string]Strategy
	predictor  Predictor
	workerPool *WorkerPool
	metrics    *Metrics

	deduper       singleflight.Group
	emergencyStop atomic.Bool
	mu            sync.RWMutex
}

// NewService builds a warming Service in front of g.
func NewService(g *gdcf.Gdcf, cfg Config) *Service {
	s := &Service{
		g:      g,
		config: cfg,
		strategies: map[string]Strategy{
			"selective": NewSelectiveStrategy(),
			"priority":  NewPriorityStrategy(),
		},
		predictor: NewDefaultPredictor(),
		metrics:   &Metrics{},
	}
	s.workerPool = NewWorkerPool(s, cfg.ConcurrentWarmers)
	return s
}

// RecordAccess tells the predictor a level was just requested, so it can
// factor into future TriggerPredictive runs.
func (s *Service) RecordAccess(levelID uint64) {
	s.predictor.RecordAccess(levelID)
}

// WarmLevels force-refreshes levelIDs using the named strategy (or the
// configured default), returning how many tasks were actually queued.
func (s *Service) WarmLevels(ctx context.Context, levelIDs []uint64, priority int, strategyName string) (int, error) {
	if len(levelIDs) == 0 {
		return 0, errors.New("warming: levelIDs cannot be empty")
	}
	if s.emergencyStop.Load() {
		return 0, errors.New("warming: emergency stop active")
	}

	if strategyName == "" {
		strategyName = s.config.DefaultStrategy
	}
	strategy, ok := s.strategies[strategyName]
	if !ok {
		return 0, fmt.Errorf("warming: unknown strategy %q", strategyName)
	}

	tasks, err := strategy.Plan(ctx, PlanOptions{LevelIDs: levelIDs, Priority: priority})
	if err != nil {
		return 0, fmt.Errorf("warming: plan failed: %w", err)
	}

	queued := s.workerPool.QueueTasks(tasks)
	s.metrics.JobsTotal.Add(int64(queued))
	return queued, nil
}

// TriggerPredictive warms whatever the predictor currently considers hot,
// using the priority strategy (matching the teacher's choice for its
// predictive-warming entry points).
func (s *Service) TriggerPredictive(ctx context.Context, window time.Duration, limit int) (int, error) {
	if s.emergencyStop.Load() {
		return 0, errors.New("warming: emergency stop active")
	}

	hot, err := s.predictor.PredictHotLevels(ctx, window, limit)
	if err != nil {
		return 0, fmt.Errorf("warming: prediction failed: %w", err)
	}
	if len(hot) == 0 {
		return 0, nil
	}

	tasks, err := s.strategies["priority"].Plan(ctx, PlanOptions{LevelIDs: hot, Priority: 80})
	if err != nil {
		return 0, fmt.Errorf("warming: plan failed: %w", err)
	}

	queued := s.workerPool.QueueTasks(tasks)
	s.metrics.JobsTotal.Add(int64(queued))
	return queued, nil
}

// Status reports current worker and metric state.
func (s *Service) Status() Snapshot {
	jobs := s.metrics.JobsTotal.Load()
	success := s.metrics.SuccessTotal.Load()
	rate := 0.0
	if jobs > 0 {
		rate = float64(success) / float64(jobs)
	}
	return Snapshot{
		ActiveWorkers: s.workerPool.ActiveCount(),
		QueuedTasks:   s.workerPool.QueueSize(),
		EmergencyStop: s.emergencyStop.Load(),
		JobsTotal:     jobs,
		SuccessTotal:  success,
		FailureTotal:  s.metrics.FailureTotal.Load(),
		SuccessRate:   rate,
	}
}

// ExecuteWarmTask performs one task, deduplicating concurrent warming of
// the same level id via singleflight.
func (s *Service) ExecuteWarmTask(ctx context.Context, task WarmTask) error {
	if s.emergencyStop.Load() {
		return errors.New("warming: emergency stop active")
	}

	start := time.Now()
	key := fmt.Sprintf("%d", task.LevelID)
	_, err, _ := s.deduper.Do(key, func() (any, error) {
		return nil, s.executeWarmTaskInternal(ctx, task)
	})
	duration := time.Since(start)
	s.metrics.TotalDuration.Add(duration.Milliseconds())

	if err != nil {
		s.metrics.FailureTotal.Add(1)
		return err
	}
	s.metrics.SuccessTotal.Add(1)
	go s.publishWarmCompletion(task.LevelID, "success", duration, task.Strategy)
	return nil
}

func (s *Service) executeWarmTaskInternal(ctx context.Context, task WarmTask) error {
	fetchCtx, cancel := context.WithTimeout(ctx, s.config.OriginTimeout)
	defer cancel()

	start := time.Now()
	_, err := s.g.Level(fetchCtx, request.NewLevelRequest(task.LevelID).WithForceRefresh()).Wait(fetchCtx)
	s.metrics.OriginRequests.Add(1)
	if err != nil {
		return fmt.Errorf("warming: origin fetch failed: %w", err)
	}

	if time.Since(start) > s.config.EmergencyThreshold {
		s.emergencyStop.Store(true)
		s.metrics.EmergencyStops.Add(1)
		return errors.New("warming: emergency stop triggered by high origin latency")
	}
	return nil
}

func (s *Service) publishWarmCompletion(levelID uint64, status string, duration time.Duration, strategy string) {
	event := &WarmCompletedEvent{
		LevelID:    levelID,
		Status:     status,
		DurationMs: duration.Milliseconds(),
		Strategy:   strategy,
		Timestamp:  time.Now(),
	}
	_, _ = WarmCompletedTopic.Publish(context.Background(), event)
}

// WarmCompletedEvent reports the outcome of a single warming task.
type WarmCompletedEvent struct {
	LevelID    uint64    `json:"level_id"`
	Status     string    `json:"status"` // "success", "failure"
	DurationMs int64     `json:"duration_ms"`
	Strategy   string    `json:"strategy"`
	Timestamp  time.Time `json:"timestamp"`
}

// WarmCompletedTopic is published to once per executed WarmTask.
var WarmCompletedTopic = pubsub.NewTopic[*WarmCompletedEvent]("gdcf.cache.warm-completed", pubsub.TopicConfig{
	DeliveryGuarantee: pubsub.AtLeastOnce,
})

// Shutdown stops the worker pool, waiting for in-flight tasks to finish.
func (s *Service) Shutdown() {
	s.workerPool.Shutdown()
}
