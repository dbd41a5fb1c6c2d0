// Package warming proactively refreshes cache entries before they go stale,
// so a real request never has to pay for a cold fetch. Adapted from the
// teacher's warming package (warming/service.go, strategies.go,
// predictor.go, worker_pool.go, cron.go), retargeted from arbitrary
// colon-namespaced string keys onto gdcf's uint64 level ids — there is no
// key hierarchy in this domain, so the teacher's BreadthFirstStrategy (which
// orders warming by colon-segment depth) has no equivalent here and was
// dropped rather than adapted; see DESIGN.md.
package warming

import (
	"context"
	"sort"
	"time"
)

// Strategy decides which levels to warm and in what order, given a
// candidate set and a budget.
type Strategy interface {
	Name() string
	Plan(ctx context.Context, opts PlanOptions) ([]WarmTask, error)
}

// PlanOptions narrows a Strategy's candidate pool.
type PlanOptions struct {
	LevelIDs []uint64
	Priority int
	Limit    int
}

// WarmTask is a single scheduled refresh.
type WarmTask struct {
	LevelID  uint64
	Priority int
	TTL      time.Duration
	Strategy string
}

// SelectiveStrategy warms only the hottest levels, assuming LevelIDs is
// already ordered most-hot-first. Adapted from SelectiveHotKeysStrategy.
type SelectiveStrategy struct{}

func NewSelectiveStrategy() Strategy { return SelectiveStrategy{} }

func (SelectiveStrategy) Name() string { return "selective" }

func (SelectiveStrategy) Plan(ctx context.Context, opts PlanOptions) ([]WarmTask, error) {
	limit := opts.Limit
	if limit <= 0 || limit > len(opts.LevelIDs) {
		limit = len(opts.LevelIDs)
	}
	if limit > 1000 {
		limit = 1000
	}

	tasks := make([]WarmTask, 0, limit)
	for i := 0; i < limit; i++ {
		priority := opts.Priority
		if priority == 0 && limit > 0 {
			priority = 100 - (i * 100 / limit)
		}
		tasks = append(tasks, WarmTask{LevelID: opts.LevelIDs[i], Priority: priority, TTL: time.Hour, Strategy: "selective"})
	}
	return tasks, nil
}

// PriorityStrategy scores every candidate by its rank in the supplied list
// (assumed hottest-first) and plans highest-score-first; since the score
// falls with rank, the plan keeps the supplied order. Adapted from
// PriorityBasedStrategy, with the original's string-length/path-depth cost
// heuristic dropped — a level id carries no such signal.
type PriorityStrategy struct{}

func NewPriorityStrategy() Strategy { return PriorityStrategy{} }

func (PriorityStrategy) Name() string { return "priority" }

func (PriorityStrategy) Plan(ctx context.Context, opts PlanOptions) ([]WarmTask, error) {
	n := len(opts.LevelIDs)
	if n == 0 {
		return nil, nil
	}

	tasks := make([]WarmTask, 0, n)
	for i, id := range opts.LevelIDs {
		importance := float64(n-i) / float64(n)
		hotness := 1.0
		if i < n/10 {
			hotness = 2.0
		}
		score := importance * hotness * 100
		priority := int(score)
		if priority > 100 {
			priority = 100
		}
		tasks = append(tasks, WarmTask{LevelID: id, Priority: priority, TTL: time.Hour, Strategy: "priority"})
	}

	sort.SliceStable(tasks, func(i, j int) bool { return tasks[i].Priority > tasks[j].Priority })

	if opts.Limit > 0 && opts.Limit < len(tasks) {
		tasks = tasks[:opts.Limit]
	}
	return tasks, nil
}
