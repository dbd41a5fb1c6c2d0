package warming

import (
	"context"
	"testing"
)

func TestSelectiveStrategyPlanReturnsTopN(t *testing.T) {
	strategy := NewSelectiveStrategy()
	ctx := context.Background()

	ids := []uint64{10, 20, 30, 40, 50}
	tasks, err := strategy.Plan(ctx, PlanOptions{LevelIDs: ids, Limit: 3})
	if err != nil {
		t.Fatalf("Plan failed: %v", err)
	}
	if len(tasks) != 3 {
		t.Fatalf("expected 3 tasks, got %d", len(tasks))
	}
	for i := 1; i < len(tasks); i++ {
		if tasks[i].Priority > tasks[i-1].Priority {
			t.Error("priorities should decrease for less hot levels")
		}
	}
}

func TestPriorityStrategyPlanSortsDescending(t *testing.T) {
	strategy := NewPriorityStrategy()
	ctx := context.Background()

	ids := []uint64{1, 2, 3, 4, 5}
	tasks, err := strategy.Plan(ctx, PlanOptions{LevelIDs: ids, Limit: 3})
	if err != nil {
		t.Fatalf("Plan failed: %v", err)
	}
	if len(tasks) != 3 {
		t.Fatalf("expected 3 tasks, got %d", len(tasks))
	}
	for i := 1; i < len(tasks); i++ {
		if tasks[i].Priority > tasks[i-1].Priority {
			t.Error("tasks should be sorted by priority, highest first")
		}
	}
}

func TestPriorityStrategyPlanEmptyInput(t *testing.T) {
	strategy := NewPriorityStrategy()
	tasks, err := strategy.Plan(context.Background(), PlanOptions{})
	if err != nil {
		t.Fatalf("Plan failed: %v", err)
	}
	if len(tasks) != 0 {
		t.Fatalf("expected no tasks for empty input, got %d", len(tasks))
	}
}
