package warming

import (
	"context"
	"testing"
	"time"
)

func TestDefaultPredictorPredictHotLevels(t *testing.T) {
	predictor := NewDefaultPredictor()

	for i := 0; i < 100; i++ {
		predictor.RecordAccess(1)
	}
	for i := 0; i < 50; i++ {
		predictor.RecordAccess(2)
	}
	for i := 0; i < 10; i++ {
		predictor.RecordAccess(3)
	}

	hot, err := predictor.PredictHotLevels(context.Background(), time.Hour, 2)
	if err != nil {
		t.Fatalf("PredictHotLevels failed: %v", err)
	}
	if len(hot) != 2 {
		t.Fatalf("expected 2 hot levels, got %d", len(hot))
	}
	if hot[0] != 1 {
		t.Errorf("expected level 1 first, got %d", hot[0])
	}
	if hot[1] != 2 {
		t.Errorf("expected level 2 second, got %d", hot[1])
	}
}

func TestDefaultPredictorRecencyBonus(t *testing.T) {
	predictor := NewDefaultPredictor()

	for i := 0; i < 50; i++ {
		predictor.RecordAccess(100)
	}
	for i := 0; i < 30; i++ {
		predictor.RecordAccess(200)
	}
	// Push level 100's last access past the 30-minute recency window, so
	// only level 200 earns a recency bonus.
	predictor.mu.Lock()
	predictor.accessLog[100].lastAccessed = time.Now().Add(-time.Hour)
	predictor.mu.Unlock()

	hot, err := predictor.PredictHotLevels(context.Background(), time.Hour, 2)
	if err != nil {
		t.Fatalf("PredictHotLevels failed: %v", err)
	}
	if len(hot) == 0 || hot[0] != 200 {
		t.Errorf("expected recently-accessed level 200 to rank first, got %v", hot)
	}
}

func TestDefaultPredictorCleanup(t *testing.T) {
	predictor := NewDefaultPredictor()
	predictor.RecordAccess(1)
	predictor.RecordAccess(2)

	removed := predictor.Cleanup(time.Nanosecond)
	if removed != 2 {
		t.Fatalf("expected 2 removed, got %d", removed)
	}

	hot, err := predictor.PredictHotLevels(context.Background(), time.Hour, 10)
	if err != nil {
		t.Fatalf("PredictHotLevels failed: %v", err)
	}
	if len(hot) != 0 {
		t.Errorf("expected no tracked levels after cleanup, got %v", hot)
	}
}

func TestDefaultPredictorNoAccessesYieldsEmpty(t *testing.T) {
	predictor := NewDefaultPredictor()
	hot, err := predictor.PredictHotLevels(context.Background(), time.Hour, 10)
	if err != nil {
		t.Fatalf("PredictHotLevels failed: %v", err)
	}
	if len(hot) != 0 {
		t.Fatalf("expected empty prediction, got %v", hot)
	}
}
