// Package events declares gdcf's cache-lifecycle pubsub events —
// invalidation and refresh completion — following the
// teacher's event-schema shape (pkg/pubsub/events.go,topics.go): a Version
// field, a Validate method, and JSON (de)serialization helpers, published
// over real encore.dev/pubsub topics rather than the teacher's internal-only
// event structs.
package events

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"encore.dev/pubsub"
)

const EventVersion1 = 1

// CacheInvalidatedEvent is published by Gdcf.Invalidate when it drops one
// or more natural-id cache entries. MarkAbsent writes do not publish it.
type CacheInvalidatedEvent struct {
	Version     int               `json:"version"`
	Keys        []uint64          `json:"keys,omitempty"`
	TriggeredAt time.Time         `json:"triggered_at"`
	Meta        map[string]string `json:"meta,omitempty"`
	RequestID   string            `json:"request_id"`
}

func (e *CacheInvalidatedEvent) Validate() error {
	if e.Version != EventVersion1 {
		return fmt.Errorf("unsupported event version: %d", e.Version)
	}
	if len(e.Keys) == 0 {
		return errors.New("keys cannot be empty")
	}
	if e.TriggeredAt.IsZero() {
		return errors.New("triggered_at cannot be zero")
	}
	if e.RequestID == "" {
		return errors.New("request_id is required for tracing")
	}
	return nil
}

func (e *CacheInvalidatedEvent) ToJSON() ([]byte, error) { return json.Marshal(e) }

func CacheInvalidatedEventFromJSON(data []byte) (*CacheInvalidatedEvent, error) {
	var e CacheInvalidatedEvent
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, fmt.Errorf("failed to unmarshal CacheInvalidatedEvent: %w", err)
	}
	return &e, nil
}

// KeyRefreshedEvent describes how a request's refresh resolved,
// successfully or not. No gdcf package publishes it.
type KeyRefreshedEvent struct {
	Version     int               `json:"version"`
	Fingerprint uint64            `json:"fingerprint"`
	Status      string            `json:"status"` // "cached", "marked-absent", "failed"
	Duration    time.Duration     `json:"duration"`
	CompletedAt time.Time         `json:"completed_at"`
	Meta        map[string]string `json:"meta,omitempty"`
	RequestID   string            `json:"request_id"`
}

func (e *KeyRefreshedEvent) Validate() error {
	if e.Version != EventVersion1 {
		return fmt.Errorf("unsupported event version: %d", e.Version)
	}
	valid := map[string]bool{"cached": true, "marked-absent": true, "failed": true}
	if !valid[e.Status] {
		return fmt.Errorf("invalid status: %s", e.Status)
	}
	if e.CompletedAt.IsZero() {
		return errors.New("completed_at cannot be zero")
	}
	if e.RequestID == "" {
		return errors.New("request_id is required for tracing")
	}
	return nil
}

func (e *KeyRefreshedEvent) ToJSON() ([]byte, error) { return json.Marshal(e) }

func KeyRefreshedEventFromJSON(data []byte) (*KeyRefreshedEvent, error) {
	var e KeyRefreshedEvent
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, fmt.Errorf("failed to unmarshal KeyRefreshedEvent: %w", err)
	}
	return &e, nil
}

// Topic name constants, matching the teacher's dotted topic-naming scheme.
const (
	TopicCacheInvalidated = "gdcf.cache.invalidated"
	TopicKeyRefreshed     = "gdcf.cache.key-refreshed"
)

// CacheInvalidatedTopic is the pubsub topic gdcf publishes
// CacheInvalidatedEvent to.
var CacheInvalidatedTopic = pubsub.NewTopic[*CacheInvalidatedEvent](TopicCacheInvalidated, pubsub.TopicConfig{
	DeliveryGuarantee: pubsub.AtLeastOnce,
})

// KeyRefreshedTopic is the pubsub topic for KeyRefreshedEvent; gdcf itself
// does not publish to it.
var KeyRefreshedTopic = pubsub.NewTopic[*KeyRefreshedEvent](TopicKeyRefreshed, pubsub.TopicConfig{
	DeliveryGuarantee: pubsub.AtLeastOnce,
})
