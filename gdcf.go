// Package gdcf is the public facade: a cache in front of the Geometry Dash
// API client, exposing one method per request kind plus the upgrade
// pipeline that resolves referenced ids into full objects. Grounded on the
// teacher's Service struct shape (cache-manager/service.go): holds its
// collaborators plus a Config, exposes one method per operation.
package gdcf

import (
	"context"
	"fmt"
	"time"

	"github.com/stadust/gdcf/cache"
	"github.com/stadust/gdcf/client"
	"github.com/stadust/gdcf/events"
	"github.com/stadust/gdcf/future"
	"github.com/stadust/gdcf/internal/config"
	"github.com/stadust/gdcf/internal/obslog"
	"github.com/stadust/gdcf/model"
	"github.com/stadust/gdcf/request"
	"github.com/stadust/gdcf/response"
	"github.com/stadust/gdcf/upgrade"
)

// Gdcf is the cache-plus-client facade. Construct with New.
type Gdcf struct {
	cache  cache.Cache
	client client.Client
	cfg    config.Config
	log    *obslog.Logger
}

// New builds a Gdcf from a cache backend, an API client, and a Config (use
// config.DefaultConfig or config.FromEnv for sensible defaults).
func New(c cache.Cache, cl client.Client, cfg config.Config) *Gdcf {
	return &Gdcf{cache: c, client: cl, cfg: cfg, log: obslog.New("gdcf")}
}

// Level resolves a single level's full data by id.
func (g *Gdcf) Level(ctx context.Context, req request.LevelRequest) *future.ProcessRequestFuture[model.RawLevel] {
	return future.Process[model.RawLevel](ctx, g.cache, func(ctx context.Context) (response.Response[model.RawLevel], error) {
		return g.client.Level(ctx, req)
	}, req.Fingerprint(), g.cfg.LevelTTL, req.Forced())
}

// Levels resolves a page of level search results.
func (g *Gdcf) Levels(ctx context.Context, req request.LevelsRequest) *future.ProcessRequestFuture[[]model.RawPartialLevel] {
	return future.Process[[]model.RawPartialLevel](ctx, g.cache, func(ctx context.Context) (response.Response[[]model.RawPartialLevel], error) {
		return g.client.Levels(ctx, req)
	}, req.Fingerprint(), g.cfg.LevelsTTL, req.Forced())
}

// User resolves a full user profile by account id.
func (g *Gdcf) User(ctx context.Context, req request.UserRequest) *future.ProcessRequestFuture[model.User] {
	return future.Process[model.User](ctx, g.cache, func(ctx context.Context) (response.Response[model.User], error) {
		return g.client.User(ctx, req)
	}, req.Fingerprint(), g.cfg.UserTTL, req.Forced())
}

// LevelComments resolves a page of a level's comments.
func (g *Gdcf) LevelComments(ctx context.Context, req request.LevelCommentsRequest) *future.ProcessRequestFuture[[]model.LevelComment] {
	return future.Process[[]model.LevelComment](ctx, g.cache, func(ctx context.Context) (response.Response[[]model.LevelComment], error) {
		return g.client.LevelComments(ctx, req)
	}, req.Fingerprint(), g.cfg.CommentsTTL, req.Forced())
}

// ProfileComments resolves a page of a user's profile comments.
func (g *Gdcf) ProfileComments(ctx context.Context, req request.ProfileCommentsRequest) *future.ProcessRequestFuture[[]model.ProfileComment] {
	return future.Process[[]model.ProfileComment](ctx, g.cache, func(ctx context.Context) (response.Response[[]model.ProfileComment], error) {
		return g.client.ProfileComments(ctx, req)
	}, req.Fingerprint(), g.cfg.CommentsTTL, req.Forced())
}

// LevelsStream iterates every page of a LevelsRequest.
func (g *Gdcf) LevelsStream(ctx context.Context, req request.LevelsRequest) *future.GdcfStream[[]model.RawPartialLevel] {
	return future.NewStream[[]model.RawPartialLevel](g.cache, req, g.cfg.LevelsTTL, func(ctx context.Context, r request.Request) (*future.ProcessRequestFuture[[]model.RawPartialLevel], error) {
		lr, ok := r.(request.LevelsRequest)
		if !ok {
			return nil, fmt.Errorf("gdcf: stream request type mismatch: %T", r)
		}
		return g.Levels(ctx, lr), nil
	})
}

// LevelCommentsStream iterates every page of a level's comments.
func (g *Gdcf) LevelCommentsStream(ctx context.Context, req request.LevelCommentsRequest) *future.GdcfStream[[]model.LevelComment] {
	return future.NewStream[[]model.LevelComment](g.cache, req, g.cfg.CommentsTTL, func(ctx context.Context, r request.Request) (*future.ProcessRequestFuture[[]model.LevelComment], error) {
		lr, ok := r.(request.LevelCommentsRequest)
		if !ok {
			return nil, fmt.Errorf("gdcf: stream request type mismatch: %T", r)
		}
		return g.LevelComments(ctx, lr), nil
	})
}

// ProcessAny implements upgrade.Processor, dispatching an arbitrary
// request.Request to the matching typed Process call and waiting for its
// result. This is the single place gdcf needs a type switch over request
// kinds to erase their differing result types for the upgrade pipeline.
func (g *Gdcf) ProcessAny(ctx context.Context, req request.Request) (cache.Entry, error) {
	switch r := req.(type) {
	case request.LevelRequest:
		return g.Level(ctx, r).Wait(ctx)
	case request.LevelsRequest:
		return g.Levels(ctx, r).Wait(ctx)
	case request.UserRequest:
		return g.User(ctx, r).Wait(ctx)
	case request.LevelCommentsRequest:
		return g.LevelComments(ctx, r).Wait(ctx)
	case request.ProfileCommentsRequest:
		return g.ProfileComments(ctx, r).Wait(ctx)
	default:
		return cache.Entry{}, fmt.Errorf("gdcf: unknown request type %T", req)
	}
}

// Invalidate drops one or more natural-id cache entries and publishes a
// CacheInvalidatedEvent, mirroring the teacher's invalidation flow
// (cache-manager/subscriptions.go's PublishInvalidation).
func (g *Gdcf) Invalidate(ctx context.Context, ids ...uint64) error {
	for _, id := range ids {
		if err := g.cache.Delete(ctx, id); err != nil {
			return err
		}
	}
	_, err := events.CacheInvalidatedTopic.Publish(ctx, &events.CacheInvalidatedEvent{
		Version:     events.EventVersion1,
		Keys:        ids,
		TriggeredAt: time.Now(),
		RequestID:   obslog.CorrelationID(ctx),
	})
	return err
}

var _ upgrade.Processor = (*Gdcf)(nil)
