// Package fake provides a scriptable in-memory client.Client for tests,
// grounded on the teacher's hand-rolled OriginFetcher/CacheClient test
// doubles in warming/service_test.go.
package fake

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/stadust/gdcf/model"
	"github.com/stadust/gdcf/request"
	"github.com/stadust/gdcf/response"
)

// Client is a programmable fake of client.Client: each method is scripted
// by assigning a func field, letting tests control exactly what the
// upstream "API" returns and count how many times each endpoint was hit.
type Client struct {
	mu sync.Mutex

	LevelFunc           func(ctx context.Context, req request.LevelRequest) (response.Response[model.RawLevel], error)
	LevelsFunc          func(ctx context.Context, req request.LevelsRequest) (response.Response[[]model.RawPartialLevel], error)
	UserFunc            func(ctx context.Context, req request.UserRequest) (response.Response[model.User], error)
	LevelCommentsFunc   func(ctx context.Context, req request.LevelCommentsRequest) (response.Response[[]model.LevelComment], error)
	ProfileCommentsFunc func(ctx context.Context, req request.ProfileCommentsRequest) (response.Response[[]model.ProfileComment], error)

	levelCalls           atomic.Int64
	levelsCalls          atomic.Int64
	userCalls            atomic.Int64
	levelCommentsCalls   atomic.Int64
	profileCommentsCalls atomic.Int64
}

func (c *Client) Level(ctx context.Context, req request.LevelRequest) (response.Response[model.RawLevel], error) {
	c.levelCalls.Add(1)
	return c.LevelFunc(ctx, req)
}

func (c *Client) Levels(ctx context.Context, req request.LevelsRequest) (response.Response[[]model.RawPartialLevel], error) {
	c.levelsCalls.Add(1)
	return c.LevelsFunc(ctx, req)
}

func (c *Client) User(ctx context.Context, req request.UserRequest) (response.Response[model.User], error) {
	c.userCalls.Add(1)
	return c.UserFunc(ctx, req)
}

func (c *Client) LevelComments(ctx context.Context, req request.LevelCommentsRequest) (response.Response[[]model.LevelComment], error) {
	c.levelCommentsCalls.Add(1)
	return c.LevelCommentsFunc(ctx, req)
}

func (c *Client) ProfileComments(ctx context.Context, req request.ProfileCommentsRequest) (response.Response[[]model.ProfileComment], error) {
	c.profileCommentsCalls.Add(1)
	return c.ProfileCommentsFunc(ctx, req)
}

// CallCounts returns how many times each endpoint has been invoked, keyed by
// method name — handy for asserting "zero new client calls" in upgrade
// tests.
func (c *Client) CallCounts() map[string]int64 {
	return map[string]int64{
		"Level":           c.levelCalls.Load(),
		"Levels":          c.levelsCalls.Load(),
		"User":            c.userCalls.Load(),
		"LevelComments":   c.levelCommentsCalls.Load(),
		"ProfileComments": c.profileCommentsCalls.Load(),
	}
}

// NoResultError is an ApiError reporting a genuine "no such object"
// response.
type NoResultError struct{ Msg string }

func (e NoResultError) Error() string    { return e.Msg }
func (e NoResultError) IsNoResult() bool { return true }

// TransportError is an ApiError reporting a non-absence failure (timeout,
// malformed payload, 5xx).
type TransportError struct{ Msg string }

func (e TransportError) Error() string    { return e.Msg }
func (e TransportError) IsNoResult() bool { return false }
