// Package ratelimit decorates a client.Client with a token-bucket rate
// limit, so gdcf never hammers the upstream API faster than it tolerates.
// Grounded on the teacher's warming.Service, which holds a
// *rate.Limiter and calls rateLimiter.Wait(ctx) before every origin fetch.
package ratelimit

import (
	"context"

	"golang.org/x/time/rate"

	"github.com/stadust/gdcf/client"
	"github.com/stadust/gdcf/model"
	"github.com/stadust/gdcf/request"
	"github.com/stadust/gdcf/response"
)

// Client wraps a client.Client, blocking each call on a shared token bucket
// before delegating.
type Client struct {
	inner   client.Client
	limiter *rate.Limiter
}

// New wraps inner with a limiter allowing rps requests per second, bursting
// up to burst.
func New(inner client.Client, rps float64, burst int) *Client {
	return &Client{inner: inner, limiter: rate.NewLimiter(rate.Limit(rps), burst)}
}

var _ client.Client = (*Client)(nil)

func (c *Client) Level(ctx context.Context, req request.LevelRequest) (response.Response[model.RawLevel], error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return response.Response[model.RawLevel]{}, err
	}
	return c.inner.Level(ctx, req)
}

func (c *Client) Levels(ctx context.Context, req request.LevelsRequest) (response.Response[[]model.RawPartialLevel], error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return response.Response[[]model.RawPartialLevel]{}, err
	}
	return c.inner.Levels(ctx, req)
}

func (c *Client) User(ctx context.Context, req request.UserRequest) (response.Response[model.User], error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return response.Response[model.User]{}, err
	}
	return c.inner.User(ctx, req)
}

func (c *Client) LevelComments(ctx context.Context, req request.LevelCommentsRequest) (response.Response[[]model.LevelComment], error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return response.Response[[]model.LevelComment]{}, err
	}
	return c.inner.LevelComments(ctx, req)
}

func (c *Client) ProfileComments(ctx context.Context, req request.ProfileCommentsRequest) (response.Response[[]model.ProfileComment], error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return response.Response[[]model.ProfileComment]{}, err
	}
	return c.inner.ProfileComments(ctx, req)
}
