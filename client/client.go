// Package client defines the outbound API contract GDCF fetches through:
// one method per request variant, returning a response.Response or an
// ApiError distinguishing "no such object" from a genuine transport
// failure.
package client

import (
	"context"

	"github.com/stadust/gdcf/model"
	"github.com/stadust/gdcf/request"
	"github.com/stadust/gdcf/response"
)

// ApiError is implemented by errors client methods return. IsNoResult lets
// gdcf distinguish an empty/absent result (store as MarkedAbsent) from a
// genuine failure (surface to the caller, leave the cache untouched).
type ApiError interface {
	error
	IsNoResult() bool
}

// Client is the outbound API surface gdcf fetches through — one concretely
// typed method per request variant, sidestepping Go's lack of generic
// interface methods.
type Client interface {
	Level(ctx context.Context, req request.LevelRequest) (response.Response[model.RawLevel], error)
	Levels(ctx context.Context, req request.LevelsRequest) (response.Response[[]model.RawPartialLevel], error)
	User(ctx context.Context, req request.UserRequest) (response.Response[model.User], error)
	LevelComments(ctx context.Context, req request.LevelCommentsRequest) (response.Response[[]model.LevelComment], error)
	ProfileComments(ctx context.Context, req request.ProfileCommentsRequest) (response.Response[[]model.ProfileComment], error)
}
