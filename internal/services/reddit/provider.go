// Package reddit fetches a user's public activity from the Reddit JSON API
// and hands it to the analytics core as a fully-typed, validated triple.
// All timestamp and shape validation happens here, at the system boundary,
// so the core operates over clean domain values only.
package reddit

import (
	"context"

	"github.com/redsight/redsight/internal/models"
)

// Provider is the interface for upstream activity sources
type Provider interface {
	// FetchUserActivity resolves the user's metadata, posts and comments as
	// one atomic result. Implementations must return either a complete
	// UserActivity or an error; there is no partial-input mode.
	FetchUserActivity(ctx context.Context, username string) (*models.UserActivity, error)
}
