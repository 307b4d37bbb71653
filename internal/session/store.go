package session

import (
	"context"
	"time"
)

// Store tracks logged-in admin identities keyed by an opaque token. The
// token travels in a cookie; all session state stays server-side so an
// implementation can be swapped for a distributed one without touching
// handler code.
type Store interface {
	// Create issues a new token bound to the given username.
	Create(ctx context.Context, username string) (string, error)
	// Lookup resolves a token to its username. ok is false for unknown or
	// expired tokens; err reports store failures only.
	Lookup(ctx context.Context, token string) (username string, ok bool, err error)
	// Destroy invalidates a token. Destroying an unknown token is not an error.
	Destroy(ctx context.Context, token string) error
}

// DefaultTTL is the absolute session lifetime when none is configured.
const DefaultTTL = time.Hour
