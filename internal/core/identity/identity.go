package identity

import "context"

// Profile is the display-safe projection of a user record.
// Role is only populated where the caller is entitled to see it.
type Profile struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role,omitempty"`
}

// Resolver looks up display profiles for a batch of user ids.
// A missing id is simply omitted from the result map; resolution failures
// for individual ids must never fail the whole lookup.
type Resolver interface {
	Resolve(ctx context.Context, ids []string) (map[string]*Profile, error)
}
