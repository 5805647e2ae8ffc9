package identity

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingResolver records how many ids each Resolve call was asked for
type countingResolver struct {
	profiles map[string]*Profile
	requests [][]string
}

func (r *countingResolver) Resolve(_ context.Context, ids []string) (map[string]*Profile, error) {
	r.requests = append(r.requests, ids)
	result := make(map[string]*Profile)
	for _, id := range ids {
		if p, ok := r.profiles[id]; ok {
			result[id] = p
		}
	}
	return result, nil
}

func TestCachedResolver(t *testing.T) {
	inner := &countingResolver{profiles: map[string]*Profile{
		"u1": {ID: "u1", Name: "Ada"},
		"u2": {ID: "u2", Name: "Linus"},
	}}

	cached, err := NewCachedResolver(inner, 16)
	require.NoError(t, err)
	ctx := context.Background()

	// First lookup passes everything through
	result, err := cached.Resolve(ctx, []string{"u1", "u2"})
	require.NoError(t, err)
	assert.Len(t, result, 2)
	require.Len(t, inner.requests, 1)

	// Second lookup is served entirely from cache
	result, err = cached.Resolve(ctx, []string{"u1", "u2"})
	require.NoError(t, err)
	assert.Len(t, result, 2)
	assert.Len(t, inner.requests, 1)

	// A new id only forwards the miss
	result, err = cached.Resolve(ctx, []string{"u1", "u3"})
	require.NoError(t, err)
	assert.Len(t, result, 1)
	require.Len(t, inner.requests, 2)
	assert.Equal(t, []string{"u3"}, inner.requests[1])
}

func TestCachedResolver_MissingIDsStayUncached(t *testing.T) {
	inner := &countingResolver{profiles: map[string]*Profile{}}

	cached, err := NewCachedResolver(inner, 16)
	require.NoError(t, err)
	ctx := context.Background()

	_, err = cached.Resolve(ctx, []string{"ghost"})
	require.NoError(t, err)

	// The user appears later; the next lookup must see them
	inner.profiles["ghost"] = &Profile{ID: "ghost", Name: "Now Real"}

	result, err := cached.Resolve(ctx, []string{"ghost"})
	require.NoError(t, err)
	require.Contains(t, result, "ghost")
	assert.Equal(t, "Now Real", result["ghost"].Name)
}
