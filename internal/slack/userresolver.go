package slack

import (
	"context"
)

// UserFetcher looks up a single user remotely.
type UserFetcher interface {
	FetchUserInfo(ctx context.Context, id string) (*User, error)
}

// UserIndex is a read-only lookup over users already fetched in bulk.
type UserIndex map[string]*User

// NewUserIndex builds an index keyed by user ID.
func NewUserIndex(users []User) UserIndex {
	idx := make(UserIndex, len(users))
	for i := range users {
		idx[users[i].ID] = &users[i]
	}
	return idx
}

// UserResolver maps user IDs to names, trying the index, then the cache,
// then the fetcher. Fetched users are stored in the cache.
type UserResolver struct {
	index   UserIndex
	cache   *UserCache
	fetcher UserFetcher
}

// NewUserResolver creates a resolver. Any argument may be nil.
func NewUserResolver(index UserIndex, cache *UserCache, fetcher UserFetcher) *UserResolver {
	if cache == nil {
		cache = NewUserCache()
	}
	return &UserResolver{index: index, cache: cache, fetcher: fetcher}
}

// Lookup returns the full user for id, or nil when it cannot be resolved
// without a remote call and no fetcher is configured.
func (r *UserResolver) Lookup(ctx context.Context, id string) (*User, error) {
	if u, ok := r.index[id]; ok {
		return u, nil
	}
	if u := r.cache.Get(id); u != nil {
		return u, nil
	}
	if r.fetcher == nil {
		return nil, nil
	}
	u, err := r.fetcher.FetchUserInfo(ctx, id)
	if err != nil {
		return nil, err
	}
	r.cache.Set(u)
	return u, nil
}

// Username returns the user's handle. It falls back to the ID when the user
// cannot be looked up, and returns "unknown" for an empty ID.
func (r *UserResolver) Username(ctx context.Context, id string) (string, error) {
	if id == "" {
		return "unknown", nil
	}
	u, err := r.Lookup(ctx, id)
	if err != nil {
		return "", err
	}
	if u == nil || u.Name == "" {
		return id, nil
	}
	return u.Name, nil
}
