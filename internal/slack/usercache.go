package slack

import (
	"sync"
)

// UserCache holds users fetched during a single invocation.
// Thread-safe for concurrent access.
type UserCache struct {
	mu    sync.RWMutex
	users map[string]*User
}

// NewUserCache creates an empty UserCache.
func NewUserCache() *UserCache {
	return &UserCache{users: make(map[string]*User)}
}

// Get returns a cached user by ID, or nil if not found.
func (c *UserCache) Get(id string) *User {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.users[id]
}

// Set adds or updates a user in the cache.
func (c *UserCache) Set(user *User) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.users[user.ID] = user
}

// Len returns the number of cached users.
func (c *UserCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.users)
}
