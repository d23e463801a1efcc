// Package session caches authenticated user snapshots, keyed by backend
// access token. It is the server-side counterpart of the browser app's
// single "who am I" context: fetched wholesale, replaced wholesale, and
// cleared explicitly on logout.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"shopper-front/backend"
	"shopper-front/models"
)

// Snapshot is one user's cached identity: the /api/auth/me payload merged
// with the owned-projects list. A snapshot is immutable once published;
// Refresh builds a new one and swaps it in atomically.
type Snapshot struct {
	User      models.User
	Projects  []models.Project
	FetchedAt time.Time
}

type Cache struct {
	mu      sync.RWMutex
	entries map[string]*Snapshot
	api     *backend.Client
}

func NewCache(api *backend.Client) *Cache {
	return &Cache{
		entries: make(map[string]*Snapshot),
		api:     api,
	}
}

// Refresh rebuilds the snapshot for a token. The profile call is
// authoritative: if it fails, the entry is dropped and the caller is
// anonymous. The projects call is secondary: its failure still commits the
// profile with an empty project list, logged so a real outage is visible
// rather than masked as "zero projects".
func (c *Cache) Refresh(ctx context.Context, token string) (*Snapshot, error) {
	user, err := c.api.Me(ctx, token)
	if err != nil {
		c.Clear(token)
		return nil, err
	}

	projects, err := c.api.MyProjects(ctx, token)
	if err != nil {
		logrus.WithError(err).Warn("projects fetch failed, committing profile with empty project list")
		projects = nil
	}

	if user.Stores == nil {
		user.Stores = map[string]string{}
	}
	if user.StoreSlugs == nil {
		user.StoreSlugs = map[string]string{}
	}

	snap := &Snapshot{
		User:      *user,
		Projects:  projects,
		FetchedAt: time.Now(),
	}

	c.mu.Lock()
	c.entries[token] = snap
	c.mu.Unlock()
	return snap, nil
}

// Get returns the cached snapshot without revalidating. Controllers call
// Refresh after mutations that change identity.
func (c *Cache) Get(token string) (*Snapshot, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	snap, ok := c.entries[token]
	return snap, ok
}

// GetOrRefresh returns the cached snapshot, fetching it on a cache miss.
func (c *Cache) GetOrRefresh(ctx context.Context, token string) (*Snapshot, error) {
	if snap, ok := c.Get(token); ok {
		return snap, nil
	}
	return c.Refresh(ctx, token)
}

// Clear drops a token's snapshot. Called synchronously on logout so no page
// can render a stale identity afterwards.
func (c *Cache) Clear(token string) {
	c.mu.Lock()
	delete(c.entries, token)
	c.mu.Unlock()
}
