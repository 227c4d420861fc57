package pubfolio

import (
	"context"
	"slices"
	"sync"
	"time"
)

// Reader is the read-only query surface shared by Catalog and CatalogCache.
type Reader interface {
	ListAllPosts(ctx context.Context) ([]Post, error)
	GetPost(ctx context.Context, slug string) (Post, error)
	RelatedPosts(ctx context.Context, slug string, n int) ([]Post, error)
}

// CatalogCache keeps the last catalog build in memory for ttl. A ttl of
// zero or less disables caching and every call reaches the Catalog.
type CatalogCache struct {
	mu      sync.RWMutex
	posts   []Post
	fetched time.Time
	ttl     time.Duration
	catalog *Catalog
}

// NewCatalogCache creates a CatalogCache backed by c.
func NewCatalogCache(c *Catalog, ttl time.Duration) *CatalogCache {
	return &CatalogCache{catalog: c, ttl: ttl}
}

func (c *CatalogCache) enabled() bool {
	return c.ttl > 0
}

func (c *CatalogCache) valid() bool {
	return c.posts != nil && time.Since(c.fetched) < c.ttl
}

// Invalidate clears the cache so the next read triggers a fresh build.
func (c *CatalogCache) Invalidate() {
	c.mu.Lock()
	c.posts = nil
	c.mu.Unlock()
}

// ensureLoaded returns cached posts after ensuring the cache is fresh.
// It tries a read lock first; only takes a write lock if a rebuild is needed.
func (c *CatalogCache) ensureLoaded(ctx context.Context) ([]Post, error) {
	c.mu.RLock()
	if c.valid() {
		posts := c.posts
		c.mu.RUnlock()
		return posts, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.valid() {
		return c.posts, nil
	}
	posts, err := c.catalog.ListAllPosts(ctx)
	if err != nil {
		return nil, err
	}
	c.posts = posts
	c.fetched = time.Now()
	return posts, nil
}

// ListAllPosts returns the catalog, most recent first.
func (c *CatalogCache) ListAllPosts(ctx context.Context) ([]Post, error) {
	if !c.enabled() {
		return c.catalog.ListAllPosts(ctx)
	}
	posts, err := c.ensureLoaded(ctx)
	if err != nil {
		return nil, err
	}
	return slices.Clone(posts), nil
}

// GetPost returns a single post. Slugs missing from the cached catalog are
// looked up in the source so ErrNotFound and ErrUndated stay distinct.
func (c *CatalogCache) GetPost(ctx context.Context, slug string) (Post, error) {
	if !c.enabled() {
		return c.catalog.GetPost(ctx, slug)
	}
	posts, err := c.ensureLoaded(ctx)
	if err != nil {
		return Post{}, err
	}
	for _, p := range posts {
		if p.Slug == slug {
			return p, nil
		}
	}
	return c.catalog.GetPost(ctx, slug)
}

// RelatedPosts returns up to n recent posts other than slug.
func (c *CatalogCache) RelatedPosts(ctx context.Context, slug string, n int) ([]Post, error) {
	if !c.enabled() {
		return c.catalog.RelatedPosts(ctx, slug, n)
	}
	posts, err := c.ensureLoaded(ctx)
	if err != nil {
		return nil, err
	}
	return SelectRelated(posts, slug, n), nil
}
