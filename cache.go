package shadow

import (
	"github.com/gogpu/shadow/internal/cache"
)

// DefaultCacheSize is the number of shadows a Cache keeps by default.
const DefaultCacheSize = 32

// Cache memoizes renders keyed by Spec, so a component that repaints while
// idle does not blur the same shadow again.
//
// Cache is safe for concurrent use. Buffers returned by Render are private
// copies; modifying them does not affect the cache.
type Cache struct {
	renderer *Renderer
	entries  *cache.Cache[Spec, *Pixmap]
}

// CacheStats reports cache activity.
type CacheStats = cache.Stats

// NewCache wraps r in a cache holding about size shadows. A nil renderer
// uses the default Material curves; a size <= 0 uses DefaultCacheSize.
func NewCache(r *Renderer, size int) *Cache {
	if r == nil {
		r = defaultRenderer
	}
	if size <= 0 {
		size = DefaultCacheSize
	}
	return &Cache{
		renderer: r,
		entries:  cache.New[Spec, *Pixmap](size),
	}
}

// Render returns the shadow for spec, rendering it on a miss.
func (c *Cache) Render(spec Spec) (*Pixmap, error) {
	if pm, ok := c.entries.Get(spec); ok {
		return pm.Clone(), nil
	}

	pm, err := c.renderer.Render(spec)
	if err != nil {
		return nil, err
	}

	Logger().Debug("shadow: cache miss",
		"shape", spec.Shape.String(),
		"width", spec.Width,
		"height", spec.Height,
		"elevation", spec.Elevation,
	)
	c.entries.Set(spec, pm.Clone())
	return pm, nil
}

// Len returns the number of cached shadows.
func (c *Cache) Len() int {
	return c.entries.Len()
}

// Forget drops the shadow cached for spec, if any, and reports whether
// one was held.
func (c *Cache) Forget(spec Spec) bool {
	return c.entries.Delete(spec)
}

// Purge drops every cached shadow.
func (c *Cache) Purge() {
	c.entries.Clear()
}

// Stats returns hit, miss and eviction counters.
func (c *Cache) Stats() CacheStats {
	return c.entries.Stats()
}
