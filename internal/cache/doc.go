// Package cache provides the generic LRU cache used by the shadow renderer.
//
// Cache[K, V] is a thread-safe cache with a soft limit. When the limit is
// exceeded the least recently used quarter of the entries is evicted:
//
//	c := cache.New[int, []float32](64)
//	c.Set(600, kernel)
//	kernel, ok := c.Get(600)
//
// It backs two things: the Gaussian kernel cache in internal/filter, keyed
// by quantized radius, and the caller-side shadow cache keyed by the render
// parameters of a shadow.
//
// # Thread Safety
//
// Cache is safe for concurrent use. It must not be copied after creation
// (it contains a mutex).
package cache
