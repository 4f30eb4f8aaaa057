// Package cache provides a small generic LRU cache.
//
//	c := cache.New[string, []byte](256)
//	v, err := c.GetOrCreate("key", load)
//
// Cache is not safe for concurrent use.
package cache
