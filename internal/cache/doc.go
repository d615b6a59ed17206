// Package cache provides a small generic LRU cache.
//
//	c := cache.New[int, text.Face](8)
//	face := c.GetOrCreate(24, func() text.Face { return src.Face(24) })
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
