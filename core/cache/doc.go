// Package cache provides an optional Redis client used as a read-through
// cache for post author lookups. The cache is best-effort: when disabled or
// unreachable the client is nil and consumers fall back to direct database
// reads.
package cache
