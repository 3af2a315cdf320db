// Package cache provides the short-TTL cache used for feature toggles and
// portfolio summaries: Redis when configured and reachable, in-memory
// otherwise.
package cache
