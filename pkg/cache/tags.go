package cache

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// Tag identifies a set of cached responses. A Tag with an empty ID covers a
// whole resource (every list and entity entry); a Tag with an ID covers a
// single entity.
type Tag struct {
	Resource string
	ID       string
}

func (t Tag) String() string {
	if t.ID == "" {
		return t.Resource
	}
	return t.Resource + "#" + t.ID
}

// ResourceTag covers every cached response for a resource.
func ResourceTag(resource string) Tag {
	return Tag{Resource: resource}
}

// EntityTag covers the cached responses for one entity.
func EntityTag(resource, id string) Tag {
	return Tag{Resource: resource, ID: id}
}

// InvalidationBus tracks which cache keys were produced under which tags and
// deletes them when a mutation invalidates a tag. Invalidating an entity tag
// also drops every resource-level entry (list responses must never go stale
// after a mutation, so the bus over-invalidates rather than under-invalidates).
type InvalidationBus struct {
	cache  CacheService
	logger *zap.Logger

	mu   sync.Mutex
	keys map[string]map[string]struct{} // tag string -> cache keys
	subs []func(Tag)
}

// NewInvalidationBus creates a bus that deletes entries from cache.
func NewInvalidationBus(cache CacheService, logger *zap.Logger) *InvalidationBus {
	return &InvalidationBus{
		cache:  cache,
		logger: logger,
		keys:   make(map[string]map[string]struct{}),
	}
}

// Register records that key was cached under the given tags.
func (b *InvalidationBus) Register(key string, tags ...Tag) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, tag := range tags {
		ts := tag.String()
		if b.keys[ts] == nil {
			b.keys[ts] = make(map[string]struct{})
		}
		b.keys[ts][key] = struct{}{}
	}
}

// Subscribe registers a callback invoked after each tag invalidation.
func (b *InvalidationBus) Subscribe(fn func(Tag)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subs = append(b.subs, fn)
}

// Invalidate drops every cache entry registered under each tag. An entity tag
// additionally drops the resource-level entries; a resource tag drops every
// entity entry of that resource as well.
func (b *InvalidationBus) Invalidate(ctx context.Context, tags ...Tag) error {
	var firstErr error
	for _, tag := range tags {
		keys, subs := b.collect(tag)
		if len(keys) > 0 {
			if err := b.cache.Delete(ctx, keys...); err != nil {
				if firstErr == nil {
					firstErr = err
				}
				if b.logger != nil {
					b.logger.Warn("cache invalidation failed",
						zap.String("tag", tag.String()),
						zap.Error(err))
				}
			}
		}
		for _, fn := range subs {
			fn(tag)
		}
	}
	return firstErr
}

// collect gathers the affected keys under the bus lock and clears their
// registrations, returning the subscriber list captured at the same time.
func (b *InvalidationBus) collect(tag Tag) ([]string, []func(Tag)) {
	b.mu.Lock()
	defer b.mu.Unlock()

	seen := make(map[string]struct{})

	take := func(ts string) {
		for key := range b.keys[ts] {
			seen[key] = struct{}{}
		}
		delete(b.keys, ts)
	}

	// Resource-level entries are always part of the invalidation set.
	take(tag.Resource)

	if tag.ID != "" {
		take(tag.String())
	} else {
		// Whole-resource invalidation covers every entity entry too.
		prefix := tag.Resource + "#"
		for ts := range b.keys {
			if len(ts) > len(prefix) && ts[:len(prefix)] == prefix {
				take(ts)
			}
		}
	}

	keys := make([]string, 0, len(seen))
	for key := range seen {
		keys = append(keys, key)
	}

	subs := make([]func(Tag), len(b.subs))
	copy(subs, b.subs)
	return keys, subs
}
