/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package cache wraps an apis.Locator with an in-memory record cache.
package cache

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"dirpx.dev/gid/apis"
)

const (
	// DefaultTTL is how long a located record stays cached.
	DefaultTTL = 5 * time.Minute
	// DefaultCleanupInterval is how often expired records are purged.
	DefaultCleanupInterval = 10 * time.Minute
)

// Options configure a caching locator.
type Options struct {
	Strategy        Strategy
	TTL             time.Duration
	CleanupInterval time.Duration
}

// Locator caches successful lookups of the wrapped locator. Misses and
// faults are never cached, so a record created later is found on the next call.
type Locator struct {
	next     apis.Locator
	strategy Strategy
	ttl      time.Duration
	cache    *gocache.Cache
}

// Ensure Locator implements apis.Locator.
var _ apis.Locator = (*Locator)(nil)

// New wraps next. Zero durations fall back to the defaults.
func New(next apis.Locator, opts Options) *Locator {
	if opts.TTL <= 0 {
		opts.TTL = DefaultTTL
	}
	if opts.CleanupInterval <= 0 {
		opts.CleanupInterval = DefaultCleanupInterval
	}
	return &Locator{
		next:     next,
		strategy: opts.Strategy,
		ttl:      opts.TTL,
		cache:    gocache.New(opts.TTL, opts.CleanupInterval),
	}
}

// Strategy returns the configured retention strategy.
func (l *Locator) Strategy() Strategy { return l.strategy }

// Locate serves (m, id) from the cache, or from the wrapped locator on a miss.
func (l *Locator) Locate(ctx context.Context, m *apis.Model, id string) (any, error) {
	if l.strategy == None || m == nil {
		return l.next.Locate(ctx, m, id)
	}

	k := cacheKey(m, id)
	if rec, ok := l.cache.Get(k); ok {
		return rec, nil
	}

	rec, err := l.next.Locate(ctx, m, id)
	if err != nil {
		return nil, err
	}
	l.cache.Set(k, rec, l.ttl)
	return rec, nil
}

// Forget drops the cached record (m, id), e.g. after the record changed.
func (l *Locator) Forget(m *apis.Model, id string) {
	if m == nil {
		return
	}
	l.cache.Delete(cacheKey(m, id))
}

// Flush drops every cached record.
func (l *Locator) Flush() {
	l.cache.Flush()
}

// Len returns the number of cached records, expired ones included.
func (l *Locator) Len() int {
	return l.cache.ItemCount()
}

// cacheKey separates name and id with a byte that cannot occur in a model
// name, so ("a/b", "c") and ("a", "b/c") never collide.
func cacheKey(m *apis.Model, id string) string {
	return m.Name() + "\x00" + id
}
