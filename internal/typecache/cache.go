// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package typecache

import (
	"go/types"
	"sync"
	"sync/atomic"
)

// Cache memoizes values computed from [types.Type] handles of one compilation generation.
//
// Cache is safe for concurrent use. Two goroutines missing on the same key may both
// compute; the first stored value wins and is returned to both.
type Cache[V any] struct {
	mu      sync.RWMutex
	entries map[types.Type]V

	generation   uint64
	hits, misses atomic.Uint64
}

// New creates an empty [Cache] for the given generation.
func New[V any](generation uint64) *Cache[V] {
	return &Cache[V]{entries: make(map[types.Type]V), generation: generation}
}

// Generation returns the compilation generation this cache belongs to.
func (c *Cache[V]) Generation() uint64 {
	return c.generation
}

// GetOrCompute returns the memoized value for t, invoking compute on a miss.
func (c *Cache[V]) GetOrCompute(t types.Type, compute func(types.Type) V) V {
	c.mu.RLock()
	v, ok := c.entries[t]
	c.mu.RUnlock()

	if ok {
		c.hits.Add(1)

		return v
	}

	c.misses.Add(1)
	v = compute(t)

	c.mu.Lock()
	defer c.mu.Unlock()

	if prev, ok := c.entries[t]; ok {
		return prev
	}

	c.entries[t] = v

	return v
}

// Len returns the number of memoized entries.
func (c *Cache[V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}

// Stats reports cache hits and misses.
type Stats struct {
	Generation   uint64
	Entries      int
	Hits, Misses uint64
}

// Stats returns a snapshot of the cache counters.
func (c *Cache[V]) Stats() Stats {
	return Stats{
		Generation: c.generation,
		Entries:    c.Len(),
		Hits:       c.hits.Load(),
		Misses:     c.misses.Load(),
	}
}
