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
	"go/token"
	"runtime"
	"sync"
	"weak"
)

// Registry hands out one [Cache] per compilation generation.
//
// A generation is identified by its [token.FileSet]: every [types.Type] of a package load
// hangs off the same file set. The registry holds the file set only weakly, so a cache
// lives exactly as long as the generation it indexes. There is no eviction API.
type Registry[V any] struct {
	mu     sync.Mutex
	arenas map[weak.Pointer[token.FileSet]]*Cache[V]
	next   uint64
}

// NewRegistry creates an empty [Registry].
func NewRegistry[V any]() *Registry[V] {
	return &Registry[V]{arenas: make(map[weak.Pointer[token.FileSet]]*Cache[V])}
}

// For returns the cache of the generation owning fset, creating it on first use.
func (r *Registry[V]) For(fset *token.FileSet) *Cache[V] {
	key := weak.Make(fset)

	r.mu.Lock()
	defer r.mu.Unlock()

	if c, ok := r.arenas[key]; ok {
		return c
	}

	r.next++
	c := New[V](r.next)
	r.arenas[key] = c

	runtime.AddCleanup(fset, r.drop, key)

	return c
}

// Len returns the number of live generations.
func (r *Registry[V]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.arenas)
}

func (r *Registry[V]) drop(key weak.Pointer[token.FileSet]) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.arenas, key)
}
