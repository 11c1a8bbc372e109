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

// Package registry provides the concurrency-safe name -> value map shared by
// the Model, View and Controller.
package registry

import (
	"sort"
	"sync"
)

// Entry is a single (name, value) association in a Registry snapshot.
type Entry[V any] struct {
	// Name is the registration name.
	Name string
	// Value is the registered value.
	Value V
}

// New constructs an empty Registry.
func New[V any]() *Registry[V] {
	return &Registry[V]{}
}

// Registry is a name -> V map backed by sync.Map.
//
// Reads are lock-free. Writes serialize on a mutex so the insert-if-absent
// and replace paths stay consistent with the counter. No method calls back
// into user code, so callers may invoke lifecycle hooks after a write
// without holding any lock.
type Registry[V any] struct {
	// mu guards write-side consistency and counter
	mu sync.Mutex
	// m maps name to V.
	m sync.Map // map[string]V
	// count tracks the number of registered entries.
	count int
}

// Register stores v under name unless the name is taken.
// It reports whether v was stored.
func (r *Registry[V]) Register(name string, v V) bool {
	// Fast read path: existing names are left untouched without locking.
	if _, ok := r.m.Load(name); ok {
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Re-check under lock in case another goroutine stored meanwhile.
	if _, ok := r.m.Load(name); ok {
		return false
	}
	r.m.Store(name, v)
	r.count++
	return true
}

// Put stores v under name, replacing any previous value.
// It returns the previous value and whether one existed.
func (r *Registry[V]) Put(name string, v V) (prev V, replaced bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	old, loaded := r.m.Swap(name, v)
	if !loaded {
		r.count++
		return prev, false
	}
	return old.(V), true
}

// Lookup returns the value registered under name.
func (r *Registry[V]) Lookup(name string) (v V, ok bool) {
	if x, ok := r.m.Load(name); ok {
		return x.(V), true
	}
	return v, false
}

// Has reports whether name is registered.
func (r *Registry[V]) Has(name string) bool {
	_, ok := r.m.Load(name)
	return ok
}

// Remove deletes name and returns the value it held.
// Removing an absent name is a no-op that reports false.
func (r *Registry[V]) Remove(name string) (v V, ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	x, loaded := r.m.LoadAndDelete(name)
	if !loaded {
		return v, false
	}
	r.count--
	return x.(V), true
}

// Entries returns a snapshot sorted by name.
func (r *Registry[V]) Entries() []Entry[V] {
	entries := make([]Entry[V], 0, r.Count())
	r.m.Range(func(key, value any) bool {
		entries = append(entries, Entry[V]{
			Name:  key.(string),
			Value: value.(V),
		})
		return true
	})
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries
}

// Names returns the registered names, sorted.
func (r *Registry[V]) Names() []string {
	entries := r.Entries()
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}

// Count returns the number of registered entries.
func (r *Registry[V]) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}

// Reset clears all registered entries.
func (r *Registry[V]) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.m.Clear()
	r.count = 0
}
