/*
Copyright 2025 The llm-d Authors

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

// Package cache memoises results computed from an immutable table. Entries
// never go stale since the table never changes; eviction only bounds memory.
package cache

// Reader provides read-only access to the cache.
// This interface is used by query paths looking for a memoised result.
type Reader[K comparable, V any] interface {
	// Get returns the cached value for key and whether it was present.
	Get(key K) (V, bool)

	// Len returns the number of cached entries.
	Len() int
}

// Writer provides write access to the cache.
// This interface is used by query paths after computing a result.
type Writer[K comparable, V any] interface {
	// Add stores value under key, evicting the least recently used entry
	// when the cache is full.
	Add(key K, value V)

	// Purge removes every entry.
	Purge()
}

// ReadWriter combines both read and write access to the cache.
type ReadWriter[K comparable, V any] interface {
	Reader[K, V]
	Writer[K, V]
}
