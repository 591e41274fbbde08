package cache

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// LRU is a fixed-size, thread-safe least-recently-used cache.
type LRU[K comparable, V any] struct {
	entries *lru.Cache[K, V]
}

// NewLRU returns an LRU holding at most size entries. size must be positive.
func NewLRU[K comparable, V any](size int) (*LRU[K, V], error) {
	entries, err := lru.New[K, V](size)
	if err != nil {
		return nil, fmt.Errorf("creating LRU cache of size %d: %w", size, err)
	}
	return &LRU[K, V]{entries: entries}, nil
}

func (c *LRU[K, V]) Get(key K) (V, bool) { return c.entries.Get(key) }
func (c *LRU[K, V]) Len() int { return c.entries.Len() }
func (c *LRU[K, V]) Add(key K, value V) { c.entries.Add(key, value) }
func (c *LRU[K, V]) Purge() { c.entries.Purge() }

// Disabled never stores anything.
type Disabled[K comparable, V any] struct{}

func (Disabled[K, V]) Get(K) (V, bool) {
	var zero V
	return zero, false
}
func (Disabled[K, V]) Len() int { return 0 }
func (Disabled[K, V]) Add(K, V) {}
func (Disabled[K, V]) Purge() {}

// New returns an LRU of the given size, or a Disabled cache when size is 0.
func New[K comparable, V any](size int) (ReadWriter[K, V], error) {
	if size == 0 {
		return Disabled[K, V]{}, nil
	}
	return NewLRU[K, V](size)
}
