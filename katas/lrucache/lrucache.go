// Package lrucache implements the classic least-recently-used cache exercise:
// constant time Get and Put backed by a map and a doubly linked list.
package lrucache

import (
	"container/list"
	"fmt"
)

// Cache is a fixed capacity key value store that evicts
// the least recently used entry once the capacity is exceeded.
// Both Get and Put count as use.
type Cache struct {
	capacity int
	order    *list.List            // most recently used entry at the front
	index    map[int]*list.Element // key to its list element
}

type cacheEntry struct {
	Key   int
	Value int
}

// New returns an empty Cache that holds at most capacity entries.
func New(capacity int) (*Cache, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("lrucache: capacity must be positive, got %d", capacity)
	}
	return &Cache{
		capacity: capacity,
		order:    list.New(),
		index:    make(map[int]*list.Element, capacity),
	}, nil
}

// Get returns the value stored under key and marks the entry as recently used.
func (c *Cache) Get(key int) (value int, ok bool) {
	elem, ok := c.index[key]
	if !ok {
		return 0, false
	}
	c.order.MoveToFront(elem)
	return elem.Value.(*cacheEntry).Value, true
}

// Put stores value under key as the most recently used entry.
// When the key is new and the cache is full,
// the least recently used entry is evicted first.
func (c *Cache) Put(key, value int) {
	if elem, ok := c.index[key]; ok {
		elem.Value.(*cacheEntry).Value = value
		c.order.MoveToFront(elem)
		return
	}
	if c.capacity <= c.order.Len() {
		oldest := c.order.Back()
		c.order.Remove(oldest)
		delete(c.index, oldest.Value.(*cacheEntry).Key)
	}
	c.index[key] = c.order.PushFront(&cacheEntry{Key: key, Value: value})
}

// Len returns the number of entries currently held.
func (c *Cache) Len() int { return c.order.Len() }

// Keys returns the keys ordered from most to least recently used.
func (c *Cache) Keys() []int {
	keys := make([]int, 0, c.order.Len())
	for elem := c.order.Front(); elem != nil; elem = elem.Next() {
		keys = append(keys, elem.Value.(*cacheEntry).Key)
	}
	return keys
}
