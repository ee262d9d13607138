package lrucache

import (
	"context"
	"fmt"
	"io"
)

// Demo walks the classic LRU cache scenario with a capacity of two.
func Demo(ctx context.Context, w io.Writer) error {
	cache, err := New(2)
	if err != nil {
		return err
	}

	cache.Put(1, 1)
	cache.Put(2, 2)
	fmt.Fprintf(w, "put 1=1, put 2=2, keys by recency: %v\n", cache.Keys())

	v, _ := cache.Get(1)
	fmt.Fprintf(w, "get 1: %d, keys by recency: %v\n", v, cache.Keys())

	cache.Put(3, 3) // evicts key 2
	_, ok := cache.Get(2)
	fmt.Fprintf(w, "put 3=3 evicts the oldest, get 2 found: %v\n", ok)

	cache.Put(4, 4) // evicts key 1
	_, ok = cache.Get(1)
	fmt.Fprintf(w, "put 4=4 evicts the oldest, get 1 found: %v\n", ok)

	v, _ = cache.Get(3)
	fmt.Fprintf(w, "get 3: %d\n", v)
	v, _ = cache.Get(4)
	fmt.Fprintf(w, "get 4: %d\n", v)

	if _, err := New(0); err != nil {
		fmt.Fprintf(w, "capacity 0 is rejected: %v\n", err)
	}
	return nil
}
