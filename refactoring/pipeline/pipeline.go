// Package pipeline shows the replace loop with pipeline refactoring on
// order statistics. Before walks the slice by index, mixing filtering,
// conversion and three accumulators in one body. After composes the same
// answer from iterator stages, each doing one thing.
package pipeline

import (
	"iter"
	"slices"
)

// Order is one row of the report's input.
type Order struct {
	Reference string
	Status    string
	Cents     int
}

// Stats summarises the paid orders of the input.
type Stats struct {
	Count int
	Sum   int
	Max   int
}

// Before computes the stats in a single indexed loop.
func Before(orders []Order) Stats {
	var stats Stats
	for i := 0; i < len(orders); i++ {
		if orders[i].Status != "paid" {
			continue
		}
		stats.Count++
		stats.Sum += orders[i].Cents
		if orders[i].Cents > stats.Max {
			stats.Max = orders[i].Cents
		}
	}
	return stats
}

// After computes the same stats as a pipeline of iterator stages.
func After(orders []Order) Stats {
	paid := filter(slices.Values(orders), func(o Order) bool { return o.Status == "paid" })
	amounts := transform(paid, func(o Order) int { return o.Cents })
	return reduce(amounts, Stats{}, func(s Stats, cents int) Stats {
		s.Count++
		s.Sum += cents
		if cents > s.Max {
			s.Max = cents
		}
		return s
	})
}

func filter[T any](src iter.Seq[T], keep func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range src {
			if keep(v) && !yield(v) {
				return
			}
		}
	}
}

func transform[I, O any](src iter.Seq[I], fn func(I) O) iter.Seq[O] {
	return func(yield func(O) bool) {
		for v := range src {
			if !yield(fn(v)) {
				return
			}
		}
	}
}

func reduce[ACC, T any](src iter.Seq[T], initial ACC, fn func(ACC, T) ACC) ACC {
	acc := initial
	for v := range src {
		acc = fn(acc, v)
	}
	return acc
}
