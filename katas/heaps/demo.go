package heaps

import (
	"context"
	"fmt"
	"io"
)

// Demo renders the package's exercises on their classic sample inputs.
func Demo(ctx context.Context, w io.Writer) error {
	fmt.Fprintf(w, "task scheduler %q with cooldown 2: %d slots\n",
		"AAABBB", TaskScheduler("AAABBB", 2))

	seed := []int{4, 5, 8, 2}
	kth, err := NewKthLargest(3, seed)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "kth largest (k=3) seeded with %v:\n", seed)
	for _, v := range []int{3, 5, 10, 9, 4} {
		val, _ := kth.Add(v)
		fmt.Fprintf(w, "  add %d -> %d\n", v, val)
	}

	merged := MergeKLists([]*ListNode{
		NewList(1, 4, 5),
		NewList(1, 3, 4),
		NewList(2, 6),
	})
	fmt.Fprintf(w, "merge sorted lists [1 4 5] [1 3 4] [2 6]: %v\n", merged.Values())
	return nil
}
