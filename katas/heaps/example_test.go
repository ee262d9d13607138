package heaps_test

import (
	"context"
	"fmt"
	"os"

	"go.llib.dev/exemplar/katas/heaps"
)

func ExampleDemo() {
	_ = heaps.Demo(context.Background(), os.Stdout)
	// Output:
	// task scheduler "AAABBB" with cooldown 2: 8 slots
	// kth largest (k=3) seeded with [4 5 8 2]:
	//   add 3 -> 4
	//   add 5 -> 5
	//   add 10 -> 5
	//   add 9 -> 8
	//   add 4 -> 8
	// merge sorted lists [1 4 5] [1 3 4] [2 6]: [1 1 2 3 4 4 5 6]
}

func ExampleMergeKLists() {
	merged := heaps.MergeKLists([]*heaps.ListNode{
		heaps.NewList(1, 4, 5),
		heaps.NewList(1, 3, 4),
		heaps.NewList(2, 6),
	})

	fmt.Println(merged.Values())
	// Output: [1 1 2 3 4 4 5 6]
}
