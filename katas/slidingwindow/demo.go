package slidingwindow

import (
	"context"
	"fmt"
	"io"
)

// Demo renders the package's exercises on their classic sample inputs.
func Demo(ctx context.Context, w io.Writer) error {
	fmt.Fprintf(w, "longest unique substring in %q: %d\n",
		"abcabcbb", LongestUniqueSubstring("abcabcbb"))

	nums := []int{2, 3, 1, 2, 4, 3}
	fmt.Fprintf(w, "min subarray len with sum >= 7 in %v: %d\n",
		nums, MinSubArrayLen(7, nums))
	fmt.Fprintf(w, "no window reaches sum 100 in %v: %d\n",
		nums, MinSubArrayLen(100, nums))

	window := []int{1, 3, -1, -3, 5, 3, 6, 7}
	fmt.Fprintf(w, "max of every 3 sized window over %v: %v\n",
		window, MaxSlidingWindow(window, 3))
	return nil
}
