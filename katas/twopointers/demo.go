package twopointers

import (
	"context"
	"fmt"
	"io"
)

// Demo runs the package's exercises on their classic sample inputs.
func Demo(ctx context.Context, w io.Writer) error {
	nums := []int{-1, 0, 1, 2, -1, -4}
	fmt.Fprintf(w, "three sum %v: %v\n", nums, ThreeSum(nums))

	sorted := []int{2, 7, 11, 15}
	i, j, ok := TwoSumSorted(sorted, 9)
	fmt.Fprintf(w, "two sum sorted %v target 9: indexes %d and %d (found: %v)\n", sorted, i, j, ok)

	_, _, ok = TwoSumSorted(sorted, 42)
	fmt.Fprintf(w, "two sum sorted %v target 42 found: %v\n", sorted, ok)

	heights := []int{1, 8, 6, 2, 5, 4, 8, 3, 7}
	fmt.Fprintf(w, "container with most water %v: %d\n", heights, ContainerWithMostWater(heights))
	return nil
}
