package twopointers_test

import (
	"context"
	"fmt"
	"os"

	"go.llib.dev/exemplar/katas/twopointers"
)

func ExampleDemo() {
	_ = twopointers.Demo(context.Background(), os.Stdout)
	// Output:
	// three sum [-1 0 1 2 -1 -4]: [[-1 -1 2] [-1 0 1]]
	// two sum sorted [2 7 11 15] target 9: indexes 0 and 1 (found: true)
	// two sum sorted [2 7 11 15] target 42 found: false
	// container with most water [1 8 6 2 5 4 8 3 7]: 49
}

func ExampleThreeSum() {
	fmt.Println(twopointers.ThreeSum([]int{-1, 0, 1, 2, -1, -4}))
	// Output: [[-1 -1 2] [-1 0 1]]
}
