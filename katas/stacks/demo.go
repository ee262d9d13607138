package stacks

import (
	"context"
	"fmt"
	"io"
)

// Demo renders the package's exercises on their classic sample inputs.
func Demo(ctx context.Context, w io.Writer) error {
	temps := []int{73, 74, 75, 71, 69, 72, 76, 73}
	fmt.Fprintf(w, "daily temperatures %v: %v\n", temps, DailyTemperatures(temps))

	nums := []int{1, 2, 1}
	fmt.Fprintf(w, "next greater circular %v: %v\n", nums, NextGreaterElements(nums))

	for _, input := range []string{"([{}])", "(]"} {
		fmt.Fprintf(w, "%q valid: %t\n", input, ValidParentheses(input))
	}
	return nil
}
