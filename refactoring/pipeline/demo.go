package pipeline

import (
	"context"
	"fmt"
	"io"
)

// Demo summarises the same order book through both forms.
func Demo(ctx context.Context, w io.Writer) error {
	orders := []Order{
		{Reference: "ord-1", Status: "paid", Cents: 4900},
		{Reference: "ord-2", Status: "canceled", Cents: 129900},
		{Reference: "ord-3", Status: "paid", Cents: 1250},
		{Reference: "ord-4", Status: "pending", Cents: 9900},
		{Reference: "ord-5", Status: "paid", Cents: 79900},
	}
	before, after := Before(orders), After(orders)
	fmt.Fprintf(w, "before: %d paid orders, %d cents total, biggest %d\n",
		before.Count, before.Sum, before.Max)
	fmt.Fprintf(w, "after:  %d paid orders, %d cents total, biggest %d\n",
		after.Count, after.Sum, after.Max)
	return nil
}
