package extractfunction

import (
	"context"
	"fmt"
	"io"
)

// Demo renders one invoice through both forms and shows they agree.
func Demo(ctx context.Context, w io.Writer) error {
	inv := Invoice{
		Customer: "Meadow Works",
		Lines: []Line{
			{Description: "oak table", Quantity: 2, UnitCents: 79900},
			{Description: "tea mug", Quantity: 12, UnitCents: 1250},
		},
	}
	fmt.Fprintln(w, "-- before --")
	fmt.Fprint(w, Before(inv))
	fmt.Fprintln(w, "-- after --")
	fmt.Fprint(w, After(inv))
	fmt.Fprintf(w, "both render the same bytes: %t\n", Before(inv) == After(inv))
	return nil
}
