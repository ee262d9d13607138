package parameterobject

import (
	"context"
	"fmt"
	"io"
)

// Demo prices the same order through both signatures.
func Demo(ctx context.Context, w io.Writer) error {
	fmt.Fprintln(w, `before: Before(3, 12500, "eu", true, 2700, 500)`)
	fmt.Fprintf(w, "  => %d\n", Before(3, 12500, "eu", true, 2700, 500))

	fmt.Fprintln(w, `after: After(Quote{Widgets: 3, UnitCents: 12500, Destination: "eu", Express: true, CouponCents: 500})`)
	fmt.Fprintf(w, "  => %d\n", After(Quote{Widgets: 3, UnitCents: 12500, Destination: "eu", Express: true, CouponCents: 500}))

	fmt.Fprintln(w, `defaults keep the short order short: After(Quote{Widgets: 1, UnitCents: 9900})`)
	fmt.Fprintf(w, "  => %d\n", After(Quote{Widgets: 1, UnitCents: 9900}))
	return nil
}
