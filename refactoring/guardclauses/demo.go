package guardclauses

import (
	"context"
	"fmt"
	"io"
)

// Demo runs one employee per rule through both forms.
func Demo(ctx context.Context, w io.Writer) error {
	employees := []Employee{
		{Separated: true, MonthsServed: 30, BaseCents: 120000},
		{Retired: true, MonthsServed: 200, BaseCents: 120000},
		{MonthsServed: 6, BaseCents: 120000},
		{MonthsServed: 24, BaseCents: 120000},
		{MonthsServed: 72, BaseCents: 120000},
	}
	for _, e := range employees {
		before, after := Before(e), After(e)
		fmt.Fprintf(w, "months=%-3d separated=%-5t retired=%-5t before: %d (%s) after: %d (%s)\n",
			e.MonthsServed, e.Separated, e.Retired,
			before.Cents, before.Reason, after.Cents, after.Reason)
	}
	return nil
}
