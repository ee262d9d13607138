package polymorphism

import (
	"context"
	"fmt"
	"io"
)

// Demo prices a twelve seat subscription on every plan through both forms.
func Demo(ctx context.Context, w io.Writer) error {
	for _, plan := range Plans() {
		before, err := Before(plan.Name(), 12)
		if err != nil {
			return err
		}
		after, err := After(plan.Name(), 12)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%-10s 12 seats before: %d after: %d\n", plan.Name(), before, after)
	}
	if _, err := After("platinum", 3); err != nil {
		fmt.Fprintf(w, "asking for an unlisted plan: %s\n", err)
	}
	return nil
}
