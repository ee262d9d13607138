package builder

import (
	"context"
	"fmt"
	"io"
	"time"
)

// Demo builds a valid invoice step by step, then shows how Build
// rejects an invoice that violates the invariants.
func Demo(ctx context.Context, w io.Writer) error {
	issuedAt := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)

	invoice, err := NewInvoice("INV-1001", issuedAt).
		WithCustomer("ACME Ltd").
		AddLine("consulting day", 2, Money{Amount: 80000, Currency: "EUR"}).
		AddLine("travel expenses", 1, Money{Amount: 12550, Currency: "EUR"}).
		WithDue(14).
		Build()
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "invoice %s for %s\n", invoice.Number, invoice.Customer)
	for _, line := range invoice.Lines {
		fmt.Fprintf(w, "  %dx %s @ %s = %s\n", line.Quantity, line.Description, line.Unit, line.Total())
	}
	fmt.Fprintf(w, "  total: %s, due at %s\n", invoice.Total, invoice.DueAt.Format("2006-01-02"))

	_, err = NewInvoice("INV-1002", issuedAt).
		AddLine("mystery item", 0, Money{Amount: -500, Currency: "EUR"}).
		Build()
	fmt.Fprintf(w, "a broken build is rejected:\n%v\n", err)
	return nil
}
