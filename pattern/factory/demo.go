package factory

import (
	"context"
	"fmt"
	"io"
	"time"
)

// Demo exports the same receipt in every built-in format,
// then shows how the factory reports an unknown format.
func Demo(ctx context.Context, w io.Writer) error {
	receipt := Receipt{
		Number:   "R-2024-0042",
		IssuedAt: time.Date(2024, time.March, 14, 0, 0, 0, 0, time.UTC),
		Items: []ReceiptItem{
			{Name: "espresso", Quantity: 2, UnitCents: 250, Currency: "EUR"},
			{Name: "croissant", Quantity: 1, UnitCents: 320, Currency: "EUR"},
		},
	}

	for _, format := range builtInFormats() {
		exporter, err := New(format)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "--- %s (%s) ---\n", format, exporter.ContentType())
		if err := exporter.Export(w, receipt); err != nil {
			return err
		}
	}

	if _, err := New("xml"); err != nil {
		fmt.Fprintf(w, "--- asking for an unregistered format ---\n%v\n", err)
	}
	return nil
}
