package contextmap

import (
	"context"
	"fmt"
	"io"
)

// Demo draws the context map of a small commerce landscape,
// then runs one translation through the anticorruption layer on it.
func Demo(ctx context.Context, w io.Writer) error {
	var m Map
	for _, c := range []Context{
		{Name: "sales", Purpose: "win orders, manage customers"},
		{Name: "billing", Purpose: "invoice and collect payment"},
		{Name: "shipping", Purpose: "move boxes to customers"},
		{Name: "identity", Purpose: "authenticate everyone"},
	} {
		if err := m.AddContext(c); err != nil {
			return err
		}
	}
	for _, r := range []Relation{
		{Upstream: "sales", Downstream: "billing", Pattern: AnticorruptionLayer},
		{Upstream: "sales", Downstream: "shipping", Pattern: PublishedLanguage},
		{Upstream: "identity", Downstream: "sales", Pattern: OpenHostService},
		{Upstream: "identity", Downstream: "billing", Pattern: Conformist},
	} {
		if err := m.Relate(r); err != nil {
			return err
		}
	}
	if err := m.Validate(); err != nil {
		return err
	}
	if err := m.FprintMap(w); err != nil {
		return err
	}

	payer, err := TranslateCustomerToPayer(SalesCustomer{
		FullName:     "  Jane Smith ",
		Email:        "Jane.Smith@ACME.example",
		DiscountTier: "gold",
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "\nthrough the anticorruption layer: %q pays via %s (delinquent: %v)\n",
		payer.LegalName, payer.InvoiceEmail, payer.Delinquent)

	if err := m.Relate(Relation{Upstream: "sales", Downstream: "sales", Pattern: Partnership}); err != nil {
		fmt.Fprintf(w, "the map rejects nonsense: %v\n", err)
	}
	return nil
}
