package activerecord

import (
	"context"
	"fmt"
	"io"

	"go.llib.dev/exemplar/pkg/errorkit"
)

// Demo binds an in-memory database and takes two products through the
// active record lifecycle, including the edges of the pattern: duplicate
// sku rejection and operations on records that were never inserted.
func Demo(ctx context.Context, w io.Writer) (rErr error) {
	if err := OpenInMemory(); err != nil {
		return err
	}
	defer errorkit.Finish(&rErr, Close)

	espresso := &Product{SKU: "SKU-ESP", Name: "espresso beans", UnitPriceCents: 1450, Currency: "EUR"}
	if err := espresso.Insert(ctx); err != nil {
		return err
	}
	grinder := &Product{SKU: "SKU-GRD", Name: "hand grinder", UnitPriceCents: 8900, Currency: "EUR"}
	if err := grinder.Insert(ctx); err != nil {
		return err
	}
	fmt.Fprintf(w, "inserted %q as #%d and %q as #%d\n", espresso.SKU, espresso.ID, grinder.SKU, grinder.ID)

	dupe := &Product{SKU: "SKU-ESP", Name: "imposter beans", UnitPriceCents: 1}
	if err := dupe.Insert(ctx); err != nil {
		fmt.Fprintln(w, "inserting a duplicate sku:", err)
	}

	espresso.UnitPriceCents = 1650
	if err := espresso.Update(ctx); err != nil {
		return err
	}
	fresh, found, err := BySKU(ctx, espresso.SKU)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("expected %q to be stored", espresso.SKU)
	}
	fmt.Fprintf(w, "%s now costs %d.%02d %s\n", fresh.Name, fresh.UnitPriceCents/100, fresh.UnitPriceCents%100, fresh.Currency)

	fmt.Fprintln(w, "catalog:")
	products, err := All(ctx)
	if err != nil {
		return err
	}
	for _, p := range products {
		fmt.Fprintf(w, "  #%d %s [%s] %d cents\n", p.ID, p.Name, p.SKU, p.UnitPriceCents)
	}

	if err := grinder.Delete(ctx); err != nil {
		return err
	}
	rest, err := All(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "after deleting the grinder the catalog holds %d product\n", len(rest))

	// a deleted record loses its id and may start a new life
	if err := grinder.Insert(ctx); err != nil {
		return err
	}
	fmt.Fprintf(w, "re-inserted %q as #%d\n", grinder.SKU, grinder.ID)

	ghost := &Product{SKU: "SKU-GHO", Name: "ghost"}
	if err := ghost.Update(ctx); err != nil {
		fmt.Fprintln(w, "updating before insert:", err)
	}
	return nil
}
