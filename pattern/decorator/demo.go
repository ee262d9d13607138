package decorator

import (
	"context"
	"fmt"
	"io"
)

// Demo quotes the same item through two differently ordered decorator
// chains to make the effect of the wrapping order visible.
func Demo(ctx context.Context, w io.Writer) error {
	base := BasePrice{
		"yearly license": 99900,
		"support hour":   12000,
	}

	cents, err := base.Price("yearly license")
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "base price of a yearly license: %s\n", formatCents(cents))

	discountThenVAT := VAT(SeasonalDiscount(base, 10), 27)
	cents, err = discountThenVAT.Price("yearly license")
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "10%% discount, then 27%% VAT: %s\n", formatCents(cents))

	vatThenDiscount := SeasonalDiscount(VAT(base, 27), 10)
	cents, err = vatThenDiscount.Price("yearly license")
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "27%% VAT, then 10%% discount: %s\n", formatCents(cents))

	rounded := Rounding(discountThenVAT, 500)
	cents, err = rounded.Price("yearly license")
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "same, rounded up to 5 EUR steps: %s\n", formatCents(cents))

	if _, err := rounded.Price("teleportation"); err != nil {
		fmt.Fprintf(w, "errors pass through the whole chain: %v\n", err)
	}
	return nil
}
