package facade

import (
	"context"
	"fmt"
	"io"
)

// Demo places one order that sails through and one that fails at payment,
// showing that the failed one releases its stock reservation.
func Demo(ctx context.Context, w io.Writer) error {
	checkout := NewCheckout()

	confirmation, err := checkout.PlaceOrder(ctx, Order{
		Reference: "ORD-1",
		SKU:       "SKU-OAK-TABLE",
		Quantity:  2,
		CardToken: "tok-4242424242",
		Address:   "1 Main Street",
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "order %s confirmed: payment %s, dispatch %s\n",
		confirmation.Reference, confirmation.PaymentRef, confirmation.DispatchDay)
	fmt.Fprintf(w, "oak tables left in stock: %d\n", checkout.StockOf("SKU-OAK-TABLE"))

	_, err = checkout.PlaceOrder(ctx, Order{
		Reference: "ORD-2",
		SKU:       "SKU-OAK-TABLE",
		Quantity:  1,
		CardToken: "expired-9999",
		Address:   "2 Side Street",
	})
	fmt.Fprintf(w, "order ORD-2 failed: %v\n", err)
	fmt.Fprintf(w, "oak tables left in stock after the rollback: %d\n", checkout.StockOf("SKU-OAK-TABLE"))
	return nil
}
