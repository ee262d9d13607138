package gateway

import (
	"context"
	"fmt"
	"io"
	"net/http/httptest"
)

// Demo runs the payment flow end to end over a real loopback socket:
// the HTTP adapter on one side, the sandbox provider on the other.
func Demo(ctx context.Context, w io.Writer) error {
	server := httptest.NewServer(NewSandbox())
	defer server.Close()

	var gw Gateway = HTTPGateway{BaseURL: server.URL, Client: server.Client()}

	okCharge := Charge{
		Amount:    Money{Cents: 4900, Currency: "EUR"},
		Card:      "4242424242424242",
		Reference: "ord-7001",
	}
	receipt, err := CollectPayment(ctx, gw, okCharge)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "charged %s for %q: %s %s\n",
		okCharge.Amount, okCharge.Reference, receipt.ProviderRef, receipt.Status)

	declined := Charge{
		Amount:    Money{Cents: 129900, Currency: "EUR"},
		Card:      "4000000000000002",
		Reference: "ord-7002",
	}
	if _, err := gw.Charge(ctx, declined); err != nil {
		fmt.Fprintf(w, "charging card %s: %s\n", declined.Card, err)
	}

	lowFunds := Charge{
		Amount:    Money{Cents: 250, Currency: "EUR"},
		Card:      "4000000000009995",
		Reference: "ord-7003",
	}
	if _, err := gw.Charge(ctx, lowFunds); err != nil {
		fmt.Fprintf(w, "charging card %s: %s\n", lowFunds.Card, err)
	}

	if err := gw.Refund(ctx, receipt.ProviderRef); err != nil {
		return err
	}
	fmt.Fprintf(w, "refunded %s for %q\n", receipt.ProviderRef, okCharge.Reference)

	if err := gw.Refund(ctx, "pay-9999"); err != nil {
		fmt.Fprintf(w, "refunding a made up ref: %s\n", err)
	}
	return nil
}
