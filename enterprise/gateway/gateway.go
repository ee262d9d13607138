// Package gateway demonstrates the gateway idiom: the domain talks to a
// remote payment provider through a small port interface, and everything
// provider specific, the endpoints, the wire payloads, the error codes,
// stays inside the adapter behind it.
//
// The package ships two adapters for the same port. HTTPGateway is a real
// HTTP client against a provider REST API. Sandbox is a simulated provider
// with deterministic outcomes, meant to sit behind an httptest.Server.
package gateway

import (
	"context"
	"fmt"
	"time"

	"go.llib.dev/exemplar/pkg/errorkit"
)

const (
	ErrCardDeclined      errorkit.Error = "card was declined"
	ErrInsufficientFunds errorkit.Error = "card has insufficient funds"
	ErrProviderDown      errorkit.Error = "payment provider is unavailable"
	ErrUnknownCharge     errorkit.Error = "charge is not known to the provider"
	ErrInvalidCharge     errorkit.Error = "charge request is invalid"
)

// Money is an amount expressed in the minor unit of its currency.
type Money struct {
	Cents    int
	Currency string
}

func (m Money) String() string {
	return fmt.Sprintf("%d.%02d %s", m.Cents/100, m.Cents%100, m.Currency)
}

// Charge is a request to collect an amount from a card.
type Charge struct {
	Amount    Money
	Card      string
	Reference string
}

// Validate reports whether the charge is worth a provider round trip.
func (c Charge) Validate() error {
	if c.Amount.Cents <= 0 {
		return ErrInvalidCharge.F("amount must be positive, got %d", c.Amount.Cents)
	}
	if c.Amount.Currency == "" {
		return ErrInvalidCharge.F("currency is missing")
	}
	if c.Card == "" {
		return ErrInvalidCharge.F("card number is missing")
	}
	if c.Reference == "" {
		return ErrInvalidCharge.F("reference is missing")
	}
	return nil
}

// Receipt is the provider's settled answer to a successful charge.
// Failed charges surface as errors, never as receipts.
type Receipt struct {
	ProviderRef string
	Status      string
	ChargedAt   time.Time
}

// StatusSucceeded is the terminal status of a settled charge.
const StatusSucceeded = "succeeded"

// Gateway is the port the domain programs against.
type Gateway interface {
	// Charge collects the requested amount and returns the settled receipt.
	Charge(ctx context.Context, charge Charge) (Receipt, error)
	// Refund reverses a previously settled charge by its provider reference.
	Refund(ctx context.Context, providerRef string) error
}

// CollectPayment is a thin domain service on top of the Gateway port.
// It guards against malformed requests before involving the provider.
func CollectPayment(ctx context.Context, gw Gateway, charge Charge) (Receipt, error) {
	if err := charge.Validate(); err != nil {
		return Receipt{}, err
	}
	receipt, err := gw.Charge(ctx, charge)
	if err != nil {
		return Receipt{}, fmt.Errorf("collect payment for %q: %w", charge.Reference, err)
	}
	return receipt, nil
}
