// Package facade demonstrates the facade pattern on order checkout.
//
// PlaceOrder is the single entry point hiding three subsystems:
// an inventory ledger, a payment authorizer, and a dispatch planner.
// The facade owns the call order and the compensation logic, so callers
// never learn that reserving stock must precede payment, or that a failed
// authorization must release the reservation again.
package facade

import (
	"context"
	"fmt"
	"strings"

	"go.llib.dev/exemplar/pkg/errorkit"
)

// Order is the request the facade accepts.
type Order struct {
	Reference string
	SKU       string
	Quantity  int
	CardToken string
	Address   string
}

// Confirmation is the summarized outcome of a successful checkout.
type Confirmation struct {
	Reference   string
	PaymentRef  string
	DispatchDay string
}

const (
	ErrOutOfStock       errorkit.Error = "not enough stock to reserve"
	ErrPaymentDeclined  errorkit.Error = "payment authorization declined"
	ErrInvalidOrder     errorkit.Error = "order is invalid"
	ErrUnknownSKU       errorkit.Error = "unknown stock keeping unit"
	ErrNothingToRelease errorkit.Error = "no reservation to release"
)

// Checkout is the facade over the three subsystems.
type Checkout struct {
	inventory *inventoryLedger
	payments  *paymentAuthorizer
	dispatch  *dispatchPlanner
}

// NewCheckout wires up the demonstration subsystems with fixed sample state.
func NewCheckout() *Checkout {
	return &Checkout{
		inventory: &inventoryLedger{stock: map[string]int{
			"SKU-OAK-TABLE": 3,
			"SKU-TEA-MUG":   120,
		}},
		payments: &paymentAuthorizer{},
		dispatch: &dispatchPlanner{},
	}
}

// PlaceOrder runs the whole checkout: reserve stock, authorize payment,
// schedule dispatch. When a later step fails, the earlier steps are
// compensated, so a declined payment releases the reserved stock.
func (c *Checkout) PlaceOrder(ctx context.Context, order Order) (Confirmation, error) {
	if order.Quantity <= 0 {
		return Confirmation{}, ErrInvalidOrder.F("quantity must be positive, got %d", order.Quantity)
	}
	if order.Reference == "" {
		return Confirmation{}, ErrInvalidOrder.F("reference is required")
	}

	if err := c.inventory.Reserve(ctx, order.SKU, order.Quantity); err != nil {
		return Confirmation{}, err
	}

	paymentRef, err := c.payments.Authorize(ctx, order.CardToken, order.Reference)
	if err != nil {
		return Confirmation{}, errorkit.Merge(err, c.inventory.Release(ctx, order.SKU, order.Quantity))
	}

	day, err := c.dispatch.Schedule(ctx, order.Address, order.Quantity)
	if err != nil {
		return Confirmation{}, errorkit.Merge(err,
			c.payments.Void(ctx, paymentRef),
			c.inventory.Release(ctx, order.SKU, order.Quantity))
	}

	return Confirmation{
		Reference:   order.Reference,
		PaymentRef:  paymentRef,
		DispatchDay: day,
	}, nil
}

// StockOf reports the currently reservable quantity of a SKU.
func (c *Checkout) StockOf(sku string) int {
	return c.inventory.StockOf(sku)
}

// inventoryLedger is the stock subsystem behind the facade.
type inventoryLedger struct {
	stock map[string]int
}

func (l *inventoryLedger) Reserve(ctx context.Context, sku string, quantity int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	held, ok := l.stock[sku]
	if !ok {
		return ErrUnknownSKU.F("%q", sku)
	}
	if held < quantity {
		return ErrOutOfStock.F("%q has %d, requested %d", sku, held, quantity)
	}
	l.stock[sku] = held - quantity
	return nil
}

func (l *inventoryLedger) Release(ctx context.Context, sku string, quantity int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, ok := l.stock[sku]; !ok {
		return ErrNothingToRelease.F("%q", sku)
	}
	l.stock[sku] += quantity
	return nil
}

func (l *inventoryLedger) StockOf(sku string) int { return l.stock[sku] }

// paymentAuthorizer simulates the payment subsystem.
// Card tokens with the "expired-" prefix are declined.
type paymentAuthorizer struct {
	sequence int
}

func (p *paymentAuthorizer) Authorize(ctx context.Context, cardToken, reference string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(cardToken) < 8 {
		return "", ErrPaymentDeclined.F("card token is too short")
	}
	if strings.HasPrefix(cardToken, "expired-") {
		return "", ErrPaymentDeclined.F("card of %s has expired", reference)
	}
	p.sequence++
	return fmt.Sprintf("pay-%04d", p.sequence), nil
}

func (p *paymentAuthorizer) Void(ctx context.Context, paymentRef string) error {
	return ctx.Err()
}

// dispatchPlanner simulates the delivery subsystem.
// Bulky orders take a day longer to pick.
type dispatchPlanner struct{}

func (d *dispatchPlanner) Schedule(ctx context.Context, address string, quantity int) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if address == "" {
		return "", ErrInvalidOrder.F("delivery address is required")
	}
	if 10 < quantity {
		return "day after tomorrow", nil
	}
	return "tomorrow", nil
}
