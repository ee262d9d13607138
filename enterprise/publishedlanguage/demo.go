package publishedlanguage

import (
	"context"
	"fmt"
	"io"
)

// The demo's published language: an order placement event whose second
// version learned about currencies. Sales still publishes v1.

type orderPlacedV1 struct {
	OrderID    string `json:"order_id"`
	TotalCents int    `json:"total_cents"`
}

func (orderPlacedV1) MessageName() string { return "order-placed" }

func (orderPlacedV1) MessageVersion() int { return 1 }

type orderPlacedV2 struct {
	OrderID    string `json:"order_id"`
	TotalCents int    `json:"total_cents"`
	Currency   string `json:"currency"`
}

func (orderPlacedV2) MessageName() string { return "order-placed" }

func (orderPlacedV2) MessageVersion() int { return 2 }

// Demo lets an old sales context publish a v1 event and a newer billing
// context consume it at v2 through an upcast, then shows the failure modes.
func Demo(ctx context.Context, w io.Writer) error {
	// the sales context still speaks v1 only
	var sales Registry
	if err := sales.Register(orderPlacedV1{}); err != nil {
		return err
	}

	// the billing context speaks v2, and knows how to lift v1 envelopes
	var billing Registry
	if err := billing.Register(orderPlacedV1{}); err != nil {
		return err
	}
	if err := billing.Register(orderPlacedV2{}); err != nil {
		return err
	}
	billing.Upcast("order-placed", 1, func(msg Message) (Message, error) {
		old := msg.(orderPlacedV1)
		return orderPlacedV2{
			OrderID:    old.OrderID,
			TotalCents: old.TotalCents,
			Currency:   "EUR", // the v1 era was implicitly euro only
		}, nil
	})

	envelope, err := sales.Encode(orderPlacedV1{OrderID: "ORD-1", TotalCents: 4200})
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "sales publishes %s v%d: %s\n", envelope.Name, envelope.Version, envelope.Payload)

	msg, err := billing.Decode(envelope)
	if err != nil {
		return err
	}
	placed := msg.(orderPlacedV2)
	fmt.Fprintf(w, "billing consumes it at v%d: order %s, total %d %s\n",
		placed.MessageVersion(), placed.OrderID, placed.TotalCents, placed.Currency)

	if _, err := billing.Decode(Envelope{Name: "customer-renamed", Version: 1}); err != nil {
		fmt.Fprintf(w, "a foreign event is refused: %v\n", err)
	}
	if _, err := billing.Decode(Envelope{Name: "order-placed", Version: 9, Payload: []byte(`{}`)}); err != nil {
		fmt.Fprintf(w, "an unknown version is refused: %v\n", err)
	}
	if _, err := billing.Decode(Envelope{Name: "order-placed", Version: 1, Payload: []byte(`{"total_cents":`)}); err != nil {
		fmt.Fprintf(w, "a garbled payload is refused: %v\n", err)
	}
	return nil
}
