// Package decorator demonstrates the decorator pattern on price quoting.
//
// Every decorator wraps a Pricer and layers one adjustment on top of the
// wrapped result, the same way io.Reader implementations wrap each other.
// The order of wrapping is the order of application, which the demo makes
// visible by quoting through two differently stacked chains.
package decorator

import (
	"fmt"

	"go.llib.dev/exemplar/pkg/errorkit"
)

// Pricer is the role interface the decorators wrap.
// Prices are amounts of minor currency units.
type Pricer interface {
	Price(item string) (cents int, err error)
}

// PricerFunc lets ordinary functions act as Pricer implementations.
type PricerFunc func(item string) (int, error)

func (fn PricerFunc) Price(item string) (int, error) { return fn(item) }

const ErrUnknownItem errorkit.Error = "no price known for item"

// BasePrice is the innermost Pricer, a fixed price list.
type BasePrice map[string]int

func (p BasePrice) Price(item string) (int, error) {
	cents, ok := p[item]
	if !ok {
		return 0, ErrUnknownItem.F("%q", item)
	}
	return cents, nil
}

// SeasonalDiscount decorates a Pricer with a percentage discount.
func SeasonalDiscount(inner Pricer, percent int) Pricer {
	return PricerFunc(func(item string) (int, error) {
		cents, err := inner.Price(item)
		if err != nil {
			return 0, err
		}
		return cents - cents*percent/100, nil
	})
}

// VAT decorates a Pricer with a value added tax of the given percentage.
func VAT(inner Pricer, percent int) Pricer {
	return PricerFunc(func(item string) (int, error) {
		cents, err := inner.Price(item)
		if err != nil {
			return 0, err
		}
		return cents + cents*percent/100, nil
	})
}

// Rounding decorates a Pricer by rounding the price up
// to the nearest multiple of step.
func Rounding(inner Pricer, step int) Pricer {
	return PricerFunc(func(item string) (int, error) {
		cents, err := inner.Price(item)
		if err != nil {
			return 0, err
		}
		if step <= 1 {
			return cents, nil
		}
		if rem := cents % step; rem != 0 {
			cents += step - rem
		}
		return cents, nil
	})
}

// Audit decorates a Pricer with a trace of every lookup going through it,
// showing that decorators can add behavior besides transforming the result.
func Audit(inner Pricer, trace func(item string, cents int)) Pricer {
	return PricerFunc(func(item string) (int, error) {
		cents, err := inner.Price(item)
		if err != nil {
			return 0, err
		}
		trace(item, cents)
		return cents, nil
	})
}

func formatCents(cents int) string {
	return fmt.Sprintf("%d.%02d EUR", cents/100, cents%100)
}
