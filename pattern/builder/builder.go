// Package builder demonstrates the builder pattern on invoice assembly.
//
// The builder collects construction steps through a fluent interface and
// defers every validity check to Build, so a half configured invoice can
// never escape into the rest of the program.
package builder

import (
	"fmt"
	"time"

	"go.llib.dev/exemplar/pkg/errorkit"
)

// Money is an amount of minor currency units, such as cents.
type Money struct {
	Amount   int
	Currency string
}

const ErrNegativeAmount errorkit.Error = "money amount must not be negative"

func NewMoney(amount int, currency string) (Money, error) {
	if amount < 0 {
		return Money{}, ErrNegativeAmount.F("got %d %s", amount, currency)
	}
	return Money{Amount: amount, Currency: currency}, nil
}

func (m Money) Add(oth Money) (Money, error) {
	if m.Currency != oth.Currency {
		return Money{}, fmt.Errorf("builder: cannot add %s to %s", oth.Currency, m.Currency)
	}
	return Money{Amount: m.Amount + oth.Amount, Currency: m.Currency}, nil
}

func (m Money) Mul(n int) Money {
	return Money{Amount: m.Amount * n, Currency: m.Currency}
}

func (m Money) String() string {
	return fmt.Sprintf("%d.%02d %s", m.Amount/100, m.Amount%100, m.Currency)
}

// Invoice is the immutable product of the builder.
type Invoice struct {
	Number   string
	Customer string
	Lines    []InvoiceLine
	DueAt    time.Time
	Total    Money
}

type InvoiceLine struct {
	Description string
	Quantity    int
	Unit        Money
}

func (l InvoiceLine) Total() Money { return l.Unit.Mul(l.Quantity) }

const (
	ErrMissingCustomer errorkit.Error = "invoice customer is required"
	ErrNoLines         errorkit.Error = "an invoice needs at least one line"
	ErrInvalidQuantity errorkit.Error = "line quantity must be positive"
)

// InvoiceBuilder accumulates the construction steps of an Invoice.
// The zero value is not usable, start with NewInvoice.
type InvoiceBuilder struct {
	number   string
	customer string
	lines    []InvoiceLine
	issuedAt time.Time
	dueIn    time.Duration
}

// NewInvoice starts the construction of the invoice with the given number,
// issued at the given time, due in 30 days unless WithDue changes it.
func NewInvoice(number string, issuedAt time.Time) *InvoiceBuilder {
	return &InvoiceBuilder{
		number:   number,
		issuedAt: issuedAt,
		dueIn:    30 * 24 * time.Hour,
	}
}

// WithCustomer sets the billed party.
func (b *InvoiceBuilder) WithCustomer(name string) *InvoiceBuilder {
	b.customer = name
	return b
}

// AddLine appends a billable line. Validation happens in Build.
func (b *InvoiceBuilder) AddLine(description string, quantity int, unit Money) *InvoiceBuilder {
	b.lines = append(b.lines, InvoiceLine{Description: description, Quantity: quantity, Unit: unit})
	return b
}

// WithDue sets how many days after issuing the invoice is due.
func (b *InvoiceBuilder) WithDue(days int) *InvoiceBuilder {
	b.dueIn = time.Duration(days) * 24 * time.Hour
	return b
}

// Build validates the collected steps and assembles the Invoice.
// All violations are reported together, not just the first one found.
func (b *InvoiceBuilder) Build() (Invoice, error) {
	var errs []error
	if b.customer == "" {
		errs = append(errs, ErrMissingCustomer)
	}
	if len(b.lines) == 0 {
		errs = append(errs, ErrNoLines)
	}
	var total Money
	for i, line := range b.lines {
		if line.Quantity <= 0 {
			errs = append(errs, ErrInvalidQuantity.F("line %d (%s) has quantity %d",
				i+1, line.Description, line.Quantity))
			continue
		}
		if line.Unit.Amount < 0 {
			errs = append(errs, ErrNegativeAmount.F("line %d (%s) has unit price %d",
				i+1, line.Description, line.Unit.Amount))
			continue
		}
		if total.Currency == "" {
			total.Currency = line.Unit.Currency
		}
		sum, err := total.Add(line.Total())
		if err != nil {
			errs = append(errs, err)
			continue
		}
		total = sum
	}
	if err := errorkit.Merge(errs...); err != nil {
		return Invoice{}, err
	}
	return Invoice{
		Number:   b.number,
		Customer: b.customer,
		Lines:    append([]InvoiceLine(nil), b.lines...),
		DueAt:    b.issuedAt.Add(b.dueIn),
		Total:    total,
	}, nil
}
