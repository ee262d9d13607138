// Package extractfunction shows the extract function refactoring on an
// invoice statement. Before computes totals, the volume discount and the
// money layout inline, in one sitting. After says the same thing through
// small named helpers, so every rule has a name and the money layout
// exists exactly once. Both render byte identical statements.
package extractfunction

import (
	"fmt"
	"strings"
)

// Line is one billed position of an invoice.
type Line struct {
	Description string
	Quantity    int
	UnitCents   int
}

// Invoice is what the statement is rendered for.
type Invoice struct {
	Customer string
	Lines    []Line
}

// Before renders the statement monolithically.
// The discount rule hides mid-function and the money format is spelled
// out four separate times.
func Before(inv Invoice) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Statement for %s\n", inv.Customer)
	subtotal := 0
	for _, line := range inv.Lines {
		total := line.Quantity * line.UnitCents
		subtotal += total
		fmt.Fprintf(&b, "  %-9s %d x %d.%02d = %d.%02d\n",
			line.Description, line.Quantity,
			line.UnitCents/100, line.UnitCents%100,
			total/100, total%100)
	}
	discount := 0
	if subtotal >= 100000 {
		discount = subtotal * 5 / 100
	}
	fmt.Fprintf(&b, "subtotal %d.%02d\n", subtotal/100, subtotal%100)
	fmt.Fprintf(&b, "volume discount %d.%02d\n", discount/100, discount%100)
	fmt.Fprintf(&b, "amount due %d.%02d\n", (subtotal-discount)/100, (subtotal-discount)%100)
	return b.String()
}

// After renders the same statement through extracted helpers.
func After(inv Invoice) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Statement for %s\n", inv.Customer)
	for _, line := range inv.Lines {
		b.WriteString(renderLine(line))
	}
	sub := subtotal(inv)
	disc := volumeDiscount(sub)
	fmt.Fprintf(&b, "subtotal %s\n", formatCents(sub))
	fmt.Fprintf(&b, "volume discount %s\n", formatCents(disc))
	fmt.Fprintf(&b, "amount due %s\n", formatCents(sub-disc))
	return b.String()
}

func renderLine(line Line) string {
	return fmt.Sprintf("  %-9s %d x %s = %s\n",
		line.Description, line.Quantity,
		formatCents(line.UnitCents), formatCents(lineTotal(line)))
}

func lineTotal(line Line) int { return line.Quantity * line.UnitCents }

func subtotal(inv Invoice) int {
	var sum int
	for _, line := range inv.Lines {
		sum += lineTotal(line)
	}
	return sum
}

// volumeDiscount is 5% once the subtotal reaches a thousand whole units.
func volumeDiscount(subtotal int) int {
	if subtotal < 100000 {
		return 0
	}
	return subtotal * 5 / 100
}

func formatCents(cents int) string {
	return fmt.Sprintf("%d.%02d", cents/100, cents%100)
}
