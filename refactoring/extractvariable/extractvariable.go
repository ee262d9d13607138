// Package extractvariable shows the extract variable refactoring on a
// freight quote. Before answers in one dense expression full of magic
// numbers, a repeated rate and a lookup trick. After names every part,
// so the formula reads as the tariff it implements.
package extractvariable

// Shipment is the freight subject.
type Shipment struct {
	WeightKG   int
	DistanceKM int
	Fragile    bool
}

// Before quotes the freight in one sitting.
func Before(s Shipment) int {
	return s.WeightKG*140 + s.DistanceKM*3 +
		map[bool]int{true: 500, false: 0}[s.Fragile] -
		min(max(s.WeightKG-50, 0)*140/10, 1000)
}

// After quotes the same freight with every part named.
func After(s Shipment) int {
	const (
		ratePerKG        = 140
		fuelPerKM        = 3
		fragileSurcharge = 500
		bulkThresholdKG  = 50
		bulkDiscountCap  = 1000
	)
	base := s.WeightKG * ratePerKG
	fuel := s.DistanceKM * fuelPerKM
	surcharge := 0
	if s.Fragile {
		surcharge = fragileSurcharge
	}
	excessKG := max(s.WeightKG-bulkThresholdKG, 0)
	bulkDiscount := min(excessKG*ratePerKG/10, bulkDiscountCap)
	return base + fuel + surcharge - bulkDiscount
}
