// Package parameterobject shows the introduce parameter object refactoring
// on quote pricing. Before takes six loose parameters, so call sites read
// as a row of unlabeled values. After moves them into a Quote struct whose
// fields are named at the call site and whose zero values mean defaults.
package parameterobject

// Before prices a quote through the long parameter list.
// Every new pricing input would grow the signature further.
func Before(widgets, unitCents int, destination string, express bool, taxBP, couponCents int) int {
	goods := widgets * unitCents
	freight := 4900
	switch destination {
	case "domestic":
		freight = 900
	case "eu":
		freight = 1900
	}
	if express {
		freight *= 2
	}
	discounted := goods + freight - couponCents
	if discounted < 0 {
		discounted = 0
	}
	return discounted * (10000 + taxBP) / 10000
}

// Quote is the parameter object: the pricing inputs travel under one name.
type Quote struct {
	Widgets     int
	UnitCents   int
	Destination string // default: domestic
	Express     bool
	TaxBP       int // tax in basis points; default: 2700
	CouponCents int
}

// After prices the same quote from the parameter object.
func After(q Quote) int {
	q = q.withDefaults()
	discounted := q.goods() + q.freight() - q.CouponCents
	if discounted < 0 {
		discounted = 0
	}
	return discounted * (10000 + q.TaxBP) / 10000
}

func (q Quote) withDefaults() Quote {
	if q.Destination == "" {
		q.Destination = "domestic"
	}
	if q.TaxBP == 0 {
		q.TaxBP = 2700
	}
	return q
}

func (q Quote) goods() int { return q.Widgets * q.UnitCents }

func (q Quote) freight() int {
	cost := 4900
	switch q.Destination {
	case "domestic":
		cost = 900
	case "eu":
		cost = 1900
	}
	if q.Express {
		cost *= 2
	}
	return cost
}
