// Package guardclauses shows the replace nested conditional with guard
// clauses refactoring on a payout decision. Before nests the special
// cases, so the common path sits several levels deep. After lets each
// special case leave first, and the remaining code reads top down.
package guardclauses

// Employee is the payout subject.
type Employee struct {
	Separated    bool
	Retired      bool
	MonthsServed int
	BaseCents    int
}

// Payout is the computed amount with the rule that produced it.
type Payout struct {
	Cents  int
	Reason string
}

// Before decides the payout through nested conditionals.
func Before(e Employee) Payout {
	var result Payout
	if !e.Separated {
		if !e.Retired {
			if e.MonthsServed < 12 {
				result = Payout{Cents: e.BaseCents / 2, Reason: "probation"}
			} else {
				if e.MonthsServed >= 60 {
					result = Payout{Cents: e.BaseCents + e.BaseCents/2, Reason: "seniority"}
				} else {
					result = Payout{Cents: e.BaseCents, Reason: "standard"}
				}
			}
		} else {
			result = Payout{Reason: "retired"}
		}
	} else {
		result = Payout{Reason: "separated"}
	}
	return result
}

// After decides the same payout with guard returns.
func After(e Employee) Payout {
	if e.Separated {
		return Payout{Reason: "separated"}
	}
	if e.Retired {
		return Payout{Reason: "retired"}
	}
	if e.MonthsServed < 12 {
		return Payout{Cents: e.BaseCents / 2, Reason: "probation"}
	}
	if e.MonthsServed >= 60 {
		return Payout{Cents: e.BaseCents + e.BaseCents/2, Reason: "seniority"}
	}
	return Payout{Cents: e.BaseCents, Reason: "standard"}
}
