// Package polymorphism shows the replace conditional with polymorphism
// refactoring on subscription pricing. Before switches on the plan name,
// so every new plan means editing that switch. After gives each plan its
// own type behind the Plan interface, and pricing becomes method dispatch.
package polymorphism

import "go.llib.dev/exemplar/pkg/errorkit"

const ErrUnknownPlan errorkit.Error = "unknown subscription plan"

// Before prices a subscription by switching on the plan name.
func Before(plan string, seats int) (int, error) {
	switch plan {
	case "free":
		return 0, nil
	case "pro":
		return 2900 + 900*seats, nil
	case "enterprise":
		capped := seats
		if capped > 100 {
			capped = 100
		}
		return 49900 + 500*capped, nil
	default:
		return 0, ErrUnknownPlan.F("%q", plan)
	}
}

// Plan prices itself; a new plan adds a type instead of editing a switch.
type Plan interface {
	Name() string
	MonthlyCents(seats int) int
}

type FreePlan struct{}

func (FreePlan) Name() string { return "free" }

func (FreePlan) MonthlyCents(seats int) int { return 0 }

type ProPlan struct{}

func (ProPlan) Name() string { return "pro" }

func (ProPlan) MonthlyCents(seats int) int { return 2900 + 900*seats }

// EnterprisePlan bills at most a hundred seats.
type EnterprisePlan struct{}

func (EnterprisePlan) Name() string { return "enterprise" }

func (EnterprisePlan) MonthlyCents(seats int) int {
	return 49900 + 500*min(seats, 100)
}

// Plans lists the catalog in display order.
func Plans() []Plan { return []Plan{FreePlan{}, ProPlan{}, EnterprisePlan{}} }

// PlanNamed resolves a plan by its name.
func PlanNamed(name string) (Plan, bool) {
	for _, plan := range Plans() {
		if plan.Name() == name {
			return plan, true
		}
	}
	return nil, false
}

// After prices the same subscription through interface dispatch.
func After(plan string, seats int) (int, error) {
	p, ok := PlanNamed(plan)
	if !ok {
		return 0, ErrUnknownPlan.F("%q", plan)
	}
	return p.MonthlyCents(seats), nil
}
