package guardclauses_test

import (
	"testing"

	"go.llib.dev/testcase"

	"go.llib.dev/exemplar/refactoring/guardclauses"
)

func TestBeforeAndAfterAgree(t *testing.T) {
	s := testcase.NewSpec(t)

	employee := testcase.Let(s, func(t *testcase.T) guardclauses.Employee {
		return guardclauses.Employee{
			Separated:    t.Random.Bool(),
			Retired:      t.Random.Bool(),
			MonthsServed: t.Random.IntBetween(0, 480),
			BaseCents:    t.Random.IntBetween(0, 500000),
		}
	})

	s.Test(`the guard form decides the same payout for any employee`, func(t *testcase.T) {
		t.Must.Equal(
			guardclauses.Before(employee.Get(t)),
			guardclauses.After(employee.Get(t)))
	})
}

func TestPayoutRules(t *testing.T) {
	type TC struct {
		Employee guardclauses.Employee
		Out      guardclauses.Payout
	}
	testcase.TableTest(t, map[string]TC{
		"separated leaves with nothing": {
			Employee: guardclauses.Employee{Separated: true, MonthsServed: 30, BaseCents: 1000},
			Out:      guardclauses.Payout{Reason: "separated"},
		},
		"retired leaves with nothing": {
			Employee: guardclauses.Employee{Retired: true, MonthsServed: 300, BaseCents: 1000},
			Out:      guardclauses.Payout{Reason: "retired"},
		},
		"under a year halves the base": {
			Employee: guardclauses.Employee{MonthsServed: 11, BaseCents: 1000},
			Out:      guardclauses.Payout{Cents: 500, Reason: "probation"},
		},
		"standard tenure pays the base": {
			Employee: guardclauses.Employee{MonthsServed: 12, BaseCents: 1000},
			Out:      guardclauses.Payout{Cents: 1000, Reason: "standard"},
		},
		"from five years up the base grows by half": {
			Employee: guardclauses.Employee{MonthsServed: 60, BaseCents: 1000},
			Out:      guardclauses.Payout{Cents: 1500, Reason: "seniority"},
		},
		"separation wins over retirement": {
			Employee: guardclauses.Employee{Separated: true, Retired: true, BaseCents: 1000},
			Out:      guardclauses.Payout{Reason: "separated"},
		},
	}, func(t *testcase.T, tc TC) {
		t.Must.Equal(tc.Out, guardclauses.Before(tc.Employee))
		t.Must.Equal(tc.Out, guardclauses.After(tc.Employee))
	})
}
