package contextmap_test

import (
	"strings"
	"testing"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"

	"go.llib.dev/exemplar/enterprise/contextmap"
)

func TestMap_AddContext(t *testing.T) {
	t.Run("contexts land on the map", func(t *testing.T) {
		var m contextmap.Map
		assert.NoError(t, m.AddContext(contextmap.Context{Name: "sales"}))
		assert.NoError(t, m.AddContext(contextmap.Context{Name: "billing"}))
		assert.Equal(t, 2, len(m.Contexts()))
	})

	t.Run("a context without a name is rejected", func(t *testing.T) {
		var m contextmap.Map
		assert.Error(t, m.AddContext(contextmap.Context{}))
	})

	t.Run("the same name cannot land twice", func(t *testing.T) {
		var m contextmap.Map
		assert.NoError(t, m.AddContext(contextmap.Context{Name: "sales"}))
		assert.ErrorIs(t, m.AddContext(contextmap.Context{Name: "sales"}),
			contextmap.ErrDuplicateContext)
	})
}

func TestMap_Relate(t *testing.T) {
	makeMap := func(tb testing.TB) *contextmap.Map {
		var m contextmap.Map
		assert.NoError(tb, m.AddContext(contextmap.Context{Name: "sales"}))
		assert.NoError(tb, m.AddContext(contextmap.Context{Name: "billing"}))
		return &m
	}

	t.Run("a relation between known contexts is accepted", func(t *testing.T) {
		m := makeMap(t)
		err := m.Relate(contextmap.Relation{
			Upstream: "sales", Downstream: "billing", Pattern: contextmap.CustomerSupplier,
		})
		assert.NoError(t, err)
		assert.Equal(t, 1, len(m.Relations()))
	})

	t.Run("both directions may exist between two contexts", func(t *testing.T) {
		m := makeMap(t)
		assert.NoError(t, m.Relate(contextmap.Relation{
			Upstream: "sales", Downstream: "billing", Pattern: contextmap.PublishedLanguage,
		}))
		assert.NoError(t, m.Relate(contextmap.Relation{
			Upstream: "billing", Downstream: "sales", Pattern: contextmap.Conformist,
		}))
	})

	t.Run("unknown context is rejected", func(t *testing.T) {
		m := makeMap(t)
		err := m.Relate(contextmap.Relation{
			Upstream: "sales", Downstream: "warehouse", Pattern: contextmap.Partnership,
		})
		assert.ErrorIs(t, err, contextmap.ErrUnknownContext)
	})

	t.Run("self relation is rejected", func(t *testing.T) {
		m := makeMap(t)
		err := m.Relate(contextmap.Relation{
			Upstream: "sales", Downstream: "sales", Pattern: contextmap.Partnership,
		})
		assert.ErrorIs(t, err, contextmap.ErrSelfRelation)
	})

	t.Run("duplicate relation is rejected", func(t *testing.T) {
		m := makeMap(t)
		relation := contextmap.Relation{
			Upstream: "sales", Downstream: "billing", Pattern: contextmap.SharedKernel,
		}
		assert.NoError(t, m.Relate(relation))
		assert.ErrorIs(t, m.Relate(relation), contextmap.ErrDuplicateRelation)
	})

	t.Run("made up integration pattern is rejected", func(t *testing.T) {
		m := makeMap(t)
		err := m.Relate(contextmap.Relation{
			Upstream: "sales", Downstream: "billing", Pattern: "wishful thinking",
		})
		assert.ErrorIs(t, err, contextmap.ErrInvalidPattern)
	})
}

func TestPattern_Valid(t *testing.T) {
	type TC struct {
		Pattern contextmap.Pattern
		OK      bool
	}
	testcase.TableTest(t, map[string]TC{
		"partnership":          {Pattern: contextmap.Partnership, OK: true},
		"shared kernel":        {Pattern: contextmap.SharedKernel, OK: true},
		"customer/supplier":    {Pattern: contextmap.CustomerSupplier, OK: true},
		"conformist":           {Pattern: contextmap.Conformist, OK: true},
		"anticorruption layer": {Pattern: contextmap.AnticorruptionLayer, OK: true},
		"open host service":    {Pattern: contextmap.OpenHostService, OK: true},
		"published language":   {Pattern: contextmap.PublishedLanguage, OK: true},
		"separate ways":        {Pattern: contextmap.SeparateWays, OK: true},
		"empty":                {Pattern: "", OK: false},
		"unknown":              {Pattern: "big ball of mud", OK: false},
	}, func(t *testcase.T, tc TC) {
		t.Must.Equal(tc.OK, tc.Pattern.Valid())
	})
}

func TestMap_Validate(t *testing.T) {
	t.Run("an empty map is valid", func(t *testing.T) {
		var m contextmap.Map
		assert.NoError(t, m.Validate())
	})

	t.Run("a map built through the mutators is valid", func(t *testing.T) {
		var m contextmap.Map
		assert.NoError(t, m.AddContext(contextmap.Context{Name: "a"}))
		assert.NoError(t, m.AddContext(contextmap.Context{Name: "b"}))
		assert.NoError(t, m.Relate(contextmap.Relation{
			Upstream: "a", Downstream: "b", Pattern: contextmap.SeparateWays,
		}))
		assert.NoError(t, m.Validate())
	})
}

func TestMap_FprintMap(t *testing.T) {
	var m contextmap.Map
	assert.NoError(t, m.AddContext(contextmap.Context{Name: "sales", Purpose: "sell"}))
	assert.NoError(t, m.AddContext(contextmap.Context{Name: "billing", Purpose: "bill"}))
	assert.NoError(t, m.Relate(contextmap.Relation{
		Upstream: "sales", Downstream: "billing", Pattern: contextmap.AnticorruptionLayer,
	}))

	var buf strings.Builder
	assert.NoError(t, m.FprintMap(&buf))

	out := buf.String()
	assert.Contain(t, out, "CONTEXT")
	assert.Contain(t, out, "UPSTREAM")
	assert.Contain(t, out, "anticorruption layer")
	assert.True(t, strings.Index(out, "billing") < strings.Index(out, "sales"),
		"contexts are listed alphabetically")
}

func TestTranslateCustomerToPayer(t *testing.T) {
	t.Run("a well-formed customer translates", func(t *testing.T) {
		payer, err := contextmap.TranslateCustomerToPayer(contextmap.SalesCustomer{
			FullName:     " Jane Smith ",
			Email:        "JANE@Example.com",
			DiscountTier: "gold",
		})
		assert.NoError(t, err)
		assert.Equal(t, "Jane Smith", payer.LegalName)
		assert.Equal(t, "jane@example.com", payer.InvoiceEmail)
		assert.False(t, payer.Delinquent)
	})

	t.Run("the blocked tier maps to delinquency", func(t *testing.T) {
		payer, err := contextmap.TranslateCustomerToPayer(contextmap.SalesCustomer{
			FullName: "John Doe", Email: "j@example.com", DiscountTier: "Blocked",
		})
		assert.NoError(t, err)
		assert.True(t, payer.Delinquent)
	})

	t.Run("blank name fails the translation", func(t *testing.T) {
		_, err := contextmap.TranslateCustomerToPayer(contextmap.SalesCustomer{
			FullName: "   ", Email: "j@example.com",
		})
		assert.ErrorIs(t, err, contextmap.ErrUntranslatable)
	})

	t.Run("undeliverable email fails the translation", func(t *testing.T) {
		_, err := contextmap.TranslateCustomerToPayer(contextmap.SalesCustomer{
			FullName: "John Doe", Email: "not-an-email",
		})
		assert.ErrorIs(t, err, contextmap.ErrUntranslatable)
	})
}
