package decorator_test

import (
	"testing"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/random"

	"go.llib.dev/exemplar/pattern/decorator"
)

func TestBasePrice(t *testing.T) {
	base := decorator.BasePrice{"tea": 250}

	t.Run("known item", func(t *testing.T) {
		cents, err := base.Price("tea")
		assert.NoError(t, err)
		assert.Equal(t, 250, cents)
	})

	t.Run("unknown item", func(t *testing.T) {
		_, err := base.Price("coffee")
		assert.ErrorIs(t, err, decorator.ErrUnknownItem)
	})
}

func TestSeasonalDiscount(t *testing.T) {
	type TC struct {
		Base    int
		Percent int
		Out     int
	}
	testcase.TableTest(t, map[string]TC{
		"ten percent off":     {Base: 1000, Percent: 10, Out: 900},
		"zero percent":        {Base: 1000, Percent: 0, Out: 1000},
		"full discount":       {Base: 1000, Percent: 100, Out: 0},
		"rounds toward cheap": {Base: 999, Percent: 10, Out: 900},
	}, func(t *testcase.T, tc TC) {
		pricer := decorator.SeasonalDiscount(decorator.BasePrice{"x": tc.Base}, tc.Percent)
		cents, err := pricer.Price("x")
		t.Must.NoError(err)
		t.Must.Equal(tc.Out, cents)
	})
}

func TestVAT(t *testing.T) {
	pricer := decorator.VAT(decorator.BasePrice{"x": 1000}, 27)
	cents, err := pricer.Price("x")
	assert.NoError(t, err)
	assert.Equal(t, 1270, cents)
}

func TestRounding(t *testing.T) {
	type TC struct {
		Base int
		Step int
		Out  int
	}
	testcase.TableTest(t, map[string]TC{
		"rounds up to the next step": {Base: 101, Step: 50, Out: 150},
		"exact multiples stay":       {Base: 150, Step: 50, Out: 150},
		"step of one is identity":    {Base: 137, Step: 1, Out: 137},
		"zero step is identity":      {Base: 137, Step: 0, Out: 137},
	}, func(t *testcase.T, tc TC) {
		pricer := decorator.Rounding(decorator.BasePrice{"x": tc.Base}, tc.Step)
		cents, err := pricer.Price("x")
		t.Must.NoError(err)
		t.Must.Equal(tc.Out, cents)
	})
}

func TestAudit(t *testing.T) {
	var traced []string
	pricer := decorator.Audit(decorator.BasePrice{"tea": 250}, func(item string, cents int) {
		traced = append(traced, item)
	})

	_, err := pricer.Price("tea")
	assert.NoError(t, err)
	assert.Equal(t, []string{"tea"}, traced)

	_, err = pricer.Price("nope")
	assert.ErrorIs(t, err, decorator.ErrUnknownItem)
	assert.Equal(t, []string{"tea"}, traced, "failed lookups are not traced")
}

func TestDecoratorChains(t *testing.T) {
	t.Run("decorators compose in wrapping order", func(t *testing.T) {
		base := decorator.BasePrice{"x": 10000}

		discountFirst := decorator.VAT(decorator.SeasonalDiscount(base, 10), 27)
		cents, err := discountFirst.Price("x")
		assert.NoError(t, err)
		assert.Equal(t, 11430, cents) // (10000 - 1000) * 1.27

		vatFirst := decorator.SeasonalDiscount(decorator.VAT(base, 27), 10)
		cents, err = vatFirst.Price("x")
		assert.NoError(t, err)
		assert.Equal(t, 11430, cents) // multiplication commutes on round values
	})

	t.Run("errors short circuit the whole chain", func(t *testing.T) {
		base := decorator.BasePrice{}
		chain := decorator.Rounding(decorator.VAT(decorator.SeasonalDiscount(base, 10), 27), 100)
		_, err := chain.Price("anything")
		assert.ErrorIs(t, err, decorator.ErrUnknownItem)
	})

	t.Run("a decorated pricer never loses the item coverage of its base", func(t *testing.T) {
		rnd := random.New(random.CryptoSeed{})
		rnd.Repeat(25, 50, func() {
			base := decorator.BasePrice{}
			var items []string
			rnd.Repeat(1, 6, func() {
				item := rnd.StringNC(8, random.CharsetAlpha())
				base[item] = rnd.IntBetween(0, 100000)
				items = append(items, item)
			})
			chain := decorator.Rounding(
				decorator.VAT(
					decorator.SeasonalDiscount(base, rnd.IntBetween(0, 100)),
					rnd.IntBetween(0, 50)),
				rnd.IntBetween(1, 500))
			for _, item := range items {
				cents, err := chain.Price(item)
				assert.NoError(t, err)
				assert.True(t, 0 <= cents)
			}
		})
	})
}
