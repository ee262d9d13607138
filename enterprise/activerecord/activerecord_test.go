package activerecord_test

import (
	"context"
	"path/filepath"
	"testing"

	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/random"

	"go.llib.dev/exemplar/enterprise/activerecord"
)

var rnd = random.New(random.CryptoSeed{})

func bindInMemory(tb testing.TB) {
	assert.NoError(tb, activerecord.OpenInMemory())
	tb.Cleanup(func() { assert.NoError(tb, activerecord.Close()) })
}

func makeProduct() *activerecord.Product {
	return &activerecord.Product{
		SKU:            rnd.StringNC(12, random.CharsetAlpha()),
		Name:           rnd.StringNC(8, random.CharsetAlpha()),
		UnitPriceCents: int64(rnd.IntBetween(100, 99999)),
		Currency:       "EUR",
	}
}

func TestProduct_Insert(t *testing.T) {
	bindInMemory(t)
	ctx := context.Background()

	t.Run("it assigns a growing id", func(t *testing.T) {
		a, b := makeProduct(), makeProduct()
		assert.NoError(t, a.Insert(ctx))
		assert.NoError(t, b.Insert(ctx))
		assert.True(t, 0 < a.ID)
		assert.True(t, a.ID < b.ID)
	})

	t.Run("the stored values can be loaded back", func(t *testing.T) {
		p := makeProduct()
		assert.NoError(t, p.Insert(ctx))
		got, found, err := activerecord.Find(ctx, p.ID)
		assert.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, p, got)
	})

	t.Run("a duplicate sku is rejected", func(t *testing.T) {
		p := makeProduct()
		assert.NoError(t, p.Insert(ctx))
		dupe := makeProduct()
		dupe.SKU = p.SKU
		assert.ErrorIs(t, dupe.Insert(ctx), activerecord.ErrDuplicateSKU)
	})

	t.Run("an already persisted record cannot be inserted again", func(t *testing.T) {
		p := makeProduct()
		assert.NoError(t, p.Insert(ctx))
		assert.Error(t, p.Insert(ctx))
	})

	t.Run("an empty currency defaults on insert", func(t *testing.T) {
		p := makeProduct()
		p.Currency = ""
		assert.NoError(t, p.Insert(ctx))
		assert.Equal(t, "EUR", p.Currency)
	})
}

func TestProduct_Update(t *testing.T) {
	bindInMemory(t)
	ctx := context.Background()

	t.Run("the changed values are visible afterwards", func(t *testing.T) {
		p := makeProduct()
		assert.NoError(t, p.Insert(ctx))
		p.Name = rnd.StringNC(10, random.CharsetAlpha())
		p.UnitPriceCents += int64(rnd.IntBetween(1, 500))
		assert.NoError(t, p.Update(ctx))
		got, found, err := activerecord.Find(ctx, p.ID)
		assert.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, p, got)
	})

	t.Run("before insert it is rejected", func(t *testing.T) {
		p := makeProduct()
		assert.ErrorIs(t, p.Update(ctx), activerecord.ErrNotPersisted)
	})

	t.Run("taking the sku of another product is rejected", func(t *testing.T) {
		a, b := makeProduct(), makeProduct()
		assert.NoError(t, a.Insert(ctx))
		assert.NoError(t, b.Insert(ctx))
		b.SKU = a.SKU
		assert.ErrorIs(t, b.Update(ctx), activerecord.ErrDuplicateSKU)
	})

	t.Run("a record whose row is gone reports not persisted", func(t *testing.T) {
		p := makeProduct()
		assert.NoError(t, p.Insert(ctx))
		id := p.ID
		assert.NoError(t, p.Delete(ctx))
		p.ID = id
		assert.ErrorIs(t, p.Update(ctx), activerecord.ErrNotPersisted)
	})
}

func TestProduct_Delete(t *testing.T) {
	bindInMemory(t)
	ctx := context.Background()

	t.Run("it removes the row and clears the id", func(t *testing.T) {
		p := makeProduct()
		assert.NoError(t, p.Insert(ctx))
		id := p.ID
		assert.NoError(t, p.Delete(ctx))
		assert.Equal(t, int64(0), p.ID)
		_, found, err := activerecord.Find(ctx, id)
		assert.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("a deleted record can start a new life", func(t *testing.T) {
		p := makeProduct()
		assert.NoError(t, p.Insert(ctx))
		first := p.ID
		assert.NoError(t, p.Delete(ctx))
		assert.NoError(t, p.Insert(ctx))
		assert.True(t, first < p.ID)
	})

	t.Run("before insert it is rejected", func(t *testing.T) {
		p := makeProduct()
		assert.ErrorIs(t, p.Delete(ctx), activerecord.ErrNotPersisted)
	})
}

func TestFind(t *testing.T) {
	bindInMemory(t)
	ctx := context.Background()

	t.Run("a missing id reports found false", func(t *testing.T) {
		_, found, err := activerecord.Find(ctx, 987654)
		assert.NoError(t, err)
		assert.False(t, found)
	})
}

func TestBySKU(t *testing.T) {
	bindInMemory(t)
	ctx := context.Background()

	t.Run("it loads the product of the sku", func(t *testing.T) {
		p := makeProduct()
		assert.NoError(t, p.Insert(ctx))
		got, found, err := activerecord.BySKU(ctx, p.SKU)
		assert.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, p, got)
	})

	t.Run("an unknown sku reports found false", func(t *testing.T) {
		_, found, err := activerecord.BySKU(ctx, "no-such-sku")
		assert.NoError(t, err)
		assert.False(t, found)
	})
}

func TestAll(t *testing.T) {
	bindInMemory(t)
	ctx := context.Background()

	var expected []*activerecord.Product
	rnd.Repeat(3, 7, func() {
		p := makeProduct()
		assert.NoError(t, p.Insert(ctx))
		expected = append(expected, p)
	})

	got, err := activerecord.All(ctx)
	assert.NoError(t, err)
	assert.Equal(t, expected, got)
}

func TestOpen_fileDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "products.db")
	assert.NoError(t, activerecord.Open(path))
	t.Cleanup(func() { assert.NoError(t, activerecord.Close()) })
	ctx := context.Background()

	p := makeProduct()
	assert.NoError(t, p.Insert(ctx))

	// rebinding to the same file keeps the rows
	assert.NoError(t, activerecord.Open(path))
	got, found, err := activerecord.Find(ctx, p.ID)
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, p, got)
}

func TestWithoutBinding(t *testing.T) {
	assert.NoError(t, activerecord.Close())
	ctx := context.Background()

	p := makeProduct()
	assert.ErrorIs(t, p.Insert(ctx), activerecord.ErrNoConnection)
	_, _, err := activerecord.Find(ctx, 1)
	assert.ErrorIs(t, err, activerecord.ErrNoConnection)
	_, err = activerecord.All(ctx)
	assert.ErrorIs(t, err, activerecord.ErrNoConnection)
}

func TestContextCancellation(t *testing.T) {
	bindInMemory(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := makeProduct()
	assert.ErrorIs(t, p.Insert(ctx), context.Canceled)
}
