package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEffectivePrice(t *testing.T) {
	override := 52.0
	p := &Product{Price: 45}

	assert.Equal(t, 45.0, EffectivePrice(p, nil))
	assert.Equal(t, 45.0, EffectivePrice(p, &ProductVariant{ID: "v1"}))
	assert.Equal(t, 52.0, EffectivePrice(p, &ProductVariant{ID: "v2", Price: &override}))
}

func TestEffectiveCompareAtOnlyWhenStrictlyGreater(t *testing.T) {
	ca := 55.0
	p := &Product{Price: 45, CompareAtPrice: &ca}

	got, ok := EffectiveCompareAt(p, 45)
	assert.True(t, ok)
	assert.Equal(t, 55.0, got)

	// Equal compare-at shows nothing.
	_, ok = EffectiveCompareAt(p, 55)
	assert.False(t, ok)

	// Below effective price shows nothing either.
	_, ok = EffectiveCompareAt(p, 60)
	assert.False(t, ok)

	_, ok = EffectiveCompareAt(&Product{Price: 45}, 45)
	assert.False(t, ok)
}

func TestDiscountPercent(t *testing.T) {
	pct, ok := DiscountPercent(55, 45)
	assert.True(t, ok)
	assert.Equal(t, 18, pct) // round(10/55*100) = round(18.18)

	pct, ok = DiscountPercent(100, 66)
	assert.True(t, ok)
	assert.Equal(t, 34, pct)

	_, ok = DiscountPercent(45, 45)
	assert.False(t, ok)

	_, ok = DiscountPercent(40, 45)
	assert.False(t, ok)
}

func TestIsPurchasableVariantStockOverridesProductFlag(t *testing.T) {
	p := &Product{IsInStock: true}

	assert.True(t, IsPurchasable(p, nil))
	assert.True(t, IsPurchasable(p, &ProductVariant{Stock: 3}))
	// Sold-out variant wins over the product flag.
	assert.False(t, IsPurchasable(p, &ProductVariant{Stock: 0}))

	out := &Product{IsInStock: false}
	assert.False(t, IsPurchasable(out, nil))
	// An in-stock variant also wins over an out-of-stock product flag.
	assert.True(t, IsPurchasable(out, &ProductVariant{Stock: 2}))
}

func TestMaxQuantity(t *testing.T) {
	assert.Equal(t, HardQuantityCap, MaxQuantity(nil))
	assert.Equal(t, 3, MaxQuantity(&ProductVariant{Stock: 3}))
	assert.Equal(t, HardQuantityCap, MaxQuantity(&ProductVariant{Stock: 25}))
}

func TestClampQuantity(t *testing.T) {
	assert.Equal(t, 1, ClampQuantity(0, 5))
	assert.Equal(t, 1, ClampQuantity(-3, 5))
	assert.Equal(t, 5, ClampQuantity(9, 5))
	assert.Equal(t, 4, ClampQuantity(4, 5))
	// The hard cap applies even with plenty of stock.
	assert.Equal(t, HardQuantityCap, ClampQuantity(15, 40))
	// Quantity never drops below 1, even with zero allowance.
	assert.Equal(t, 1, ClampQuantity(2, 0))
}
