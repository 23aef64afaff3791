package models

import "math"

// HardQuantityCap is the maximum quantity of a single line item, regardless
// of variant stock.
const HardQuantityCap = 10

// EffectivePrice returns the selected variant's price override when present,
// otherwise the product's base price.
func EffectivePrice(p *Product, v *ProductVariant) float64 {
	if v != nil && v.Price != nil {
		return *v.Price
	}
	return p.Price
}

// EffectiveCompareAt returns the product's compare-at price when it is
// strictly greater than the effective price. A compare-at at or below the
// effective price never triggers discount display.
func EffectiveCompareAt(p *Product, effectivePrice float64) (float64, bool) {
	if p.CompareAtPrice != nil && *p.CompareAtPrice > effectivePrice {
		return *p.CompareAtPrice, true
	}
	return 0, false
}

// DiscountPercent computes round(((compareAt - price) / compareAt) * 100).
// The second return value is false when compareAt does not exceed price.
func DiscountPercent(compareAt, price float64) (int, bool) {
	if compareAt <= price || compareAt <= 0 {
		return 0, false
	}
	return int(math.Round((compareAt - price) / compareAt * 100)), true
}

// IsPurchasable reports whether the purchase action should be enabled.
// A selected variant's own stock overrides the product-level flag: a product
// can be in stock overall while the chosen variant is sold out.
func IsPurchasable(p *Product, v *ProductVariant) bool {
	if v != nil {
		return v.Stock > 0
	}
	return p.IsInStock
}

// MaxQuantity returns the largest quantity allowed for the selection:
// min(variant stock, cap) with a variant, the cap alone without one.
func MaxQuantity(v *ProductVariant) int {
	if v == nil {
		return HardQuantityCap
	}
	if v.Stock < HardQuantityCap {
		return v.Stock
	}
	return HardQuantityCap
}

// ClampQuantity clamps requested into [1, min(maxAllowed, cap)]. Quantity is
// never below 1 even when maxAllowed is zero.
func ClampQuantity(requested, maxAllowed int) int {
	max := maxAllowed
	if max > HardQuantityCap {
		max = HardQuantityCap
	}
	if requested > max {
		requested = max
	}
	if requested < 1 {
		requested = 1
	}
	return requested
}
