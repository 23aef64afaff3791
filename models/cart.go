package models

import "time"

// CartVariant is the flattened variant selection carried on a cart line.
type CartVariant struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Value string   `json:"value"`
	Price *float64 `json:"price,omitempty"`
}

// CartItem is a product snapshot augmented with the chosen quantity, the
// flattened variant and a single image URL. The snapshot is taken at add
// time; later catalog edits do not rewrite existing carts.
type CartItem struct {
	ProductID string       `json:"productId"`
	Slug      string       `json:"slug"`
	Name      string       `json:"name"`
	SKU       string       `json:"sku"`
	Price     float64      `json:"price"`
	Quantity  int          `json:"quantity"`
	Variant   *CartVariant `json:"variant,omitempty"`
	Image     string       `json:"image"`
}

type Cart struct {
	UserID    string     `json:"userId"`
	Items     []CartItem `json:"items"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// Subtotal sums effective line prices (variant override wins) times quantity.
func (c *Cart) Subtotal() float64 {
	var total float64
	for _, item := range c.Items {
		price := item.Price
		if item.Variant != nil && item.Variant.Price != nil {
			price = *item.Variant.Price
		}
		total += price * float64(item.Quantity)
	}
	return total
}
