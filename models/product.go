package models

// Product mirrors the backend product record. Prices arrive as JSON numbers
// or numeric strings depending on the backend serializer.
type Product struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Images       []string `json:"images"`
	ImageAlts    []string `json:"image_alts"`
	OldPrice     Price    `json:"old_price"`
	CurrentPrice Price    `json:"current_price"`
	OrdersCount  int      `json:"orders_count"`
}

// FirstImage returns the primary image URL or an empty string. Value
// receivers keep these callable from templates ranging over product slices.
func (p Product) FirstImage() string {
	if len(p.Images) > 0 {
		return p.Images[0]
	}
	return ""
}

// HasDiscount reports whether the old/current price pair forms a discount.
func (p Product) HasDiscount() bool {
	return p.OldPrice > 0 && p.OldPrice > p.CurrentPrice
}
