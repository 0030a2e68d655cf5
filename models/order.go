package models

import "time"

// OrderLine adalah item menu beserta jumlahnya pada saat checkout
type OrderLine struct {
	MenuItem
	Qty int `json:"qty"`
}

// Subtotal returns price * qty for the line.
func (l OrderLine) Subtotal() int {
	return l.Price * l.Qty
}

// OrderSummary adalah snapshot keranjang saat order dibuat
type OrderSummary struct {
	Items    []OrderLine `json:"items"`
	Total    int         `json:"total"`
	PlacedAt time.Time   `json:"placed_at"`
}
