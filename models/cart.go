package models

// Cart memetakan id menu ke jumlah pesanan. Key yang ada selalu >= 1.
type Cart map[uint]int

// Clone returns an independent copy of the cart.
func (c Cart) Clone() Cart {
	out := make(Cart, len(c))
	for id, qty := range c {
		out[id] = qty
	}
	return out
}

func (c Cart) Quantity(id uint) int {
	return c[id]
}

func (c Cart) IsEmpty() bool {
	return len(c) == 0
}
