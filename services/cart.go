package services

import "github.com/yeremiapane/restaurant-site/models"

const (
	DefaultMinQuantity = 0
	DefaultMaxQuantity = 20
)

// AddItem menambah jumlah item sebanyak 1, mulai dari 0 jika belum ada
func AddItem(cart models.Cart, id uint) models.Cart {
	next := cart.Clone()
	next[id]++
	return next
}

// UpdateItem sets the quantity for id. A qty <= 0 removes the entry, so a zero
// quantity is never stored.
func UpdateItem(cart models.Cart, id uint, qty int) models.Cart {
	next := cart.Clone()
	if qty <= 0 {
		delete(next, id)
	} else {
		next[id] = qty
	}
	return next
}

func ClearCart(models.Cart) models.Cart {
	return models.Cart{}
}

// StepQuantity moves value by delta and clamps the result into [min, max].
func StepQuantity(value, delta, min, max int) int {
	next := value + delta
	if next < min {
		return min
	}
	if next > max {
		return max
	}
	return next
}
