package services

import "github.com/yeremiapane/restaurant-site/models"

// ItemDecorator menambahkan kontrol per item pada daftar menu, sehingga
// daftar menu tidak perlu tahu soal keranjang.
type ItemDecorator interface {
	Controls(item models.MenuItem) interface{}
}

type MenuEntry struct {
	models.MenuItem
	Controls interface{} `json:"controls,omitempty"`
}

type MenuSection struct {
	Name  string      `json:"name"`
	Items []MenuEntry `json:"items"`
}

// BuildMenuSections groups items under each section name, keeping the item
// order. Sections with no matching items are still listed. decorator may be nil.
func BuildMenuSections(sections []string, items []models.MenuItem, decorator ItemDecorator) []MenuSection {
	result := make([]MenuSection, 0, len(sections))
	for _, name := range sections {
		section := MenuSection{Name: name, Items: []MenuEntry{}}
		for _, item := range items {
			if item.Section != name {
				continue
			}
			entry := MenuEntry{MenuItem: item}
			if decorator != nil {
				entry.Controls = decorator.Controls(item)
			}
			section.Items = append(section.Items, entry)
		}
		result = append(result, section)
	}
	return result
}

type StepperControls struct {
	Value       int  `json:"value"`
	Min         int  `json:"min"`
	Max         int  `json:"max"`
	CanDecrease bool `json:"can_decrease"`
	CanIncrease bool `json:"can_increase"`
}

type CartItemControls struct {
	Quantity int              `json:"quantity"`
	Stepper  *StepperControls `json:"stepper,omitempty"`
}

// CartDecorator exposes the cart quantity of each item and, once the item is
// in the cart, the quantity stepper bounds.
type CartDecorator struct {
	Cart models.Cart
	Min  int
	Max  int
}

func NewCartDecorator(cart models.Cart, max int) CartDecorator {
	return CartDecorator{Cart: cart, Min: DefaultMinQuantity, Max: max}
}

func (d CartDecorator) Controls(item models.MenuItem) interface{} {
	qty := d.Cart.Quantity(item.ID)
	controls := CartItemControls{Quantity: qty}
	if qty > 0 {
		controls.Stepper = &StepperControls{
			Value:       qty,
			Min:         d.Min,
			Max:         d.Max,
			CanDecrease: qty > d.Min,
			CanIncrease: qty < d.Max,
		}
	}
	return controls
}
