package services

import (
	"strings"
	"time"

	"github.com/yeremiapane/restaurant-site/models"
)

// CatalogReader is the lookup the derived views need from the catalog.
type CatalogReader interface {
	Items() []models.MenuItem
	Lookup(id uint) (models.MenuItem, bool)
}

// FilterMenu returns the catalog items matching the filter, in catalog order.
func FilterMenu(catalog CatalogReader, state models.FilterState) []models.MenuItem {
	query := strings.ToLower(state.Query)
	result := make([]models.MenuItem, 0)
	for _, item := range catalog.Items() {
		matchesType := state.Veg == models.VegAll || item.Type == models.DishType(state.Veg)
		matchesQuery := strings.Contains(strings.ToLower(item.Name+" "+item.Desc), query)
		if matchesType && matchesQuery {
			result = append(result, item)
		}
	}
	return result
}

// CartTotal prices every cart entry. Ids missing from the catalog are valued
// at 0 rather than skipped or rejected.
func CartTotal(catalog CatalogReader, cart models.Cart) int {
	total := 0
	for id, qty := range cart {
		item, ok := catalog.Lookup(id)
		if !ok {
			continue
		}
		total += item.Price * qty
	}
	return total
}

// BuildOrderSummary joins the cart against the catalog. Unlike CartTotal,
// entries whose id cannot be resolved are dropped from the list and the total
// is recomputed over the remaining lines only.
//
// Known inconsistency: with phantom ids in the cart the running total and the
// summary agree (both count them as 0) but the summary list is shorter than
// the cart. Both behaviours are kept as-is.
func BuildOrderSummary(catalog CatalogReader, cart models.Cart, now time.Time) models.OrderSummary {
	lines := make([]models.OrderLine, 0, len(cart))
	for _, item := range catalog.Items() {
		qty, ok := cart[item.ID]
		if !ok {
			continue
		}
		lines = append(lines, models.OrderLine{MenuItem: item, Qty: qty})
	}

	total := 0
	for _, line := range lines {
		total += line.Subtotal()
	}

	return models.OrderSummary{
		Items:    lines,
		Total:    total,
		PlacedAt: now,
	}
}
