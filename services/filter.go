package services

import "github.com/yeremiapane/restaurant-site/models"

// SetQuery mengganti query apa adanya, tanpa trim atau validasi
func SetQuery(state models.FilterState, query string) models.FilterState {
	state.Query = query
	return state
}

// SetVeg sets the veg filter to exactly the given value.
func SetVeg(state models.FilterState, veg models.VegFilter) models.FilterState {
	state.Veg = veg
	return state
}

// ToggleVeg implements the checkbox behaviour of the filter bar: toggling the
// active category reverts to "all", toggling the other one selects it. At most
// one of veg / non-veg is ever active.
func ToggleVeg(state models.FilterState, category models.VegFilter) models.FilterState {
	if state.Veg == category {
		return SetVeg(state, models.VegAll)
	}
	return SetVeg(state, category)
}
