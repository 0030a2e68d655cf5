package models

// VegFilter adalah toggle kategori pada halaman menu
type VegFilter string

const (
	VegAll     VegFilter = "all"
	VegOnly    VegFilter = "veg"
	NonVegOnly VegFilter = "non-veg"
)

// Valid reports whether v is one of the three enumerated values.
func (v VegFilter) Valid() bool {
	switch v {
	case VegAll, VegOnly, NonVegOnly:
		return true
	}
	return false
}

type FilterState struct {
	Query string    `json:"query"`
	Veg   VegFilter `json:"veg"`
}

func NewFilterState() FilterState {
	return FilterState{Query: "", Veg: VegAll}
}
