package services

import "github.com/yeremiapane/restaurant-site/models"

// Catalog adalah daftar menu read-only yang dimuat sekali saat startup
type Catalog struct {
	items    []models.MenuItem
	byID     map[uint]int
	sections []string
}

// NewCatalog copies items and indexes them by id. Sections keep the order in
// which they first appear in items.
func NewCatalog(items []models.MenuItem) *Catalog {
	c := &Catalog{
		items: make([]models.MenuItem, len(items)),
		byID:  make(map[uint]int, len(items)),
	}
	copy(c.items, items)

	seen := make(map[string]bool)
	for i, item := range c.items {
		c.byID[item.ID] = i
		if !seen[item.Section] {
			seen[item.Section] = true
			c.sections = append(c.sections, item.Section)
		}
	}
	return c
}

// Items returns the catalog in its fixed order. The slice is a copy.
func (c *Catalog) Items() []models.MenuItem {
	out := make([]models.MenuItem, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Catalog) Sections() []string {
	out := make([]string, len(c.sections))
	copy(out, c.sections)
	return out
}

// NewCatalogWithSections fixes the section order. Sections that only appear in
// items are appended after the given ones.
func NewCatalogWithSections(items []models.MenuItem, sections []string) *Catalog {
	c := NewCatalog(items)

	ordered := make([]string, 0, len(sections)+len(c.sections))
	seen := make(map[string]bool)
	for _, name := range append(append([]string{}, sections...), c.sections...) {
		if seen[name] {
			continue
		}
		seen[name] = true
		ordered = append(ordered, name)
	}
	c.sections = ordered
	return c
}

func (c *Catalog) Lookup(id uint) (models.MenuItem, bool) {
	i, ok := c.byID[id]
	if !ok {
		return models.MenuItem{}, false
	}
	return c.items[i], true
}

func (c *Catalog) Len() int {
	return len(c.items)
}
