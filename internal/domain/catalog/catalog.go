// Package catalog holds the static project-template registry and the mock
// contractor directory. Templates declare their form schema and pricing model;
// all computation lives in the pricing package.
package catalog

import "renohub/internal/domain/entities"

var templates = map[string]entities.Template{
	deckRefresh.ID:     deckRefresh,
	firepit.ID:         firepit,
	gardenBed.ID:       gardenBed,
	lawnMowing.ID:      lawnMowing,
	pressureWashing.ID: pressureWashing,
}

// Order templates are listed in on the template picker.
var templateOrder = []string{
	deckRefresh.ID,
	firepit.ID,
	gardenBed.ID,
	lawnMowing.ID,
	pressureWashing.ID,
}

// Get returns the template with the given id.
func Get(id string) (entities.Template, bool) {
	t, ok := templates[id]
	return t, ok
}

// All returns the full catalog in display order.
func All() []entities.Template {
	out := make([]entities.Template, 0, len(templateOrder))
	for _, id := range templateOrder {
		out = append(out, templates[id])
	}
	return out
}
