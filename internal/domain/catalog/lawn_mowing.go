package catalog

import "renohub/internal/domain/entities"

var lawnMowing = entities.Template{
	ID:            "lawn-mowing",
	Title:         "Lawn Mowing Service",
	Description:   "Professional lawn care with customizable scheduling",
	Category:      "maintenance",
	EstimatedTime: "2-4 hours",
	Complexity:    entities.ComplexityLow,
	Icon:          "🌱",
	Fields: []entities.FieldSpec{
		{
			ID:          "lawnLength",
			Label:       "Lawn Length",
			Type:        entities.FieldNumber,
			Unit:        "feet",
			Required:    true,
			Min:         10,
			Max:         500,
			Step:        1,
			Placeholder: "50",
		},
		{
			ID:          "lawnWidth",
			Label:       "Lawn Width",
			Type:        entities.FieldNumber,
			Unit:        "feet",
			Required:    true,
			Min:         10,
			Max:         500,
			Step:        1,
			Placeholder: "30",
		},
		{
			ID:       "grassHeight",
			Label:    "Current Grass Height",
			Type:     entities.FieldSelect,
			Required: true,
			Options: []entities.FieldOption{
				{Value: "short", Label: "Short - Regular maintenance cut"},
				{Value: "medium", Label: "Medium - A few weeks of growth"},
				{Value: "tall", Label: "Tall - Overgrown, needs extra passes"},
			},
		},
		{
			ID:       "terrain",
			Label:    "Terrain",
			Type:     entities.FieldSelect,
			Required: true,
			Options: []entities.FieldOption{
				{Value: "flat", Label: "Flat"},
				{Value: "slight-slope", Label: "Slight Slope"},
				{Value: "steep", Label: "Steep - Requires special equipment"},
			},
		},
		{
			ID:    "obstacles",
			Label: "Obstacles to Work Around",
			Type:  entities.FieldCheckboxGroup,
			Options: []entities.FieldOption{
				{Value: "trees", Label: "Trees"},
				{Value: "flower-beds", Label: "Flower Beds"},
				{Value: "fence", Label: "Fenced Areas"},
				{Value: "decorations", Label: "Lawn Decorations"},
			},
		},
		{
			ID:          "notes",
			Label:       "Additional Notes",
			Type:        entities.FieldTextarea,
			Placeholder: "Gate codes, pets, preferred mowing pattern...",
		},
	},
	Pricing: entities.PricingModel{
		Tables: map[string]map[string]entities.PricedItem{},
		Supplies: map[string]entities.PricedItem{
			"fuel": {Price: 15, Description: "Fuel and equipment costs"},
		},
		Labor: entities.LaborModel{
			Base:    0,
			PerSqFt: 0.002, // 500 sq ft per hour
			Multipliers: map[string]map[string]float64{
				"grassHeight": {
					"short":  1.0,
					"medium": 1.3,
					"tall":   1.6,
				},
				"terrain": {
					"flat":         1.0,
					"slight-slope": 1.2,
					"steep":        1.5,
				},
			},
			Surcharges: map[string]float64{
				"trees":       0.5,
				"flower-beds": 0.75,
				"fence":       1.0,
				"decorations": 0.25,
			},
		},
		Transportation: 50,
		Disposal:       20,
	},
}
