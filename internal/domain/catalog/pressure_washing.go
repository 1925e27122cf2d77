package catalog

import "renohub/internal/domain/entities"

var pressureWashing = entities.Template{
	ID:            "pressure-washing",
	Title:         "Pressure Washing",
	Description:   "Deep-clean driveways, patios, siding, and walkways",
	Category:      "maintenance",
	EstimatedTime: "2-5 hours",
	Complexity:    entities.ComplexityLow,
	Icon:          "💦",
	Fields: []entities.FieldSpec{
		{
			ID:          "surfaceLength",
			Label:       "Surface Length",
			Type:        entities.FieldNumber,
			Unit:        "feet",
			Required:    true,
			Min:         5,
			Max:         300,
			Step:        1,
			Placeholder: "40",
		},
		{
			ID:          "surfaceWidth",
			Label:       "Surface Width",
			Type:        entities.FieldNumber,
			Unit:        "feet",
			Required:    true,
			Min:         5,
			Max:         100,
			Step:        1,
			Placeholder: "15",
		},
		{
			ID:       "dirtLevel",
			Label:    "Dirt / Staining Level",
			Type:     entities.FieldSelect,
			Required: true,
			Options: []entities.FieldOption{
				{Value: "light", Label: "Light - Seasonal dust and grime"},
				{Value: "moderate", Label: "Moderate - Visible stains and mildew"},
				{Value: "heavy", Label: "Heavy - Years of buildup, oil stains"},
			},
		},
		{
			ID:       "accessDifficulty",
			Label:    "Access Difficulty",
			Type:     entities.FieldSelect,
			Required: true,
			Options: []entities.FieldOption{
				{Value: "easy", Label: "Easy - Ground level, open access"},
				{Value: "moderate", Label: "Moderate - Some obstacles or steps"},
				{Value: "difficult", Label: "Difficult - Ladders or tight spaces required"},
			},
		},
		{
			ID:    "specialServices",
			Label: "Add-on Services",
			Type:  entities.FieldCheckboxGroup,
			Options: []entities.FieldOption{
				{Value: "gutter-cleaning", Label: "Gutter Cleaning"},
				{Value: "driveway-sealing", Label: "Driveway Sealing"},
				{Value: "deck-wash", Label: "Deck Soft Wash"},
				{Value: "fence-wash", Label: "Fence Wash"},
			},
		},
		{
			ID:       "images",
			Label:    "Upload Photos",
			Type:     entities.FieldFile,
			Accept:   "image/*",
			Multiple: true,
			MaxFiles: 5,
		},
		{
			ID:          "notes",
			Label:       "Additional Notes",
			Type:        entities.FieldTextarea,
			Placeholder: "Water source location, delicate surfaces...",
		},
	},
	Pricing: entities.PricingModel{
		Tables: map[string]map[string]entities.PricedItem{
			"specialServices": {
				"gutter-cleaning":  {Price: 80, Description: "Gutter cleaning service"},
				"driveway-sealing": {Price: 120, Description: "Driveway sealing treatment"},
				"deck-wash":        {Price: 60, Description: "Deck soft wash treatment"},
				"fence-wash":       {Price: 45, Description: "Fence wash treatment"},
			},
		},
		Supplies: map[string]entities.PricedItem{
			"detergent": {PricePerSqFt: 0.05, Description: "Detergent and surface cleaner"},
			"equipment": {Price: 35, Description: "Equipment and water usage fee"},
		},
		Labor: entities.LaborModel{
			Base:    0,
			PerSqFt: 0.004, // 250 sq ft per hour
			Multipliers: map[string]map[string]float64{
				"dirtLevel": {
					"light":    1.0,
					"moderate": 1.3,
					"heavy":    1.7,
				},
				"accessDifficulty": {
					"easy":      1.0,
					"moderate":  1.2,
					"difficult": 1.5,
				},
			},
		},
		Transportation: 50,
		Disposal:       0,
	},
}
