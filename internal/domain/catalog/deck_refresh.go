package catalog

import "renohub/internal/domain/entities"

var deckRefresh = entities.Template{
	ID:            "deck-refresh",
	Title:         "Deck Refresh",
	Description:   "Revitalize your existing deck with new stain, repairs, and upgrades",
	Category:      "exterior",
	EstimatedTime: "1-2 days",
	Complexity:    entities.ComplexityMedium,
	Icon:          "🏠",
	Fields: []entities.FieldSpec{
		{
			ID:          "deckLength",
			Label:       "Deck Length",
			Type:        entities.FieldNumber,
			Unit:        "feet",
			Required:    true,
			Min:         8,
			Max:         50,
			Step:        1,
			Placeholder: "20",
		},
		{
			ID:          "deckWidth",
			Label:       "Deck Width",
			Type:        entities.FieldNumber,
			Unit:        "feet",
			Required:    true,
			Min:         6,
			Max:         30,
			Step:        1,
			Placeholder: "12",
		},
		{
			ID:       "deckCondition",
			Label:    "Current Deck Condition",
			Type:     entities.FieldSelect,
			Required: true,
			Options: []entities.FieldOption{
				{Value: "excellent", Label: "Excellent - Just needs cleaning/staining"},
				{Value: "good", Label: "Good - Minor repairs needed"},
				{Value: "fair", Label: "Fair - Several boards need replacement"},
				{Value: "poor", Label: "Poor - Major structural repairs needed"},
			},
		},
		{
			ID:       "stainType",
			Label:    "Stain/Finish Type",
			Type:     entities.FieldSelect,
			Required: true,
			Options: []entities.FieldOption{
				{Value: "transparent", Label: "Transparent Stain"},
				{Value: "semi-transparent", Label: "Semi-Transparent Stain"},
				{Value: "solid", Label: "Solid Stain"},
				{Value: "paint", Label: "Exterior Paint"},
			},
		},
		{
			ID:    "railingRefresh",
			Label: "Include Railing Refresh",
			Type:  entities.FieldCheckbox,
		},
		{
			ID:          "railingLength",
			Label:       "Total Railing Length",
			Type:        entities.FieldNumber,
			Unit:        "linear feet",
			Min:         0,
			Max:         200,
			Step:        1,
			Placeholder: "40",
			DependsOn:   "railingRefresh",
		},
		{
			ID:    "pressureWashing",
			Label: "Include Pressure Washing",
			Type:  entities.FieldCheckbox,
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
			Placeholder: "Any specific requirements or concerns...",
		},
	},
	Pricing: entities.PricingModel{
		Tables: map[string]map[string]entities.PricedItem{
			"stain": {
				"transparent":      {PricePerSqFt: 3, Description: "Transparent wood stain"},
				"semi-transparent": {PricePerSqFt: 4, Description: "Semi-transparent wood stain"},
				"solid":            {PricePerSqFt: 5, Description: "Solid color wood stain"},
				"paint":            {PricePerSqFt: 6, Description: "Exterior deck paint"},
			},
		},
		Supplies: map[string]entities.PricedItem{
			"brushes":   {Price: 45, Description: "Professional brushes and rollers"},
			"sandpaper": {PricePerSqFt: 0.5, Description: "Sandpaper and prep materials"},
			"cleaner":   {Price: 25, Description: "Deck cleaner and prep solution"},
		},
		AddOns: map[string]entities.AddOn{
			"railingRefresh":  {PricePerFt: 3, LaborHours: 1, Description: "Railing refresh materials"},
			"pressureWashing": {Price: 50, LaborHours: 2, Description: "Pressure washing supplies"},
		},
		Labor: entities.LaborModel{
			Base:    8,
			PerSqFt: 0.15,
			Conditions: map[string]float64{
				"excellent": 1.0,
				"good":      1.2,
				"fair":      1.5,
				"poor":      2.0,
			},
		},
		Transportation: 50,
		Disposal:       75,
	},
}
