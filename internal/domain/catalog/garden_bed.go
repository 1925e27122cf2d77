package catalog

import "renohub/internal/domain/entities"

var gardenBed = entities.Template{
	ID:            "garden-bed",
	Title:         "Garden Bed Installation",
	Description:   "Install a new planting bed with prepared soil, edging, and mulch",
	Category:      "landscaping",
	EstimatedTime: "1 day",
	Complexity:    entities.ComplexityLow,
	Icon:          "🌷",
	Fields: []entities.FieldSpec{
		{
			ID:          "bedLength",
			Label:       "Bed Length",
			Type:        entities.FieldNumber,
			Unit:        "feet",
			Required:    true,
			Min:         2,
			Max:         40,
			Step:        1,
			Placeholder: "10",
		},
		{
			ID:          "bedWidth",
			Label:       "Bed Width",
			Type:        entities.FieldNumber,
			Unit:        "feet",
			Required:    true,
			Min:         2,
			Max:         20,
			Step:        1,
			Placeholder: "4",
		},
		{
			ID:       "soilType",
			Label:    "Soil Preparation Level",
			Type:     entities.FieldSelect,
			Required: true,
			Options: []entities.FieldOption{
				{Value: "standard", Label: "Standard - Topsoil blend"},
				{Value: "premium", Label: "Premium - Enriched garden mix"},
				{Value: "organic", Label: "Organic - Certified organic compost blend"},
			},
		},
		{
			ID:       "groundCondition",
			Label:    "Current Ground Condition",
			Type:     entities.FieldSelect,
			Required: true,
			Options: []entities.FieldOption{
				{Value: "cleared", Label: "Cleared - Bare soil, ready to dig"},
				{Value: "grassy", Label: "Grassy - Sod removal needed"},
				{Value: "rocky", Label: "Rocky - Heavy clearing needed"},
			},
		},
		{
			ID:          "edging",
			Label:       "Add Steel Edging",
			Type:        entities.FieldCheckbox,
			Description: "Powder-coated steel edging around the bed perimeter",
		},
		{
			ID:          "irrigation",
			Label:       "Add Drip Irrigation",
			Type:        entities.FieldCheckbox,
			Description: "Drip line with timer connected to an outdoor spigot",
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
			Label:       "Planting Preferences",
			Type:        entities.FieldTextarea,
			Placeholder: "Sun exposure, plants you have in mind...",
		},
	},
	Pricing: entities.PricingModel{
		Tables: map[string]map[string]entities.PricedItem{
			"soil": {
				"standard": {PricePerSqFt: 2, Description: "Topsoil blend"},
				"premium":  {PricePerSqFt: 3.5, Description: "Enriched garden soil mix"},
				"organic":  {PricePerSqFt: 5, Description: "Organic compost soil blend"},
			},
		},
		Supplies: map[string]entities.PricedItem{
			"fabric": {PricePerSqFt: 0.3, Description: "Landscape fabric and staples"},
			"mulch":  {PricePerSqFt: 0.75, Description: "Hardwood mulch top layer"},
		},
		AddOns: map[string]entities.AddOn{
			"edging":     {Price: 85, LaborHours: 1, Description: "Steel edging kit"},
			"irrigation": {Price: 120, LaborHours: 2, Description: "Drip irrigation kit"},
		},
		Labor: entities.LaborModel{
			Base:    4,
			PerSqFt: 0.12,
			Conditions: map[string]float64{
				"cleared": 1.0,
				"grassy":  1.3,
				"rocky":   1.7,
			},
		},
		Transportation: 50,
		Disposal:       40,
	},
}
