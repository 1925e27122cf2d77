package catalog

import "renohub/internal/domain/entities"

var firepit = entities.Template{
	ID:            "firepit",
	Title:         "Outdoor Firepit",
	Description:   "Build a cozy firepit area with seating and basic landscaping",
	Category:      "exterior",
	EstimatedTime: "2-3 days",
	Complexity:    entities.ComplexityMedium,
	Icon:          "🔥",
	Fields: []entities.FieldSpec{
		{
			ID:       "firepitType",
			Label:    "Firepit Type",
			Type:     entities.FieldSelect,
			Required: true,
			Options: []entities.FieldOption{
				{Value: "stone-ring", Label: "Natural Stone Ring"},
				{Value: "brick-circle", Label: "Brick Circle"},
				{Value: "metal-insert", Label: "Metal Insert with Stone Surround"},
				{Value: "custom-built", Label: "Custom Built-in"},
			},
		},
		{
			ID:       "firepitSize",
			Label:    "Firepit Diameter",
			Type:     entities.FieldSelect,
			Required: true,
			Options: []entities.FieldOption{
				{Value: "3ft", Label: "3 feet - Intimate (4-6 people)"},
				{Value: "4ft", Label: "4 feet - Standard (6-8 people)"},
				{Value: "5ft", Label: "5 feet - Large (8-10 people)"},
				{Value: "6ft", Label: "6+ feet - Extra Large (10+ people)"},
			},
		},
		{
			ID:          "seatingArea",
			Label:       "Seating Area Size",
			Type:        entities.FieldNumber,
			Unit:        "diameter in feet",
			Required:    true,
			Min:         8,
			Max:         20,
			Step:        1,
			Placeholder: "12",
		},
		{
			ID:       "seatingType",
			Label:    "Seating Type",
			Type:     entities.FieldSelect,
			Required: true,
			Options: []entities.FieldOption{
				{Value: "gravel-pad", Label: "Gravel Pad (bring your own chairs)"},
				{Value: "stone-benches", Label: "Built-in Stone Benches"},
				{Value: "log-benches", Label: "Natural Log Benches"},
				{Value: "paver-patio", Label: "Paver Patio Base"},
			},
		},
		{
			ID:          "landscaping",
			Label:       "Basic Landscaping",
			Type:        entities.FieldCheckbox,
			Description: "Includes decorative plants around the firepit area",
		},
		{
			ID:          "lighting",
			Label:       "Add Pathway Lighting",
			Type:        entities.FieldCheckbox,
			Description: "Solar or low-voltage LED pathway lights",
		},
		{
			ID:       "fuelType",
			Label:    "Fuel Type",
			Type:     entities.FieldSelect,
			Required: true,
			Options: []entities.FieldOption{
				{Value: "wood", Label: "Wood Burning (traditional)"},
				{Value: "gas", Label: "Natural Gas (requires gas line)"},
				{Value: "propane", Label: "Propane (portable tank)"},
			},
		},
		{
			ID:       "images",
			Label:    "Upload Inspiration Photos",
			Type:     entities.FieldFile,
			Accept:   "image/*",
			Multiple: true,
			MaxFiles: 5,
		},
		{
			ID:          "location",
			Label:       "Preferred Location in Yard",
			Type:        entities.FieldTextarea,
			Placeholder: "Describe where you want the firepit...",
		},
	},
	Pricing: entities.PricingModel{
		Tables: map[string]map[string]entities.PricedItem{
			"firepit": {
				"stone-ring":   {Price: 800, Description: "Natural stone firepit ring"},
				"brick-circle": {Price: 600, Description: "Brick circular firepit"},
				"metal-insert": {Price: 1000, Description: "Metal insert with stone surround"},
				"custom-built": {Price: 1500, Description: "Custom built-in firepit"},
			},
			"seating": {
				"gravel-pad":    {Price: 150, Description: "Gravel and landscape fabric"},
				"stone-benches": {Price: 400, Description: "Natural stone benches"},
				"log-benches":   {Price: 300, Description: "Natural log benches"},
				"paver-patio":   {Price: 600, Description: "Paver patio materials"},
			},
		},
		AddOns: map[string]entities.AddOn{
			"landscaping": {Price: 300, LaborHours: 4, Description: "Plants and landscaping materials"},
			"lighting":    {Price: 250, LaborHours: 3, Description: "Pathway lighting kit"},
			// Fuel add-ons are keyed by the fuelType option; wood needs nothing extra.
			"gas":     {Price: 400, LaborHours: 4, Description: "Gas line installation materials"},
			"propane": {Price: 200, Description: "Propane setup kit"},
		},
		Labor: entities.LaborModel{
			Base:        16,
			SeatingPrep: 2, // hours per 10 sq ft of seating area
		},
		Transportation: 75, // heavier materials than the default run
		Disposal:       150,
	},
}
