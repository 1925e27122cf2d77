// Package pricing is the pure estimate calculation engine: it maps a template
// plus submitted form data to a material/labor/fee breakdown. Every function
// here is deterministic over its inputs; persistence and event emission live
// in the usecase layer.
package pricing

import (
	"fmt"
	"math"

	"renohub/internal/domain/entities"
)

// Calculate produces an Estimate for the given template and form data.
//
// Each template has its own calculation branch on purpose: the templates are
// genuinely heterogeneous business rules, not instances of one generic
// formula. Missing or malformed inputs contribute zero cost rather than
// failing; a pricing-table key that cannot be resolved is skipped the same
// way (unknown keys contribute zero cost).
func Calculate(tpl entities.Template, form FormData) entities.Estimate {
	b := newEstimateBuilder(tpl)

	switch tpl.ID {
	case "deck-refresh":
		calculateDeckRefresh(tpl, form, b)
	case "firepit":
		calculateFirepit(tpl, form, b)
	case "garden-bed":
		calculateGardenBed(tpl, form, b)
	case "lawn-mowing":
		calculateLawnMowing(tpl, form, b)
	case "pressure-washing":
		calculatePressureWashing(tpl, form, b)
	}

	return b.build()
}

func calculateDeckRefresh(tpl entities.Template, form FormData, b *estimateBuilder) {
	area := form.Number("deckLength") * form.Number("deckWidth")
	labor := tpl.Pricing.Labor

	b.laborHours = labor.Base + area*labor.PerSqFt*labor.Conditions[form.String("deckCondition")]

	if stain, ok := tpl.Pricing.Tables["stain"][form.String("stainType")]; ok {
		b.addPerSqFt(stain, area)
	}
	b.addPerSqFt(tpl.Pricing.Supplies["sandpaper"], area)
	b.addFlat(tpl.Pricing.Supplies["brushes"], "1 set")
	b.addFlat(tpl.Pricing.Supplies["cleaner"], "1")

	// Railing length only counts while the railing checkbox gates it visible.
	if form.Bool("railingRefresh") {
		if length := form.Number("railingLength"); length > 0 {
			b.addPerFt(tpl.Pricing.AddOns["railingRefresh"], length)
		}
	}
	if form.Bool("pressureWashing") {
		b.addAddOn(tpl.Pricing.AddOns["pressureWashing"])
	}
}

func calculateFirepit(tpl entities.Template, form FormData, b *estimateBuilder) {
	diameter := form.Number("seatingArea")
	seatingSqFt := math.Pi * math.Pow(diameter/2, 2)
	labor := tpl.Pricing.Labor

	b.laborHours = labor.Base + seatingSqFt/10*labor.SeatingPrep

	if pit, ok := tpl.Pricing.Tables["firepit"][form.String("firepitType")]; ok {
		b.addFlat(pit, "1")
	}
	if seating, ok := tpl.Pricing.Tables["seating"][form.String("seatingType")]; ok {
		b.addFlat(seating, "1")
	}

	if form.Bool("landscaping") {
		b.addAddOn(tpl.Pricing.AddOns["landscaping"])
	}
	if form.Bool("lighting") {
		b.addAddOn(tpl.Pricing.AddOns["lighting"])
	}

	// Wood burning needs no extra materials; gas and propane do.
	switch form.String("fuelType") {
	case "gas":
		b.addAddOn(tpl.Pricing.AddOns["gas"])
	case "propane":
		b.addAddOn(tpl.Pricing.AddOns["propane"])
	}
}

func calculateGardenBed(tpl entities.Template, form FormData, b *estimateBuilder) {
	area := form.Number("bedLength") * form.Number("bedWidth")
	labor := tpl.Pricing.Labor

	b.laborHours = labor.Base + area*labor.PerSqFt*labor.Conditions[form.String("groundCondition")]

	if soil, ok := tpl.Pricing.Tables["soil"][form.String("soilType")]; ok {
		b.addPerSqFt(soil, area)
	}
	b.addPerSqFt(tpl.Pricing.Supplies["fabric"], area)
	b.addPerSqFt(tpl.Pricing.Supplies["mulch"], area)

	if form.Bool("edging") {
		b.addAddOn(tpl.Pricing.AddOns["edging"])
	}
	if form.Bool("irrigation") {
		b.addAddOn(tpl.Pricing.AddOns["irrigation"])
	}
}

func calculateLawnMowing(tpl entities.Template, form FormData, b *estimateBuilder) {
	area := form.Number("lawnLength") * form.Number("lawnWidth")
	labor := tpl.Pricing.Labor

	grass := labor.Multipliers["grassHeight"][form.String("grassHeight")]
	terrain := labor.Multipliers["terrain"][form.String("terrain")]
	hours := area * labor.PerSqFt * grass * terrain

	// Each obstacle adds an independent flat surcharge in hours. Values with
	// no table entry contribute zero.
	for _, obstacle := range form.Strings("obstacles") {
		hours += labor.Surcharges[obstacle]
	}
	b.laborHours = hours

	b.addFlat(tpl.Pricing.Supplies["fuel"], "1")
}

func calculatePressureWashing(tpl entities.Template, form FormData, b *estimateBuilder) {
	area := form.Number("surfaceLength") * form.Number("surfaceWidth")
	labor := tpl.Pricing.Labor

	dirt := labor.Multipliers["dirtLevel"][form.String("dirtLevel")]
	access := labor.Multipliers["accessDifficulty"][form.String("accessDifficulty")]
	b.laborHours = area * labor.PerSqFt * dirt * access

	b.addPerSqFt(tpl.Pricing.Supplies["detergent"], area)
	b.addFlat(tpl.Pricing.Supplies["equipment"], "1")

	for _, service := range form.Strings("specialServices") {
		if item, ok := tpl.Pricing.Tables["specialServices"][service]; ok {
			b.addFlat(item, "1")
		}
	}
}

// estimateBuilder accumulates material line items and labor hours during a
// calculation, then applies the rounding policy once at build time.
type estimateBuilder struct {
	tpl            entities.Template
	materials      []entities.MaterialLineItem
	materialCost   float64
	laborHours     float64
	transportation float64
	disposal       float64
}

func newEstimateBuilder(tpl entities.Template) *estimateBuilder {
	return &estimateBuilder{
		tpl:            tpl,
		materials:      []entities.MaterialLineItem{},
		transportation: tpl.Pricing.Transportation,
		disposal:       tpl.Pricing.Disposal,
	}
}

func (b *estimateBuilder) addPerSqFt(item entities.PricedItem, area float64) {
	if item.PricePerSqFt == 0 || area <= 0 {
		return
	}
	b.addLine(entities.MaterialLineItem{
		Item:       item.Description,
		Quantity:   fmt.Sprintf("%.0f sq ft", area),
		UnitPrice:  item.PricePerSqFt,
		TotalPrice: area * item.PricePerSqFt,
	})
}

func (b *estimateBuilder) addFlat(item entities.PricedItem, quantity string) {
	if item.Price == 0 {
		return
	}
	b.addLine(entities.MaterialLineItem{
		Item:       item.Description,
		Quantity:   quantity,
		UnitPrice:  item.Price,
		TotalPrice: item.Price,
	})
}

func (b *estimateBuilder) addPerFt(addOn entities.AddOn, length float64) {
	b.laborHours += addOn.LaborHours
	if addOn.PricePerFt == 0 || length <= 0 {
		return
	}
	b.addLine(entities.MaterialLineItem{
		Item:       addOn.Description,
		Quantity:   fmt.Sprintf("%.0f ft", length),
		UnitPrice:  addOn.PricePerFt,
		TotalPrice: length * addOn.PricePerFt,
	})
}

func (b *estimateBuilder) addAddOn(addOn entities.AddOn) {
	b.laborHours += addOn.LaborHours
	if addOn.Price == 0 {
		return
	}
	b.addLine(entities.MaterialLineItem{
		Item:       addOn.Description,
		Quantity:   "1",
		UnitPrice:  addOn.Price,
		TotalPrice: addOn.Price,
	})
}

func (b *estimateBuilder) addLine(line entities.MaterialLineItem) {
	b.materials = append(b.materials, line)
	b.materialCost += line.TotalPrice
}

// build applies the rounding policy: currency components to whole units,
// labor hours to one decimal, and the total computed from the already rounded
// components so displayed line items stay summable.
func (b *estimateBuilder) build() entities.Estimate {
	materialCost := math.Round(b.materialCost)
	transportation := math.Round(b.transportation)
	disposal := math.Round(b.disposal)
	laborHours := math.Round(b.laborHours*10) / 10
	if laborHours < 0 {
		laborHours = 0
	}

	total := materialCost + transportation + disposal

	return entities.Estimate{
		TemplateID:     b.tpl.ID,
		Materials:      b.materials,
		MaterialCost:   materialCost,
		LaborHours:     laborHours,
		Transportation: transportation,
		Disposal:       disposal,
		Complexity:     b.tpl.Complexity,
		EstimatedTime:  b.tpl.EstimatedTime,
		Breakdown: map[string]float64{
			"materialCost":   materialCost,
			"transportation": transportation,
			"disposal":       disposal,
			// Hours, not currency: labor is priced per contractor later.
			"laborHours": laborHours,
		},
		Total: total,
	}
}
