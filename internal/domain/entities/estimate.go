package entities

// MaterialLineItem is one row of the materials breakdown. TotalPrice always
// equals quantity x unit price (or the flat price for count-1 items).
type MaterialLineItem struct {
	Item       string  `json:"item"`
	Quantity   string  `json:"quantity"`
	UnitPrice  float64 `json:"unitPrice"`
	TotalPrice float64 `json:"totalPrice"`
}

// Estimate is the contractor-independent cost breakdown for a project.
//
// Monetary components (MaterialCost, Transportation, Disposal) are rounded to
// whole currency units and LaborHours to one decimal before the value is
// constructed; Total is the sum of the rounded components so the displayed
// line items stay summable. Labor is excluded from Total because labor cost
// depends on a contractor's hourly rate, which is not known yet.
//
// An Estimate is a value object: created fresh per calculation, never mutated.
type Estimate struct {
	TemplateID     string             `json:"templateId"`
	Materials      []MaterialLineItem `json:"materials"`
	MaterialCost   float64            `json:"materialCost"`
	LaborHours     float64            `json:"laborHours"`
	Transportation float64            `json:"transportation"`
	Disposal       float64            `json:"disposal"`
	Complexity     Complexity         `json:"complexity"`
	EstimatedTime  string             `json:"estimatedTime"`
	Breakdown      map[string]float64 `json:"breakdown"`
	Total          float64            `json:"total"`
}

// ZeroEstimate is the documented degraded result for a failed calculation:
// zero cost, empty breakdown, never nil slices/maps.
func ZeroEstimate(templateID string) Estimate {
	return Estimate{
		TemplateID: templateID,
		Materials:  []MaterialLineItem{},
		Breakdown:  map[string]float64{},
	}
}
