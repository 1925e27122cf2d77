package entities

// Complexity buckets shown on template cards and carried into estimates.
type Complexity string

const (
	ComplexityLow    Complexity = "low"
	ComplexityMedium Complexity = "medium"
	ComplexityHigh   Complexity = "high"
)

// FieldType enumerates the form input kinds a template may declare.
type FieldType string

const (
	FieldNumber        FieldType = "number"
	FieldSelect        FieldType = "select"
	FieldCheckbox      FieldType = "checkbox"
	FieldCheckboxGroup FieldType = "checkbox-group"
	FieldRadio         FieldType = "radio"
	FieldTextarea      FieldType = "textarea"
	FieldRange         FieldType = "range"
	FieldFile          FieldType = "file"
	FieldText          FieldType = "text"
)

// FieldOption is one selectable value of a select/radio/checkbox-group field.
type FieldOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// FieldSpec declares one form input of a template.
//
// DependsOn names another field id in the same template; when that field's
// value is falsy the dependent field is hidden and its value must be ignored
// by the calculator.
type FieldSpec struct {
	ID          string        `json:"id"`
	Label       string        `json:"label"`
	Type        FieldType     `json:"type"`
	Required    bool          `json:"required"`
	Unit        string        `json:"unit,omitempty"`
	Min         float64       `json:"min,omitempty"`
	Max         float64       `json:"max,omitempty"`
	Step        float64       `json:"step,omitempty"`
	Placeholder string        `json:"placeholder,omitempty"`
	Description string        `json:"description,omitempty"`
	Options     []FieldOption `json:"options,omitempty"`
	DependsOn   string        `json:"dependsOn,omitempty"`
	Accept      string        `json:"accept,omitempty"`
	Multiple    bool          `json:"multiple,omitempty"`
	MaxFiles    int           `json:"maxFiles,omitempty"`
}

// PricedItem is a pricing-table entry: either a flat price or a per-sq-ft rate.
type PricedItem struct {
	Price        float64 `json:"price,omitempty"`
	PricePerSqFt float64 `json:"pricePerSqFt,omitempty"`
	Description  string  `json:"description"`
}

// AddOn is an optional service a customer can toggle on: a flat or per-unit
// material cost plus a flat labor-hour increment. Add-ons apply independently
// and cumulatively.
type AddOn struct {
	Price       float64 `json:"price,omitempty"`
	PricePerFt  float64 `json:"pricePerFt,omitempty"`
	LaborHours  float64 `json:"laborHours,omitempty"`
	Description string  `json:"description"`
}

// LaborModel holds the labor-hour formula constants of a template.
//
// Not every template uses every knob; the calculator for each template family
// knows which ones apply. Multipliers compose multiplicatively (grass height x
// terrain, dirt level x access); Surcharges are additive hours keyed by a
// checkbox-group value.
type LaborModel struct {
	Base        float64                       `json:"base"`
	PerSqFt     float64                       `json:"perSqFt,omitempty"`
	SeatingPrep float64                       `json:"seatingPrep,omitempty"`
	Conditions  map[string]float64            `json:"conditions,omitempty"`
	Multipliers map[string]map[string]float64 `json:"multipliers,omitempty"`
	Surcharges  map[string]float64            `json:"surcharges,omitempty"`
}

// PricingModel groups the lookup tables and scalar constants a template's
// calculator consumes. Tables are keyed first by group name (e.g. "stain",
// "seating"), then by the form-field option value.
//
// Invariant (verified by catalog tests, not at runtime): every option value of
// a pricing-consumed select/checkbox-group field has a matching table key.
type PricingModel struct {
	Tables         map[string]map[string]PricedItem `json:"tables"`
	Supplies       map[string]PricedItem            `json:"supplies,omitempty"`
	AddOns         map[string]AddOn                 `json:"addOns,omitempty"`
	Labor          LaborModel                       `json:"labor"`
	Transportation float64                          `json:"transportation"`
	Disposal       float64                          `json:"disposal"`
}

// Template is a project type: identity, ordered form schema and pricing model.
// Templates are immutable at runtime and loaded once into the catalog.
type Template struct {
	ID            string       `json:"id"`
	Title         string       `json:"title"`
	Description   string       `json:"description"`
	Category      string       `json:"category"`
	EstimatedTime string       `json:"estimatedTime"`
	Complexity    Complexity   `json:"complexity"`
	Icon          string       `json:"icon"`
	Fields        []FieldSpec  `json:"fields"`
	Pricing       PricingModel `json:"pricing"`
}

// Field returns the FieldSpec with the given id, if declared.
func (t Template) Field(id string) (FieldSpec, bool) {
	for _, f := range t.Fields {
		if f.ID == id {
			return f, true
		}
	}
	return FieldSpec{}, false
}
