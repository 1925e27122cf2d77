package catalog

import (
	"testing"

	"renohub/internal/domain/entities"
)

func TestAll_ReturnsTemplatesInDisplayOrder(t *testing.T) {
	all := All()
	if len(all) != 5 {
		t.Fatalf("expected 5 templates, got %d", len(all))
	}

	want := []string{"deck-refresh", "firepit", "garden-bed", "lawn-mowing", "pressure-washing"}
	for i, id := range want {
		if all[i].ID != id {
			t.Fatalf("expected template %d to be %q, got %q", i, id, all[i].ID)
		}
	}
}

func TestGet(t *testing.T) {
	if _, ok := Get("deck-refresh"); !ok {
		t.Fatal("expected deck-refresh to exist")
	}
	if _, ok := Get("bathroom-remodel"); ok {
		t.Fatal("expected unknown id to miss")
	}
}

// Every dependsOn must reference a field declared on the same template,
// otherwise the dependent field could never become visible.
func TestTemplates_DependsOnReferencesExist(t *testing.T) {
	for _, tpl := range All() {
		ids := map[string]bool{}
		for _, f := range tpl.Fields {
			ids[f.ID] = true
		}
		for _, f := range tpl.Fields {
			if f.DependsOn != "" && !ids[f.DependsOn] {
				t.Fatalf("%s: field %q depends on unknown field %q", tpl.ID, f.ID, f.DependsOn)
			}
		}
	}
}

func TestTemplates_FieldIDsUnique(t *testing.T) {
	for _, tpl := range All() {
		seen := map[string]bool{}
		for _, f := range tpl.Fields {
			if seen[f.ID] {
				t.Fatalf("%s: duplicate field id %q", tpl.ID, f.ID)
			}
			seen[f.ID] = true
		}
	}
}

// Select options that drive a pricing table must resolve to a priced entry;
// a typo here silently zeroes a whole cost component.
func TestTemplates_SelectOptionsResolveInPricingTables(t *testing.T) {
	cases := []struct {
		templateID string
		fieldID    string
		table      string
	}{
		{"deck-refresh", "stainType", "stain"},
		{"firepit", "firepitType", "firepit"},
		{"firepit", "seatingType", "seating"},
		{"garden-bed", "soilType", "soil"},
	}

	for _, tc := range cases {
		tpl, ok := Get(tc.templateID)
		if !ok {
			t.Fatalf("template %q missing", tc.templateID)
		}
		field, ok := tpl.Field(tc.fieldID)
		if !ok {
			t.Fatalf("%s: field %q missing", tc.templateID, tc.fieldID)
		}
		table := tpl.Pricing.Tables[tc.table]
		for _, opt := range field.Options {
			if _, ok := table[opt.Value]; !ok {
				t.Fatalf("%s: option %q of %q has no %q pricing entry", tc.templateID, opt.Value, tc.fieldID, tc.table)
			}
		}
	}
}

// Labor condition factors and multipliers must cover every selectable value.
func TestTemplates_LaborFactorsCoverOptions(t *testing.T) {
	check := func(t *testing.T, tpl entities.Template, fieldID string, factors map[string]float64) {
		t.Helper()
		field, ok := tpl.Field(fieldID)
		if !ok {
			t.Fatalf("%s: field %q missing", tpl.ID, fieldID)
		}
		for _, opt := range field.Options {
			if _, ok := factors[opt.Value]; !ok {
				t.Fatalf("%s: option %q of %q has no labor factor", tpl.ID, opt.Value, fieldID)
			}
		}
	}

	deck, _ := Get("deck-refresh")
	check(t, deck, "deckCondition", deck.Pricing.Labor.Conditions)

	garden, _ := Get("garden-bed")
	check(t, garden, "groundCondition", garden.Pricing.Labor.Conditions)

	lawn, _ := Get("lawn-mowing")
	check(t, lawn, "grassHeight", lawn.Pricing.Labor.Multipliers["grassHeight"])
	check(t, lawn, "terrain", lawn.Pricing.Labor.Multipliers["terrain"])
	check(t, lawn, "obstacles", lawn.Pricing.Labor.Surcharges)

	washing, _ := Get("pressure-washing")
	check(t, washing, "dirtLevel", washing.Pricing.Labor.Multipliers["dirtLevel"])
	check(t, washing, "accessDifficulty", washing.Pricing.Labor.Multipliers["accessDifficulty"])
}

func TestContractors(t *testing.T) {
	all := Contractors()
	if len(all) != 3 {
		t.Fatalf("expected 3 contractors, got %d", len(all))
	}
	for _, c := range all {
		if c.HourlyRate <= 0 {
			t.Fatalf("%s: hourly rate must be positive, got %v", c.ID, c.HourlyRate)
		}
		if c.CommissionRate <= 0 || c.CommissionRate >= 100 {
			t.Fatalf("%s: commission rate out of range: %v", c.ID, c.CommissionRate)
		}
	}

	if _, ok := Contractor("contractor-2"); !ok {
		t.Fatal("expected contractor-2 to exist")
	}
	if _, ok := Contractor("contractor-99"); ok {
		t.Fatal("expected unknown contractor to miss")
	}

	// Returned slice is a copy; mutating it must not corrupt the directory.
	all[0].HourlyRate = 1
	if fresh, _ := Contractor(all[0].ID); fresh.HourlyRate == 1 {
		t.Fatal("Contractors() must return a copy")
	}
}
