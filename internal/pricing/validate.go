package pricing

import (
	"fmt"

	"renohub/internal/domain/entities"
)

// ValidationIssue is one form-layer problem: a missing required field, an
// out-of-range number, or a value outside the declared options.
type ValidationIssue struct {
	FieldID string `json:"fieldId"`
	Message string `json:"message"`
}

// ValidateForm checks form data against the template's field schema. It is a
// form-layer gate: the calculator itself stays tolerant of partial or invalid
// input, so validation failures here never imply a calculation would fail.
//
// Fields whose dependsOn gate is falsy are skipped entirely; a hidden field
// is neither required nor range-checked.
func ValidateForm(tpl entities.Template, form FormData) []ValidationIssue {
	var issues []ValidationIssue

	for _, f := range tpl.Fields {
		if f.DependsOn != "" && !form.Bool(f.DependsOn) {
			continue
		}

		if f.Required && !hasValue(f, form) {
			issues = append(issues, ValidationIssue{
				FieldID: f.ID,
				Message: fmt.Sprintf("%s is required", f.Label),
			})
			continue
		}
		if !form.Has(f.ID) {
			continue
		}

		switch f.Type {
		case entities.FieldNumber, entities.FieldRange:
			n := form.Number(f.ID)
			if f.Min != 0 || f.Max != 0 {
				if n < f.Min || (f.Max > 0 && n > f.Max) {
					issues = append(issues, ValidationIssue{
						FieldID: f.ID,
						Message: fmt.Sprintf("%s must be between %g and %g", f.Label, f.Min, f.Max),
					})
				}
			}
		case entities.FieldSelect, entities.FieldRadio:
			if v := form.String(f.ID); v != "" && !isOption(f, v) {
				issues = append(issues, ValidationIssue{
					FieldID: f.ID,
					Message: fmt.Sprintf("%s has an unknown option %q", f.Label, v),
				})
			}
		case entities.FieldCheckboxGroup:
			for _, v := range form.Strings(f.ID) {
				if !isOption(f, v) {
					issues = append(issues, ValidationIssue{
						FieldID: f.ID,
						Message: fmt.Sprintf("%s has an unknown option %q", f.Label, v),
					})
				}
			}
		case entities.FieldFile:
			if f.MaxFiles > 0 && form.FileCount(f.ID) > f.MaxFiles {
				issues = append(issues, ValidationIssue{
					FieldID: f.ID,
					Message: fmt.Sprintf("%s accepts at most %d files", f.Label, f.MaxFiles),
				})
			}
		}
	}

	return issues
}

func hasValue(f entities.FieldSpec, form FormData) bool {
	if !form.Has(f.ID) {
		return false
	}
	switch f.Type {
	case entities.FieldSelect, entities.FieldRadio, entities.FieldText, entities.FieldTextarea:
		return form.String(f.ID) != ""
	case entities.FieldCheckboxGroup:
		return len(form.Strings(f.ID)) > 0
	case entities.FieldFile:
		return form.FileCount(f.ID) > 0
	default:
		return true
	}
}

func isOption(f entities.FieldSpec, value string) bool {
	for _, opt := range f.Options {
		if opt.Value == value {
			return true
		}
	}
	return false
}
