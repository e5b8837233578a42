package sheet

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/styled/pkg/components"
	stylederrors "github.com/alexisbeaulieu97/styled/pkg/errors"
	"github.com/alexisbeaulieu97/styled/pkg/styled"
)

// ValidateSheet checks field constraints, then that every target and override
// names a known tag or a component declared earlier in the sheet.
func ValidateSheet(s *Sheet) error {
	if s == nil {
		return stylederrors.NewValidationError("sheet", "sheet is nil", nil)
	}

	if err := validatorInstance().Struct(s); err != nil {
		return convertValidationError(err)
	}

	return validateReferences(s)
}

func validateReferences(s *Sheet) error {
	declared := make(map[string]int, len(s.Components))
	for i, component := range s.Components {
		if _, exists := declared[component.Name]; !exists {
			declared[component.Name] = i
		}
	}

	seen := make(map[string]struct{}, len(s.Components))
	for i, component := range s.Components {
		if isKnownTag(component.Name) {
			return stylederrors.NewValidationError(
				fieldForComponent(i, "name"),
				fmt.Sprintf("component name %q is a built-in tag", component.Name),
				nil,
			)
		}
		if _, dup := seen[component.Name]; dup {
			return stylederrors.NewValidationError(
				fieldForComponent(i, "name"),
				fmt.Sprintf("duplicate component name %q", component.Name),
				nil,
			)
		}

		if err := checkReference(fieldForComponent(i, "target"), component.Target, seen, declared); err != nil {
			return err
		}
		for j, attrs := range component.Attrs {
			if err := checkOverride(fieldForComponent(i, fmt.Sprintf("attrs[%d].as", j)), attrs.As, seen, declared); err != nil {
				return err
			}
		}
		if component.Config != nil {
			for j, attrs := range component.Config.Attrs {
				if err := checkOverride(fieldForComponent(i, fmt.Sprintf("config.attrs[%d].as", j)), attrs.As, seen, declared); err != nil {
					return err
				}
			}
		}

		seen[component.Name] = struct{}{}
	}
	return nil
}

func checkOverride(field, ref string, seen map[string]struct{}, declared map[string]int) error {
	if ref == "" {
		return nil
	}
	return checkReference(field, ref, seen, declared)
}

func checkReference(field, ref string, seen map[string]struct{}, declared map[string]int) error {
	if _, ok := seen[ref]; ok {
		return nil
	}
	if _, ok := declared[ref]; ok {
		return stylederrors.NewValidationError(field, fmt.Sprintf("forward reference to component %q", ref), nil)
	}
	if isKnownTag(ref) {
		return nil
	}
	return stylederrors.NewValidationError(field, fmt.Sprintf("unknown target %q", ref), nil)
}

func isKnownTag(name string) bool {
	for _, tag := range components.KnownTags() {
		if tag == styled.Tag(name) {
			return true
		}
	}
	return false
}

// convertValidationError normalizes validator errors into sheet validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return stylederrors.NewValidationError(field, msg, err)
	}

	return stylederrors.NewValidationError("sheet", err.Error(), err)
}

func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.StructNamespace()
	parts := strings.Split(ns, ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	var lowered []string
	for _, part := range parts {
		lowered = append(lowered, strings.ToLower(part))
	}
	return strings.Join(lowered, ".")
}

func fieldForComponent(index int, field string) string {
	return fmt.Sprintf("components[%d].%s", index, field)
}
