package sheet

import (
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/styled/pkg/components"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern        = regexp.MustCompile(`^\d+\.\d+\.\d+(?:-[0-9A-Za-z-.]+)?(?:\+[0-9A-Za-z-.]+)?$`)
	componentNamePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_-]*$`)
)

// validatorInstance configures and returns the shared validator instance used across the sheet package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("component_name", func(fl validator.FieldLevel) bool {
			return componentNamePattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("theme_name", func(fl validator.FieldLevel) bool {
			_, ok := components.ThemeByName(fl.Field().String())
			return ok
		})

		validateInst = v
	})

	return validateInst
}

// GetValidator returns the configured validator instance for use outside the sheet package.
func GetValidator() *validator.Validate {
	return validatorInstance()
}
