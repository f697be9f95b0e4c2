package config

import (
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/inputkit/internal/styling"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	inputNamePattern = regexp.MustCompile(`^[a-z0-9_-]+$`)
	propKeyPattern   = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9]*$`)
	overlayKeys      = map[string]struct{}{
		styling.KeyHover:    {},
		styling.KeyFocus:    {},
		styling.KeyDisabled: {},
		styling.KeyInvalid:  {},
	}
	adornmentKinds = map[string]struct{}{"text": {}, "icon": {}, "status": {}}
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("input_name", func(fl validator.FieldLevel) bool {
			return inputNamePattern.MatchString(fl.Field().String())
		})

		// Underscore-prefixed keys are reserved for state overlays.
		_ = v.RegisterValidation("prop_key", func(fl validator.FieldLevel) bool {
			key := fl.Field().String()
			if strings.HasPrefix(key, "_") {
				_, ok := overlayKeys[key]
				return ok
			}
			return propKeyPattern.MatchString(key)
		})

		_ = v.RegisterValidation("adornment_kind", func(fl validator.FieldLevel) bool {
			_, ok := adornmentKinds[strings.ToLower(fl.Field().String())]
			return ok
		})

		validateInst = v
	})

	return validateInst
}

// GetValidator returns a configured validator instance for use outside the config package.
func GetValidator() *validator.Validate {
	return validatorInstance()
}
