package theme

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	inputkiterrors "github.com/alexisbeaulieu97/inputkit/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance configures and returns the shared validator used for theme documents.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()
		v.RegisterStructValidation(validateComponentTheme, ComponentTheme{})
		validateInst = v
	})
	return validateInst
}

// validateComponentTheme rejects default props naming a variant or size the
// component does not define.
func validateComponentTheme(sl validator.StructLevel) {
	ct := sl.Current().Interface().(ComponentTheme)

	if variant, ok := ct.DefaultProps.String("variant"); ok && len(ct.Variants) > 0 {
		if _, found := ct.Variants[variant]; !found {
			sl.ReportError(variant, "DefaultProps.variant", "variant", "known_variant", variant)
		}
	}
	if size, ok := ct.DefaultProps.String("size"); ok && len(ct.Sizes) > 0 {
		if _, found := ct.Sizes[size]; !found {
			sl.ReportError(size, "DefaultProps.size", "size", "known_size", size)
		}
	}
}

// Load reads, parses and validates a YAML theme file. Components missing
// from the file fall back to the built-in definitions.
func Load(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, inputkiterrors.NewParseError(path, 0, err)
	}
	return Parse(path, data)
}

// Parse decodes a YAML theme document. name is used in error messages only.
func Parse(name string, data []byte) (*Theme, error) {
	var t Theme
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, inputkiterrors.NewYAMLError(name, err)
	}
	if err := Validate(&t); err != nil {
		return nil, err
	}
	return Default().Extend(&t), nil
}

// Validate checks a theme against its validation rules, returning a
// ValidationError for the first failing field.
func Validate(t *Theme) error {
	err := validatorInstance().Struct(t)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return inputkiterrors.NewValidationError(fe.Namespace(), fmt.Sprintf("failed %q rule (value %v)", fe.Tag(), fe.Value()), err)
	}
	return inputkiterrors.NewValidationError("", err.Error(), err)
}

// Extend returns a copy of t with other's colours and components layered
// on top. Component themes are replaced whole, colour families shade by shade.
func (t *Theme) Extend(other *Theme) *Theme {
	out := &Theme{
		Name:       t.Name,
		Colors:     make(map[string]map[string]string, len(t.Colors)),
		Components: make(map[string]ComponentTheme, len(t.Components)),
	}
	for family, shades := range t.Colors {
		out.Colors[family] = copyShades(shades)
	}
	for name, ct := range t.Components {
		out.Components[name] = ct
	}
	if other == nil {
		return out
	}

	if other.Name != "" {
		out.Name = other.Name
	}
	for family, shades := range other.Colors {
		merged := copyShades(out.Colors[family])
		for shade, color := range shades {
			merged[shade] = color
		}
		out.Colors[family] = merged
	}
	for name, ct := range other.Components {
		out.Components[name] = ct
	}
	return out
}

func copyShades(shades map[string]string) map[string]string {
	out := make(map[string]string, len(shades))
	for k, v := range shades {
		out[k] = v
	}
	return out
}
