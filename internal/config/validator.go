package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/inputkit/internal/styling"
	inputkiterrors "github.com/alexisbeaulieu97/inputkit/pkg/errors"
)

// ValidateDocument performs schema and cross-field validation on a preview document.
func ValidateDocument(doc *Document) error {
	if doc == nil {
		return inputkiterrors.NewValidationError("document", "document is nil", nil)
	}

	if err := validatorInstance().Struct(doc); err != nil {
		return convertValidationError(err)
	}

	names := make(map[string]struct{}, len(doc.Inputs))
	for i, in := range doc.Inputs {
		if _, exists := names[in.Name]; exists {
			return inputkiterrors.NewValidationError(fieldForInput(i, "name"), fmt.Sprintf("duplicate input name %q", in.Name), nil)
		}
		names[in.Name] = struct{}{}

		for _, key := range []string{styling.KeyHover, styling.KeyFocus, styling.KeyDisabled, styling.KeyInvalid} {
			value, ok := in.Props[key]
			if !ok {
				continue
			}
			if _, isMap := styling.AsProps(value); !isMap {
				return inputkiterrors.NewValidationError(fieldForInput(i, "props."+key), "state overlay must be a mapping", nil)
			}
		}
	}

	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return inputkiterrors.NewValidationError(field, msg, err)
	}

	return inputkiterrors.NewValidationError("document", err.Error(), err)
}

// yamlishFieldName drops the root type and lower-cases each path segment.
func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	lowered := make([]string, 0, len(parts))
	for _, part := range parts {
		lowered = append(lowered, strings.ToLower(part))
	}
	return strings.Join(lowered, ".")
}

func fieldForInput(index int, field string) string {
	return fmt.Sprintf("inputs[%d].%s", index, field)
}
