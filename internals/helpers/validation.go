package helper

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldErrors flattens validator.v10 errors into {field: [messages]} keyed by
// the json tag name (set up via RegisterJSONTagNames).
func FieldErrors(err error) map[string][]string {
	out := map[string][]string{}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		out["_"] = []string{"invalid input"}
		return out
	}
	for _, fe := range ve {
		field := strings.ToLower(fe.Field())
		out[field] = append(out[field], messageFor(fe))
	}
	return out
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Enter a valid email address."
	case "max":
		return "Ensure this value has at most " + fe.Param() + " characters."
	case "min":
		return "Ensure this value has at least " + fe.Param() + " characters."
	case "oneof":
		return "Select a valid choice: " + fe.Param() + "."
	default:
		return "Invalid value."
	}
}

// RegisterJSONTagNames makes validator report json tag names instead of Go
// struct field names.
func RegisterJSONTagNames(v *validator.Validate) {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
}

// NewValidator returns a validator with json tag naming applied.
func NewValidator() *validator.Validate {
	v := validator.New()
	RegisterJSONTagNames(v)
	return v
}
