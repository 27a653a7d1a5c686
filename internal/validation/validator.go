// Package validation wraps go-playground/validator with the tags the wizard's
// forms use and turns failures into field-level messages.
package validation

import (
	"errors"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// emailPattern is deliberately minimal: "text@text.text".
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Validator validates structs tagged with `validate:"..."`.
type Validator struct {
	v *validator.Validate
}

// New creates a Validator with the custom tags registered.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)
	// registration only fails on empty tags or nil funcs
	_ = v.RegisterValidation("nonblank", isNonBlank)
	_ = v.RegisterValidation("simpleemail", isSimpleEmail)
	return &Validator{v: v}
}

var (
	defaultOnce      sync.Once
	defaultValidator *Validator
)

// Default returns a process-wide Validator. validator.Validate is safe for concurrent use.
func Default() *Validator {
	defaultOnce.Do(func() {
		defaultValidator = New()
	})
	return defaultValidator
}

// Struct validates s and returns field -> message for every failing field,
// or nil when s is valid.
func (val *Validator) Struct(s any) map[string]string {
	err := val.v.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"_": err.Error()}
	}
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		out[fe.Field()] = messageFor(fe)
	}
	return out
}

// Var validates a single value against a tag.
func (val *Validator) Var(field any, tag string) error {
	return val.v.Var(field, tag)
}

// IsEmail reports whether s has the minimal email shape.
func IsEmail(s string) bool {
	return emailPattern.MatchString(s)
}

func isNonBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func isSimpleEmail(fl validator.FieldLevel) bool {
	return IsEmail(fl.Field().String())
}

// jsonFieldName reports fields by their JSON name so errors line up with request bodies.
func jsonFieldName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return f.Name
	}
	return name
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "nonblank", "required":
		return "is required"
	case "simpleemail", "email":
		return "must be a valid email address"
	case "eq":
		if fe.Kind() == reflect.Bool {
			return "must be accepted"
		}
		return "must equal " + fe.Param()
	case "e164":
		return "must be a valid phone number"
	case "max":
		return "is too long"
	default:
		return "is invalid"
	}
}
