package validation

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"belle-detente-backend/internal/domain"
)

// ContactValidator validates the two contact form shapes and translates
// validator errors into the field → messages mapping the UI consumes.
// Invalid user input is a normal result, never a Go error.
type ContactValidator struct {
	v *validator.Validate
}

func NewContactValidator() *ContactValidator {
	v := validator.New()

	// Key errors by the browser-facing form field name, not the Go field
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Enum check reads the shared establishment catalog so the validator can
	// never drift from the option list and the subject builder
	_ = v.RegisterValidation("establishment_type", func(fl validator.FieldLevel) bool {
		return domain.IsEstablishmentType(fl.Field().String())
	})

	return &ContactValidator{v: v}
}

// Validate checks a form struct against its validate tags. It returns nil
// when the form is valid, otherwise an ordered list of messages per form
// field.
func (cv *ContactValidator) Validate(form any) map[string][]string {
	err := cv.v.Struct(form)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		// Only reachable with a non-struct argument, which is a programming
		// error; surface it as a generic form failure rather than panicking.
		return map[string][]string{"_form": {"Formulaire invalide"}}
	}

	fieldErrors := make(map[string][]string, len(validationErrors))
	for _, e := range validationErrors {
		field := e.Field()
		fieldErrors[field] = append(fieldErrors[field], messageFor(field, e.Tag()))
	}
	return fieldErrors
}
