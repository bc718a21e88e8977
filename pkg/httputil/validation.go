package httputil

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"golang.org/x/text/unicode/norm"
)

// Report the JSON and form names of fields in validation errors
func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			for _, tag := range []string{"json", "form"} {
				name, _, _ := strings.Cut(f.Tag.Get(tag), ",")
				if name != "" && name != "-" {
					return name
				}
			}
			return f.Name
		})
	}
}

func validationErrorToText(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", e.Field())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", e.Field(), e.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", e.Field(), e.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of %s", e.Field(), strings.Join(strings.Fields(e.Param()), ", "))
	}
	return fmt.Sprintf("%s is not valid", e.Field())
}

// ValidationError joins the messages for all failed fields into one error.
func ValidationError(errs validator.ValidationErrors) error {
	messages := make([]string, 0, len(errs))
	for _, e := range errs {
		messages = append(messages, validationErrorToText(e))
	}

	return errors.New(strings.Join(messages, ", "))
}

// Name trims and normalizes the name to Unicode NFC so that visually
// identical names compare equal.
func Name(name string) (string, error) {
	name = norm.NFC.String(strings.TrimSpace(name))
	if name == "" {
		return "", ErrEmptyName
	}
	return name, nil
}

// Date checks that a transaction date is either empty, a date or an RFC 3339 timestamp.
func Date(date string) (string, error) {
	if date == "" {
		return "", nil
	}

	if _, err := time.Parse(time.DateOnly, date); err == nil {
		return date, nil
	}

	if _, err := time.Parse(time.RFC3339, date); err == nil {
		return date, nil
	}

	return "", fmt.Errorf("%w, got %q", ErrInvalidDate, date)
}
