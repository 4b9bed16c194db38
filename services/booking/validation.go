package booking

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Accepts the common UK national formats: +44 or leading 0, with optional
// spacing and area-code parentheses.
var ukPhonePattern = regexp.MustCompile(
	`^(?:(?:\+44\s?\d{4}|\(?0\d{4}\)?)\s?\d{3}\s?\d{3}|(?:\+44\s?\d{3}|\(?0\d{3}\)?)\s?\d{3}\s?\d{4}|(?:\+44\s?\d{2}|\(?0\d{2}\)?)\s?\d{4}\s?\d{4})$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("ukphone", func(fl validator.FieldLevel) bool {
		return ukPhonePattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

// ValidateRequest runs struct validation and converts failures into the
// field-keyed ValidationError callers can act on.
func ValidateRequest(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return err
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := &ValidationError{}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, FieldError{Field: fieldPath(fe), Message: messageFor(fe)})
	}
	return out
}

func fieldPath(fe validator.FieldError) string {
	// The namespace carries Go struct names for the root and for embedded
	// request variants; wire fields are the lowerCamel json names, so any
	// capitalized segment is a struct name and not part of the field key.
	var kept []string
	for _, seg := range strings.Split(fe.Namespace(), ".") {
		if seg == "" || (seg[0] >= 'A' && seg[0] <= 'Z') {
			continue
		}
		kept = append(kept, seg)
	}
	return strings.Join(kept, ".")
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a well-formed email address"
	case "ukphone":
		return "must be a valid UK phone number"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "len":
		return fmt.Sprintf("must be exactly %s characters", fe.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
