package bind

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	v10 "github.com/go-playground/validator/v10"
	"github.com/xy-planning-network/checkpoint"
)

var structValidator = newValidator()

// newValidator constructs the *v10.Validate every Struct schema shares,
// applying default configuration.
func newValidator() *v10.Validate {
	v := v10.New()
	v.RegisterValidation("enum", validateEnumerable)
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			name = ""
		}

		if name == "" {
			name = strings.SplitN(field.Tag.Get("schema"), ",", 2)[0]
		}

		if name == "-" {
			name = ""
		}

		return name
	})

	return v
}

// validate checks the fields on structPtr match the rules set by "validate" struct tags.
// On success, validate returns no error.
// On failure, validate translates each issue to a [checkpoint.Issue],
// returning them all as [checkpoint.Issues].
func validate(structPtr any) error {
	err := structValidator.Struct(structPtr)
	if err == nil {
		return nil
	}

	var errs v10.ValidationErrors
	if !errors.As(err, &errs) {
		return fmt.Errorf("%w: %s", checkpoint.ErrUnexpected, err)
	}

	var issues checkpoint.Issues
	for _, ve := range errs {
		field := ve.Namespace()

		// Drop the leading struct type name so only field segments remain.
		ns := strings.SplitN(field, ".", 2)
		if len(ns) == 2 {
			field = ns[1]
		}

		issues = append(issues, checkpoint.Issue{
			Detail: message(ve),
			Path:   strings.Split(field, "."),
		})
	}

	return issues
}

// message renders a v10.FieldError as the human-readable detail
// transcribed into the error payload.
func message(ve v10.FieldError) string {
	switch ve.Tag() {
	case "required":
		return "Required"
	case "email":
		return "Must be a valid email address"
	case "uuid":
		return "Must be a valid UUID"
	case "url":
		return "Must be a valid URL"
	case "enum":
		return "Must be a valid value"
	case "oneof":
		return "Must be one of: " + ve.Param()
	case "min":
		if ve.Kind() == reflect.String {
			return fmt.Sprintf("Must be at least %s character(s)", ve.Param())
		}
		return "Must be at least " + ve.Param()
	case "max":
		if ve.Kind() == reflect.String {
			return fmt.Sprintf("Must be at most %s character(s)", ve.Param())
		}
		return "Must be at most " + ve.Param()
	case "len":
		return "Must have length " + ve.Param()
	case "gt":
		return "Must be greater than " + ve.Param()
	case "gte":
		return "Must be at least " + ve.Param()
	case "lt":
		return "Must be less than " + ve.Param()
	case "lte":
		return "Must be at most " + ve.Param()
	default:
		rule := ve.Tag()
		if ve.Param() != "" {
			rule += "=" + ve.Param()
		}

		return fmt.Sprintf("Must satisfy %q", rule)
	}
}

// validateEnumerable validates whether field is a valid Enumerable or slice of valid Enumerable.
func validateEnumerable(fl v10.FieldLevel) bool {
	field := fl.Field()

	if field.Kind() == reflect.Slice {
		vals := []reflect.Value{}
		for i := 0; i < field.Len(); i++ {
			vals = append(vals, field.Index(i))
		}

		return checkEnums(vals...)
	}

	return checkEnums(field)
}

// checkEnums asserts each [reflect.Value] is an Enumerable and valid.
func checkEnums(items ...reflect.Value) bool {
	if len(items) == 0 {
		return false
	}

	for _, item := range items {
		enum, ok := item.Interface().(checkpoint.Enumerable)
		if err := enum.Valid(); !ok || err != nil {
			return false
		}
	}

	return true
}
