// Package validation registers the field rules used by the entity models on
// gin's validator engine.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	properNamePattern = regexp.MustCompile(`^[A-Z][a-zA-Z\s]*$`)
	cityPattern       = regexp.MustCompile(`^[A-Z][a-z]{2,49}$`)
	emailPattern      = regexp.MustCompile(`^[\w.]+@[a-zA-Z]+[\w.]*$`)
	phonePattern      = regexp.MustCompile(`^\+\d+$`)
)

// Messages describe each custom tag for API error responses
var Messages = map[string]string{
	"propername": "must start with an uppercase letter and contain only letters and spaces",
	"city":       "must start with an uppercase letter followed by 2 to 49 lowercase letters",
	"cafeemail":  "invalid email address format",
	"phone":      "must start with '+' followed by digits",
}

var registerOnce sync.Once

// Register installs the custom tags on gin's default validator. It is safe
// to call more than once.
func Register() error {
	var err error
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		err = RegisterOn(v)
	})
	return err
}

// RegisterOn installs the custom tags on v and reports fields by their
// json names.
func RegisterOn(v *validator.Validate) error {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	rules := map[string]*regexp.Regexp{
		"propername": properNamePattern,
		"city":       cityPattern,
		"cafeemail":  emailPattern,
		"phone":      phonePattern,
	}
	for tag, pattern := range rules {
		if err := v.RegisterValidation(tag, matches(pattern)); err != nil {
			return err
		}
	}
	return nil
}

func matches(pattern *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return pattern.MatchString(fl.Field().String())
	}
}

// FieldErrors flattens validator errors into a field -> message map.
func FieldErrors(err error) (map[string]string, bool) {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return nil, false
	}
	out := make(map[string]string, len(errs))
	for _, fe := range errs {
		out[fe.Field()] = describe(fe)
	}
	return out, true
}

func describe(fe validator.FieldError) string {
	if msg, ok := Messages[fe.Tag()]; ok {
		return msg
	}
	switch fe.Tag() {
	case "required":
		return "is required"
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters long", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters long", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	default:
		return fmt.Sprintf("failed on the '%s' rule", fe.Tag())
	}
}
