// Package validation turns untyped request input into checked values. All
// violated constraints of one input are reported together in a single
// message, the way the public forms expect them.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Error is an aggregated validation failure.
type Error struct {
	Messages []string
}

func (e *Error) Error() string {
	return strings.Join(e.Messages, ", ")
}

func newError(msgs ...string) *Error {
	return &Error{Messages: msgs}
}

var (
	phonePattern  = regexp.MustCompile(`^\+?[1-9]\d{0,15}$`)
	digitsPattern = regexp.MustCompile(`^\d+$`)

	affiliations     = map[string]bool{"GT Student": true, "Other": true}
	experienceLevels = map[string]bool{"Beginner": true, "Intermediate": true, "Advanced": true}
)

var (
	instance *validator.Validate
	initOnce sync.Once
)

// Validator returns the shared, fully registered validator.
func Validator() *validator.Validate {
	initOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(fieldLabel)
		mustRegister(v, "phone", func(fl validator.FieldLevel) bool {
			return phonePattern.MatchString(fl.Field().String())
		})
		mustRegister(v, "affiliation", func(fl validator.FieldLevel) bool {
			return affiliations[fl.Field().String()]
		})
		mustRegister(v, "experience", func(fl validator.FieldLevel) bool {
			return experienceLevels[fl.Field().String()]
		})
		mustRegister(v, "digits", func(fl validator.FieldLevel) bool {
			return digitsPattern.MatchString(fl.Field().String())
		})
		mustRegister(v, "positive", func(fl validator.FieldLevel) bool {
			n, err := strconv.Atoi(fl.Field().String())
			return err == nil && n > 0
		})
		mustRegister(v, "maxnum", func(fl validator.FieldLevel) bool {
			n, err := strconv.Atoi(fl.Field().String())
			limit, perr := strconv.Atoi(fl.Param())
			return err == nil && perr == nil && n <= limit
		})
		instance = v
	})
	return instance
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register validation %q: %v", tag, err))
	}
}

// fieldLabel names a field in messages: the label tag, else the json name.
func fieldLabel(f reflect.StructField) string {
	if label := f.Tag.Get("label"); label != "" {
		return label
	}
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return f.Name
	}
	return name
}

// Struct validates s and returns an *Error listing every failed constraint.
func Struct(s any) error {
	err := Validator().Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, message(fe))
	}
	return newError(msgs...)
}

func message(fe validator.FieldError) string {
	label := fe.Field()
	isString := fe.Kind() == reflect.String

	switch fe.Tag() {
	case "required":
		return label + " is required"
	case "min":
		if isString {
			if fe.Param() == "1" {
				return label + " is required"
			}
			return fmt.Sprintf("%s must be at least %s characters", label, fe.Param())
		}
		return label + " must be a positive number"
	case "max":
		if isString {
			return fmt.Sprintf("%s cannot exceed %s characters", label, fe.Param())
		}
		return fmt.Sprintf("%s cannot exceed %s", label, fe.Param())
	case "url", "http_url":
		return label + " must be a valid URL"
	case "email":
		return "Invalid email format"
	case "phone":
		return "Please enter a valid phone number"
	case "affiliation":
		return `Affiliation must be either "GT Student" or "Other"`
	case "experience":
		return "Experience level must be Beginner, Intermediate, or Advanced"
	case "digits":
		return label + " must be a number"
	case "positive":
		return label + " must be a positive number"
	case "maxnum":
		return fmt.Sprintf("%s cannot exceed %s", label, fe.Param())
	default:
		return label + " is invalid"
	}
}

// DecodeError converts a body decoding failure into an *Error. Errors that
// already are validation errors pass through unchanged.
func DecodeError(err error) error {
	if err == nil {
		return nil
	}

	var verr *Error
	if errors.As(err, &verr) {
		return verr
	}

	var typeErr *json.UnmarshalTypeError
	var syntaxErr *json.SyntaxError
	var maxBytesErr *http.MaxBytesError

	switch {
	case errors.Is(err, io.EOF):
		return newError("Request body is required")
	case errors.As(err, &maxBytesErr):
		return newError("Request body too large")
	case errors.As(err, &typeErr):
		field := typeErr.Field
		if field == "" {
			return newError("Request body must be a JSON object")
		}
		return newError(fmt.Sprintf("%s must be of type %s", field, jsonKind(typeErr.Type)))
	case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF):
		return newError("Malformed JSON body")
	default:
		return newError("Invalid request body")
	}
}

func jsonKind(t reflect.Type) string {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Bool:
		return "boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "integer"
	case reflect.Float32, reflect.Float64:
		return "number"
	case reflect.String:
		return "string"
	default:
		return t.Kind().String()
	}
}
