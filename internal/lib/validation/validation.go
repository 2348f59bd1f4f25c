package validation

import (
	"errors"
	"math"
	"reflect"
	"strconv"
	"strings"

	"campusapi/internal/lib/jsonval"

	"github.com/go-playground/validator/v10"
)

// Error is a client input problem. Its message is safe to return as is.
type Error struct {
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func NewError(msg string) error {
	return &Error{Message: msg}
}

// IsError reports whether err is a validation failure and returns its message.
func IsError(err error) (string, bool) {
	var vErr *Error
	if errors.As(err, &vErr) {
		return vErr.Message, true
	}

	return "", false
}

// New returns a validator that understands jsonval.Value fields.
//
// A falsy Value is seen as nil, so "required" fails for it. Otherwise the
// decoded Go value is validated, which lets tags like "positive" inspect it.
func New() *validator.Validate {
	v := validator.New()

	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		val, ok := field.Interface().(jsonval.Value)
		if !ok || !val.Truthy() {
			return nil
		}

		out := val.Interface()
		if out == nil {
			// Truthy but not decodable, e.g. a number literal beyond float64.
			return math.NaN()
		}

		return out
	}, jsonval.Value{})

	// Registration only fails on empty tags or nil funcs.
	_ = v.RegisterValidation("positive", positive)
	_ = v.RegisterValidation("strict_positive", strictPositive)

	return v
}

// positive accepts numbers and numeric strings greater than zero.
func positive(fl validator.FieldLevel) bool {
	field := fl.Field()

	switch field.Kind() {
	case reflect.Float32, reflect.Float64:
		return field.Float() > 0
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return field.Int() > 0
	case reflect.String:
		f, err := strconv.ParseFloat(strings.TrimSpace(field.String()), 64)
		return err == nil && f > 0 && f <= math.MaxFloat64
	default:
		return false
	}
}

// strictPositive accepts only real numbers greater than zero.
func strictPositive(fl validator.FieldLevel) bool {
	field := fl.Field()

	switch field.Kind() {
	case reflect.Float32, reflect.Float64:
		return field.Float() > 0
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return field.Int() > 0
	default:
		return false
	}
}

// Fields collects the struct field names that failed, keyed to the tag that
// failed them.
func Fields(err error) map[string]string {
	var validateErr validator.ValidationErrors
	if !errors.As(err, &validateErr) {
		return nil
	}

	out := make(map[string]string, len(validateErr))
	for _, e := range validateErr {
		out[e.Field()] = e.Tag()
	}

	return out
}
