package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"strings"
	"time"

	"grandplaza/shared/constant"
	"grandplaza/shared/failure"

	val "github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate *val.Validate

// decimalValue lets numeric tags such as gte=0 apply to decimal.Decimal fields.
func decimalValue(field reflect.Value) any {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		f, _ := d.Float64()

		return f
	}

	return nil
}

func parseDay(field reflect.Value) (time.Time, bool) {
	if field.Kind() != reflect.String {
		return time.Time{}, false
	}

	t, err := time.Parse(constant.DayFormat, field.String())

	return t, err == nil
}

// dateAfter validates that a YYYY-MM-DD string is strictly after the named sibling field.
func dateAfter(fl val.FieldLevel) bool {
	current, ok := parseDay(fl.Field())
	if !ok {
		return false
	}

	other, _, _, found := fl.GetStructFieldOKAdvanced2(fl.Parent(), fl.Param())
	if !found {
		return false
	}

	start, ok := parseDay(other)
	if !ok {
		// the sibling reports its own format error
		return true
	}

	return current.After(start)
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	validate.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})

	if err := validate.RegisterValidation("empty", func(fl val.FieldLevel) bool {
		return fl.Field().IsZero()
	}); err != nil {
		panic(err)
	}

	if err := validate.RegisterValidation("date_after", dateAfter); err != nil {
		panic(err)
	}
}

// Validate decodes a JSON body into data and validates it.
// Unknown fields are rejected so typos never silently drop input.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(data); err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	if err := validate.Struct(data); err != nil {
		return failure.BadRequestFromString(message(err)) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	if err := validate.Var(field, tag); err != nil {
		return failure.BadRequestFromString(message(err)) //nolint:wrapcheck
	}

	return nil
}
