package dto

import (
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// fraction validates that a rate-like field lies in [0, 1). Works for both
// float64 and decimal.Decimal fields.
func fraction(fl validator.FieldLevel) bool {
	switch v := fl.Field().Interface().(type) {
	case float64:
		return v >= 0 && v < 1
	case decimal.Decimal:
		return !v.IsNegative() && v.LessThan(decimal.NewFromInt(1))
	default:
		return false
	}
}

// RegisterCustomValidations wires the model-specific binding validations into
// the given validator engine. Call once at startup.
func RegisterCustomValidations(v *validator.Validate) error {
	return v.RegisterValidation("fraction", fraction)
}
