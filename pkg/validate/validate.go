package validate

import (
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var v = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("decimal_gt", decimalGT); err != nil {
		panic(err)
	}
	if err := v.RegisterValidation("decimal_gte", decimalGTE); err != nil {
		panic(err)
	}
	return v
}

// Struct validates a request DTO against its validate tags.
func Struct(s any) error {
	return v.Struct(s)
}

func decimalGT(fl validator.FieldLevel) bool {
	value, ok := fl.Field().Interface().(decimal.Decimal)
	if !ok {
		return false
	}
	bound, err := decimal.NewFromString(fl.Param())
	if err != nil {
		return false
	}
	return value.GreaterThan(bound)
}

func decimalGTE(fl validator.FieldLevel) bool {
	value, ok := fl.Field().Interface().(decimal.Decimal)
	if !ok {
		return false
	}
	bound, err := decimal.NewFromString(fl.Param())
	if err != nil {
		return false
	}
	return value.GreaterThanOrEqual(bound)
}
