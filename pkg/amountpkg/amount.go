// Package amountpkg provides money amount parsing and validation shared by apps.
package amountpkg

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var (
	// ErrInvalid indicates the amount is not a decimal number.
	ErrInvalid = errors.New("invalid amount")
	// ErrNonPositive indicates the amount is zero or negative.
	ErrNonPositive = errors.New("amount must be greater than 0")
)

// Parse parses s as a strictly positive decimal amount.
func Parse(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, ErrInvalid
	}

	if !d.IsPositive() {
		return decimal.Zero, ErrNonPositive
	}

	return d, nil
}

// ValidAmount validates whether the field holds a positive decimal string.
var ValidAmount validator.Func = func(fl validator.FieldLevel) bool {
	if s, ok := fl.Field().Interface().(string); ok {
		_, err := Parse(s)
		return err == nil
	}

	return false
}
