package dto

import (
	"fmt"
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var currencyCodePattern = regexp.MustCompile(`^[A-Z]{3}$`)

// IsCurrencyCode reports whether code is three uppercase ASCII letters.
func IsCurrencyCode(code string) bool {
	return currencyCodePattern.MatchString(code)
}

func validateCurrencyCode(fl validator.FieldLevel) bool {
	return IsCurrencyCode(fl.Field().String())
}

// RegisterValidators adds the custom binding rules to gin's validator engine.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
	}
	return v.RegisterValidation("currencycode", validateCurrencyCode)
}
