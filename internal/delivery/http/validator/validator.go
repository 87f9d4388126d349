// Package validator wires go-playground validation into echo, including the
// Indian business document formats collected at vendor sign-up.
package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

var (
	phonePattern   = regexp.MustCompile(`^[0-9]{10}$`)
	panPattern     = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)
	aadhaarPattern = regexp.MustCompile(`^[0-9]{12}$`)
	gstinPattern   = regexp.MustCompile(`^[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z][1-9A-Z]Z[0-9A-Z]$`)
)

type echoValidator struct {
	validate *validator.Validate
}

// New builds the request validator with the custom tags registered.
func New() echo.Validator {
	v := validator.New()

	// Registration errors only occur for invalid tag names; these are fixed
	// strings, so a failure is a programming error.
	mustRegister(v, "inphone", phonePattern)
	mustRegister(v, "pan", panPattern)
	mustRegister(v, "aadhaar", aadhaarPattern)
	mustRegister(v, "gstin", gstinPattern)

	return &echoValidator{validate: v}
}

func mustRegister(v *validator.Validate, tag string, pattern *regexp.Regexp) {
	err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		return pattern.MatchString(fl.Field().String())
	})
	if err != nil {
		panic(err)
	}
}

// Validate implements echo.Validator.
func (ev *echoValidator) Validate(i any) error {
	return ev.validate.Struct(i)
}
