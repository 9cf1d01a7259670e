package utils

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

type Validator struct {
	validate *validator.Validate
}

var hhmmPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

func NewValidator() *Validator {
	v := validator.New()

	// Custom validations
	v.RegisterValidation("hhmm", validateHHMM)

	return &Validator{
		validate: v,
	}
}

func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

// Time-of-day fields are zero-padded "HH:MM" strings so that plain string
// comparison orders them correctly.
func validateHHMM(fl validator.FieldLevel) bool {
	return hhmmPattern.MatchString(fl.Field().String())
}
