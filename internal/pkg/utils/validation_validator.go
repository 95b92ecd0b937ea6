package utils

import (
	"clinibook-service/internal/pkg/constvars"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

var (
	digitsRegex   = regexp.MustCompile(constvars.RegexDigitsOnly)
	timeHHMMRegex = regexp.MustCompile(constvars.RegexTimeHHMM)
)

func init() {
	validate = validator.New()
	validate.RegisterValidation("phone_digits", validatePhoneDigits)
	validate.RegisterValidation("time_hhmm", validateTimeHHMM)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// validatePhoneDigits accepts empty values; the phone field is optional and
// only constrained when the caller filled it in.
func validatePhoneDigits(fl validator.FieldLevel) bool {
	phone := fl.Field().String()
	if phone == "" {
		return true
	}
	return len(digitsRegex.FindAllString(phone, -1)) >= 10
}

func validateTimeHHMM(fl validator.FieldLevel) bool {
	return timeHHMMRegex.MatchString(fl.Field().String())
}
