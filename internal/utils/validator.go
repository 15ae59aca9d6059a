// internal/utils/validator.go
package utils

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

var (
	phonePattern  = regexp.MustCompile(`^[0-9]{10}$`)
	expiryPattern = regexp.MustCompile(`^(0[1-9]|1[0-2])/[0-9]{2}$`)
)

func init() {
	validate = validator.New()
	validate.RegisterValidation("phone10", validatePhone10)
	validate.RegisterValidation("card_expiry", validateCardExpiry)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// validatePhone10 accepts exactly ten digits, the phone format the checkout
// form requires.
func validatePhone10(fl validator.FieldLevel) bool {
	return phonePattern.MatchString(fl.Field().String())
}

func validateCardExpiry(fl validator.FieldLevel) bool {
	return expiryPattern.MatchString(fl.Field().String())
}

type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

func GetValidationErrors(err error) []ValidationError {
	var validationErrors []ValidationError

	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrs {
			validationErrors = append(validationErrors, ValidationError{
				Field:   strings.ToLower(e.Field()),
				Tag:     e.Tag(),
				Message: getValidationMessage(e),
			})
		}
	}

	return validationErrors
}

func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required", "required_if":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	case "phone10":
		return "Phone number must be exactly 10 digits"
	case "card_expiry":
		return "Expiry must be in MM/YY format"
	case "gt", "gte":
		return e.Field() + " must be greater than " + e.Param()
	default:
		return e.Field() + " is invalid"
	}
}
