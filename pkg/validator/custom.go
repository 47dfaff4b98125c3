package validator

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

func RegisterCustomValidations(validate *validator.Validate) {
	validate.RegisterValidation("lat", validateLat)
	validate.RegisterValidation("lng", validateLng)
	validate.RegisterValidation("risklevel", validateRiskLevel)
}

func validateLat(fl validator.FieldLevel) bool {
	lat := fl.Field().Float()
	return lat >= -90.0 && lat <= 90.0
}

func validateLng(fl validator.FieldLevel) bool {
	lng := fl.Field().Float()
	return lng >= -180.0 && lng <= 180.0
}

// risk level input is case-insensitive; the service normalizes to uppercase
func validateRiskLevel(fl validator.FieldLevel) bool {
	switch strings.ToUpper(fl.Field().String()) {
	case "LOW", "MEDIUM", "HIGH", "SEVERE":
		return true
	}
	return false
}
