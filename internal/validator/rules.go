package validator

import (
	"log"

	"banarts/internal/auth"
	"banarts/internal/models"

	"github.com/go-playground/validator/v10"
)

func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-user-role", validateUserRole)
	mustRegister("is-event-status", validateEventStatus)
	mustRegister("is-strong-password", validateStrongPassword)
}

// Empty values pass; pair with 'required' where needed.

func validateUserRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "" || models.UserRole(value).IsValid()
}

func validateEventStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "" || models.EventStatus(value).IsValid()
}

func validateStrongPassword(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "" || auth.ValidatePassword(value) == nil
}
