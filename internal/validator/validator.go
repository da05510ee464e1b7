// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"monevo/internal/models"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("periodicity", validatePeriodicity)
		_ = v.RegisterValidation("movement_kind", validateMovementKind)
	}
}

func validatePeriodicity(fl validator.FieldLevel) bool {
	return models.Periodicity(fl.Field().String()).Valid()
}

func validateMovementKind(fl validator.FieldLevel) bool {
	return models.MovementKind(fl.Field().String()).Valid()
}
