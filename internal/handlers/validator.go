package handlers

import (
	"budgethero/internal/validation"

	"github.com/labstack/echo/v4"
)

// CustomValidator implements echo.Validator interface
type CustomValidator struct {
	validator *validation.Validator
}

// NewValidator creates a validator with the domain rules registered
func NewValidator() echo.Validator {
	return &CustomValidator{validator: validation.GetValidator()}
}

// NewCategoryValidator creates a validator whose category rule follows the
// loaded classification rules
func NewCategoryValidator(known func(string) bool) echo.Validator {
	return &CustomValidator{validator: validation.NewValidatorWithCategories(known)}
}

// Validate implements the echo.Validator interface
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
