// Package services implements the application operations over the storage
// layer: per-entity CRUD with input validation, derived values, and the
// dashboard aggregation that composes the other services.
package services

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"mymoney/internal/core"
)

var validate = validator.New()

func checkInput(v any) error {
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("%w: %v", core.ErrValidation, err)
	}
	return nil
}
