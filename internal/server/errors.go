// Package server provides the HTTP API for the air-power calculator.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/airpower-calculator/internal/loadout"
	"github.com/jonathan/airpower-calculator/internal/mastery"
	"github.com/jonathan/airpower-calculator/internal/registry"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		validationErr *ErrValidation
		fieldErrs     validator.ValidationErrors
		notFound      *registry.NotFoundError
		modeErr       *mastery.UnsupportedModeError
		slotErr       *mastery.InvalidSlotNumberError
		buildErr      *loadout.BuildError
	)
	switch {
	case errors.As(err, &validationErr), errors.As(err, &fieldErrs):
		return http.StatusBadRequest
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &modeErr), errors.As(err, &slotErr), errors.As(err, &buildErr):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
