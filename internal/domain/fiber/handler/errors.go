package handler

import (
	"errors"

	"github.com/fadilmartias/bizsim/internal/usecase"
	"github.com/fadilmartias/bizsim/internal/util"
	"github.com/gofiber/fiber/v2"
)

func badRequest(c *fiber.Ctx, message string, err error) error {
	return util.ErrorResponse(c, util.ErrorResponseFormat{
		Code:    fiber.StatusBadRequest,
		Message: message,
	}, err)
}

// usecaseError maps usecase errors to a status and message. Anything
// unrecognised is reported as a 500 with fallback.
func usecaseError(c *fiber.Ctx, fallback string, err error) error {
	var invalid *usecase.ValidationError
	switch {
	case errors.As(err, &invalid):
		if invalid.Field == "" {
			return badRequest(c, invalid.Message, nil)
		}
		return badRequest(c, invalid.Message,
			util.NewFormError(invalid.Message, map[string]string{invalid.Field: invalid.Message}))
	case errors.Is(err, usecase.ErrNotFound):
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: "Session not found",
		}, err)
	case errors.Is(err, usecase.ErrDatabaseUnavailable):
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "Database not available",
		}, err)
	default:
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: fallback,
		}, err)
	}
}
