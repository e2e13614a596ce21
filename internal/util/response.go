package util

import (
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/fadilmartias/bizsim/internal/config"
	"github.com/fadilmartias/bizsim/internal/response"
	"github.com/gofiber/fiber/v2"
)

type SuccessResponseFormat struct {
	Code       int
	Message    string
	Data       fiber.Map
	Pagination *response.Pagination
}

type ErrorResponseFormat struct {
	Code       int
	Message    string
	DevMessage string
	Details    any
	Trace      string
}

type OrderedErrorResponse struct {
	Success    bool   `json:"success"`
	Error      string `json:"error"`
	DevMessage string `json:"dev_message,omitempty"`
	Details    any    `json:"details,omitempty"`
	Trace      string `json:"trace,omitempty"`
}

// FormError reports validation failures keyed by request field.
type FormError struct {
	Errors  map[string]string
	Message string
}

func (e *FormError) Error() string {
	return fmt.Sprintf("form error: %s", e.Message)
}

func NewFormError(message string, fields map[string]string) *FormError {
	return &FormError{
		Message: message,
		Errors:  fields,
	}
}

// SuccessResponse writes {success: true, ...Data}. Payload keys sit next to
// the success flag so clients read e.g. body.simulation directly.
func SuccessResponse(c *fiber.Ctx, params SuccessResponseFormat) error {
	body := fiber.Map{"success": true}
	if params.Message != "" {
		body["message"] = params.Message
	}
	if params.Pagination != nil {
		body["pagination"] = params.Pagination
	}
	for k, v := range params.Data {
		if k == "success" {
			continue
		}
		body[k] = v
	}

	code := params.Code
	if code == 0 {
		code = fiber.StatusOK
	}
	return c.Status(code).JSON(body)
}

// ErrorResponse writes {success: false, error}. A FormError's fields become
// details. Outside production the underlying error and a stack trace are
// attached for debugging.
func ErrorResponse(c *fiber.Ctx, params ErrorResponseFormat, errs ...error) error {
	body := OrderedErrorResponse{
		Success: false,
		Error:   params.Message,
	}
	if params.Details != nil {
		body.Details = params.Details
	}
	var formErr *FormError
	if len(errs) > 0 && errors.As(errs[0], &formErr) {
		body.Details = formErr.Errors
	}
	if !config.LoadAppConfig().IsProduction() {
		if len(errs) > 0 && errs[0] != nil {
			body.DevMessage = errs[0].Error()
			body.Trace = string(debug.Stack())
		}

		if params.DevMessage != "" {
			body.DevMessage = params.DevMessage
		}
		if params.Trace != "" {
			body.Trace = params.Trace
		}
	}

	errorCode := params.Code
	if params.Code == 0 {
		errorCode = fiber.StatusInternalServerError
	}
	return c.Status(errorCode).JSON(body)
}
