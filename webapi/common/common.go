// Package common holds the response envelopes, error mapping and request
// validation shared by all HTTP handlers.
package common

import (
	"errors"
	"reflect"
	"strings"

	"github.com/amirasaad/minibank/pkg/domain"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/shopspring/decimal"
)

// Response defines the standard API response structure for success cases.
type Response struct {
	Status  int    `json:"status"`         // HTTP status code
	Message string `json:"message"`        // Human-readable explanation
	Data    any    `json:"data,omitempty"` // Response data
}

// ProblemDetails follows RFC 9457 Problem Details for HTTP APIs.
type ProblemDetails struct {
	Type     string `json:"type,omitempty"`     // A URI reference that identifies the problem type
	Title    string `json:"title"`              // Short, human-readable summary
	Status   int    `json:"status"`             // HTTP status code
	Detail   string `json:"detail,omitempty"`   // Human-readable explanation
	Instance string `json:"instance,omitempty"` // URI reference that identifies the specific occurrence
	Errors   any    `json:"errors,omitempty"`   // Optional: additional error details
}

// FieldError describes one failed validation rule.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

// MIMEProblemJSON is the media type of ProblemDetails responses.
const MIMEProblemJSON = "application/problem+json"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// Validate decimal amounts as numbers so gt=0 and friends apply.
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
	return v
}

// SuccessResponseJSON writes data wrapped in a Response envelope.
func SuccessResponseJSON(c *fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(Response{
		Status:  status,
		Message: message,
		Data:    data,
	})
}

// ProblemDetailsJSON writes an RFC 9457 error response. The status is taken
// from an int in args, otherwise derived from err with ErrorToStatusCode. A
// string in args becomes the detail; without one, the error text is used
// for anything but 500s.
func ProblemDetailsJSON(c *fiber.Ctx, title string, err error, args ...any) error {
	status := ErrorToStatusCode(err)
	detail := ""
	var errs any
	for _, arg := range args {
		switch v := arg.(type) {
		case int:
			status = v
		case string:
			detail = v
		default:
			errs = v
		}
	}
	if detail == "" && err != nil && status != fiber.StatusInternalServerError {
		detail = err.Error()
	}
	if status >= fiber.StatusInternalServerError {
		log.Errorf("%s: %v", title, err)
	}
	return c.Status(status).JSON(ProblemDetails{
		Type:     "about:blank",
		Title:    title,
		Status:   status,
		Detail:   detail,
		Instance: c.OriginalURL(),
		Errors:   errs,
	}, MIMEProblemJSON)
}

// ErrorToStatusCode maps domain errors to appropriate HTTP status codes.
func ErrorToStatusCode(err error) int {
	var fe *fiber.Error
	switch {
	case err == nil:
		return fiber.StatusInternalServerError
	case errors.As(err, &fe):
		return fe.Code
	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrBusinessRule):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrAlreadyExists):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

// ErrorHandler is the application-wide Fiber error handler.
func ErrorHandler(c *fiber.Ctx, err error) error {
	status := ErrorToStatusCode(err)
	return ProblemDetailsJSON(c, utils.StatusMessage(status), err, status)
}

// BindAndValidate parses the request body and validates it using go-playground/validator.
// Returns a pointer to the struct (populated), or writes an error response and returns nil.
func BindAndValidate[T any](c *fiber.Ctx) (*T, error) {
	var input T
	if err := c.BodyParser(&input); err != nil {
		return nil, ProblemDetailsJSON(c, "Invalid request body", err, fiber.StatusBadRequest, "Request body could not be parsed")
	}
	if err := validate.Struct(input); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return nil, ProblemDetailsJSON(c, "Validation failed", err, fiber.StatusBadRequest)
		}
		fields := make([]FieldError, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, FieldError{Field: fe.Field(), Rule: fe.Tag(), Param: fe.Param()})
		}
		return nil, ProblemDetailsJSON(c, "Validation failed", err, fiber.StatusBadRequest, "One or more fields are invalid", fields)
	}
	return &input, nil
}
