package mqerr

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

const (
	CodeNotFound             = "NOT_FOUND"
	CodeInvalidRequest       = "INVALID_REQUEST"
	CodeInternalError        = "INTERNAL_ERROR"
	CodeUnauthorized         = "UNAUTHORIZED"
	CodeNotRecurring         = "NOT_RECURRING"
	CodeInvalidDateFormat    = "INVALID_DATE_FORMAT"
	CodeInvalidRange         = "INVALID_RANGE"
	CodeCrossTenantReference = "CROSS_TENANT_REFERENCE"
)

var (
	// ErrNotFound is returned when a resource does not exist or is not visible to the caller's organization.
	ErrNotFound = New(fiber.StatusNotFound, CodeNotFound, "resource not found with given parameters")

	// ErrInvalidReq is returned when a request is invalid.
	ErrInvalidReq = New(fiber.StatusBadRequest, CodeInvalidRequest, "invalid request: some or all request parameters are invalid")

	// ErrInternalError is returned when an internal error occurs.
	ErrInternalError = New(fiber.StatusInternalServerError, CodeInternalError, "internal server error occurred")

	// ErrUnauthorized is returned when the gateway did not supply a resolvable organization context.
	ErrUnauthorized = New(fiber.StatusUnauthorized, CodeUnauthorized, "missing or invalid organization context")

	// ErrNotRecurring is returned when materialization is requested on an event without a weekly rule.
	ErrNotRecurring = New(fiber.StatusBadRequest, CodeNotRecurring, "event is not a weekly recurring event")

	// ErrInvalidDateFormat is returned when a calendar date is not in YYYY-MM-DD form.
	ErrInvalidDateFormat = New(fiber.StatusBadRequest, CodeInvalidDateFormat, "date must be a calendar date in YYYY-MM-DD form")

	// ErrInvalidRange is returned when a date range ends before it starts.
	ErrInvalidRange = New(fiber.StatusBadRequest, CodeInvalidRange, "end date must not be before start date")

	// ErrCrossTenantReference is returned when a referenced resource belongs to another organization.
	ErrCrossTenantReference = New(fiber.StatusBadRequest, CodeCrossTenantReference, "referenced resource belongs to another organization")
)

type Extras map[string]interface{}

type MarqueeError struct {
	StatusCode int    `example:"400"`
	ErrorCode  string `example:"INVALID_REQUEST"`
	Message    string `example:"invalid request: some or all request parameters are invalid"`
	Extras     *Extras
}

func New(statusCode int, errorCode string, message string) *MarqueeError {
	return &MarqueeError{
		StatusCode: statusCode,
		ErrorCode:  errorCode,
		Message:    message,
	}
}

func (e MarqueeError) Msg(format string, parts ...interface{}) *MarqueeError {
	e.Message = fmt.Sprintf(format, parts...)
	return &e
}

func (e MarqueeError) WithExtras(extras Extras) *MarqueeError {
	e.Extras = &extras
	return &e
}

func NewInvalidViolations(violations interface{}) *MarqueeError {
	e := *ErrInvalidReq
	e.Extras = &Extras{
		"violations": violations,
	}
	return &e
}

func (e *MarqueeError) Error() string {
	return fmt.Sprintf("%s: %s", e.ErrorCode, e.Message)
}
