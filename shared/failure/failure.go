package failure

import (
	"errors"
	"net/http"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var ForbiddenError = &Failure{Code: http.StatusForbidden, Message: "You don't have the required permissions"}
var SalonScopeMissing = &Failure{Code: http.StatusUnauthorized, Message: "salon scope is missing"}

// Error returns the error code and message in a formatted string.
func (e *Failure) Error() string {
	return e.Message
}

func newFailure(code int, msg string) error {
	return &Failure{
		Code:    code,
		Message: msg,
	}
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return newFailure(http.StatusBadRequest, err.Error())
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return newFailure(http.StatusBadRequest, msg)
}

// Unauthorized returns a new Failure with code for unauthorized requests.
func Unauthorized(msg string) error {
	return newFailure(http.StatusUnauthorized, msg)
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return newFailure(http.StatusInternalServerError, err.Error())
	}

	return nil
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(entityName string) error {
	return newFailure(http.StatusNotFound, entityName)
}

// Conflict returns a new Failure with code for conflict situations.
func Conflict(message string) error {
	return newFailure(http.StatusConflict, message)
}

func Forbidden(msg string) error {
	return newFailure(http.StatusForbidden, msg)
}

// Unprocessable is used when the request is well formed but cannot be applied,
// such as a gesture that does not address a rendered event.
func Unprocessable(msg string) error {
	return newFailure(http.StatusUnprocessableEntity, msg)
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// IsCode reports whether err carries the given HTTP code.
func IsCode(err error, code int) bool {
	var fail *Failure

	return errors.As(err, &fail) && fail.Code == code
}
