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

var RecordServiceUnreachable = &Failure{Code: http.StatusServiceUnavailable, Message: "record service is unreachable"}
var EmptyIdentifier = &Failure{Code: http.StatusBadRequest, Message: "record identifier is empty"}

// Error returns the error code and message in a formatted string.
func (e *Failure) Error() string {
	return e.Message
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
	}
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
		}
	}

	return nil
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(entityName string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Message: entityName,
	}
}

// Conflict returns a new Failure with code for referential-integrity conflicts.
// The record service reports these as status 400 on delete.
func Conflict(message string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: message,
	}
}

// FromStatus builds a Failure out of a non-2xx record-service response.
func FromStatus(code int, message string) error {
	if message == "" {
		message = http.StatusText(code)
	}

	return &Failure{
		Code:    code,
		Message: message,
	}
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// IsConflict reports whether err carries the status the record service uses
// for referential-integrity violations on delete.
func IsConflict(err error) bool {
	return GetCode(err) == http.StatusBadRequest
}
