package apierror

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse is what services hand back to routes; routes render it with
// its own status code.
type ErrorResponse interface {
	error
	Code() int
}

type SimpleError struct {
	code    int
	message string
}

func NewSimple(code int, message string) *SimpleError {
	return &SimpleError{code: code, message: message}
}

func (e *SimpleError) Error() string {
	return e.message
}

func (e *SimpleError) Code() int {
	return e.code
}

func (e *SimpleError) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}{Success: false, Error: e.message})
}

var (
	MalformedBodyError      = NewSimple(http.StatusBadRequest, "Malformed request body")
	BookingNotFoundError    = NewSimple(http.StatusNotFound, "Booking not found")
	InvalidCredentialsError = NewSimple(http.StatusUnauthorized, "Invalid credentials")
	InternalServerError     = NewSimple(http.StatusInternalServerError, "Internal server error")
)

func NewMissingFieldError(message string) *SimpleError {
	return NewSimple(http.StatusBadRequest, message)
}

func NewInvalidParamTypeError(param, expected string) *SimpleError {
	return NewSimple(http.StatusBadRequest, fmt.Sprintf("%s must be %s", param, expected))
}

// NewStoreError wraps a database failure. When expose is false the raw
// database text is replaced by a generic message.
func NewStoreError(code int, err error, expose bool) *SimpleError {
	if !expose || err == nil {
		return NewSimple(code, "Database error")
	}
	return NewSimple(code, err.Error())
}

// FromValidationError turns validator failures into one 400 listing every
// missing field by its JSON name.
func FromValidationError(err error) ErrorResponse {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return MalformedBodyError
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
	}
	return NewSimple(http.StatusBadRequest, "Missing required field(s): "+strings.Join(fields, ", "))
}
