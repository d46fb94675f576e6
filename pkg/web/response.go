// Package web defines common components for a web application.
package web

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/jstoebel/exercises/pkg/errorspkg"
)

// Response holds the common response type for all APIs.
type Response struct {
	Data  any    `json:"data,omitempty"`
	Error string `json:"error,omitempty"`
}

// Error wraps a given err into json friendly struct.
func Error(err error) Response {
	return Response{Error: err.Error()}
}

// Data wraps a payload into the response envelope.
func Data(data any) Response {
	return Response{Data: data}
}

// BindingError turns a gin binding error into a response. Validation errors
// are reported for the first failing field, decoding errors as a bad request.
func BindingError(err error) Response {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) && len(ve) > 0 {
		field := ve[0]
		return Response{Error: field.Field() + GetErrorMsg(field)}
	}

	return Error(errorspkg.ErrBadRequest)
}

// GetErrorMsg returns a human readable message for the failed validation tag.
func GetErrorMsg(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return " is required"
	case "amount":
		return " must be a positive decimal number"
	case "gt":
		return " must be greater than " + fe.Param()
	case "uuid":
		return " must be a valid UUID"
	case "min":
		return " must be at least " + fe.Param() + " long"
	case "max":
		return " must be at most " + fe.Param() + " long"
	}

	return " is invalid"
}
