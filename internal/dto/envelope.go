package dto

import (
	"net/http"
)

// ServiceResponse is the uniform envelope returned by every service operation.
// StatusCode doubles as the HTTP status the handler writes.
type ServiceResponse[T any] struct {
	Success        bool   `json:"success"`
	Message        string `json:"message"`
	ResponseObject T      `json:"responseObject"`
	StatusCode     int    `json:"statusCode"`
}

func Success[T any](message string, obj T, statusCode int) ServiceResponse[T] {
	return ServiceResponse[T]{
		Success:        true,
		Message:        message,
		ResponseObject: obj,
		StatusCode:     statusCode,
	}
}

// Failure returns a failed envelope with a zero (null-serialized) response object.
func Failure[T any](message string, statusCode int) ServiceResponse[T] {
	var zero T
	return ServiceResponse[T]{
		Success:        false,
		Message:        message,
		ResponseObject: zero,
		StatusCode:     statusCode,
	}
}

func BadRequest[T any](message string) ServiceResponse[T] {
	return Failure[T](message, http.StatusBadRequest)
}

func NotFound[T any](message string) ServiceResponse[T] {
	return Failure[T](message, http.StatusNotFound)
}

func Conflict[T any](message string) ServiceResponse[T] {
	return Failure[T](message, http.StatusConflict)
}

func Unauthorized[T any](message string) ServiceResponse[T] {
	return Failure[T](message, http.StatusUnauthorized)
}

func Internal[T any](message string) ServiceResponse[T] {
	return Failure[T](message, http.StatusInternalServerError)
}
