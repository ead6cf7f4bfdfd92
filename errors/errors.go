package errors

import (
	"fmt"
	"net/http"
)

// AppError is the application-wide error type carried from usecases out to
// the HTTP layer.
type AppError struct {
	Raw      error
	HTTPCode int
	Code     ErrorCode
	Message  string
	Details  map[string]string
}

// Error implements error interface
func (e AppError) Error() string {
	if e.Raw != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code.String(), e.Message, e.Raw)
	}
	return fmt.Sprintf("[%s] %s", e.Code.String(), e.Message)
}

// Unwrap exposes the wrapped cause for errors.Is/As chains.
func (e AppError) Unwrap() error {
	return e.Raw
}

// WithDetail adds a detail to the error
func (e AppError) WithDetail(key, value string) AppError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// General Errors

func ErrInternal(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_INTERNAL,
		Message:  "Internal server error",
	}
}

func ErrInvalidArgument(message string) AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_INVALID_ARGUMENT,
		Message:  message,
	}
}

func ErrInvalidPayload() AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_INVALID_PAYLOAD,
		Message:  "Invalid payload",
	}
}

// Transcript Errors

func ErrUnsupportedFormat(extension string) AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_TRANSCRIPT_UNSUPPORTED_FORMAT,
		Message:  fmt.Sprintf("Unsupported file format: %s", extension),
	}.WithDetail("extension", extension)
}

func ErrInvalidContent(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_TRANSCRIPT_INVALID_CONTENT,
		Message:  "Invalid JSON file",
	}
}

// Extraction Errors

func ErrAPIFailed(status int, message string) AppError {
	return AppError{
		HTTPCode: http.StatusBadGateway,
		Code:     ErrorCode_EXTRACTION_API_FAILED,
		Message:  fmt.Sprintf("API Error: %s", message),
	}.WithDetail("upstream_status", fmt.Sprintf("%d", status))
}

func ErrEmptyResponse() AppError {
	return AppError{
		HTTPCode: http.StatusBadGateway,
		Code:     ErrorCode_EXTRACTION_EMPTY_RESPONSE,
		Message:  "No response from API",
	}
}

func ErrUnparsableResponse(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusBadGateway,
		Code:     ErrorCode_EXTRACTION_UNPARSABLE,
		Message:  "Could not parse JSON response",
	}
}

func ErrSchemaMismatch(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusBadGateway,
		Code:     ErrorCode_EXTRACTION_SCHEMA,
		Message:  "Extracted JSON does not match the meeting record shape",
	}
}

// Meeting Record Errors

func ErrMeetingNotFound(sessionID string) AppError {
	return AppError{
		HTTPCode: http.StatusNotFound,
		Code:     ErrorCode_MEETING_NOT_FOUND,
		Message:  "No data found for this session",
	}.WithDetail("session_id", sessionID)
}

func ErrInvalidEmail(email string) AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_MEETING_INVALID_EMAIL,
		Message:  "Please enter a valid email address",
	}.WithDetail("email", email)
}

func ErrStoreFailed(operation string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_MEETING_STORE_FAILED,
		Message:  fmt.Sprintf("Session store operation failed: %s", operation),
	}
}

// Delivery Errors

func ErrDeliveryFailed(httpStatus int, body string) AppError {
	return AppError{
		HTTPCode: http.StatusBadGateway,
		Code:     ErrorCode_DELIVERY_FAILED,
		Message:  fmt.Sprintf("Email API returned %d: %s", httpStatus, body),
	}.WithDetail("upstream_status", fmt.Sprintf("%d", httpStatus))
}

func ErrNoRecipients() AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_DELIVERY_NO_RECIPIENTS,
		Message:  "No valid recipient email addresses found",
	}
}
