package errors

import (
	"fmt"
	"net/http"
)

// AppError is the unified application error type.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message, safe to show to callers.
	Message string `json:"message"`
	// Retryable indicates if the operation can be retried.
	Retryable bool `json:"retryable"`
	// HTTPStatus is the recommended HTTP status code for this error.
	HTTPStatus int `json:"-"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError with automatic retryable detection.
func New(code ErrorCode, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Retryable:  IsRetryableCode(code),
	}
}

// --- Domain error constructors ---

// NoFileUploaded creates the error returned when the upload request carries
// no file field.
func NoFileUploaded() *AppError {
	return &AppError{
		Code: ErrCodeNoFileUploaded, Message: "No file uploaded",
		HTTPStatus: http.StatusBadRequest, Retryable: false,
	}
}

// ProviderUnavailable creates the error returned when the transcription
// provider has no credential configured. Checked before any network call.
func ProviderUnavailable() *AppError {
	return &AppError{
		Code: ErrCodeProviderUnavailable, Message: "ElevenLabs API key not configured",
		HTTPStatus: http.StatusInternalServerError, Retryable: false,
	}
}

// NetworkError creates an error for a failed remote media fetch.
func NetworkError(cause error) *AppError {
	return &AppError{
		Code: ErrCodeNetworkError, Message: "Failed to fetch remote media",
		HTTPStatus: http.StatusBadGateway, Retryable: true, Cause: cause,
	}
}

// TranscriptionError creates an error for a failed provider call. Provider
// failures are not distinguished further.
func TranscriptionError(cause error) *AppError {
	return &AppError{
		Code: ErrCodeTranscriptionError, Message: "Error processing audio file",
		HTTPStatus: http.StatusInternalServerError, Retryable: false, Cause: cause,
	}
}

// InvalidInput creates a new AppError for invalid input.
func InvalidInput(field, reason string) *AppError {
	details := make(map[string]any)
	if field != "" {
		details["field"] = field
	}
	return &AppError{
		Code: ErrCodeInvalidInput, Message: fmt.Sprintf("Invalid input: %s", reason),
		HTTPStatus: http.StatusBadRequest, Retryable: false, Details: details,
	}
}

// Validation creates a new AppError for validation errors.
func Validation(message string) *AppError {
	return &AppError{
		Code: ErrCodeInvalidInput, Message: message,
		HTTPStatus: http.StatusBadRequest, Retryable: false,
	}
}

// Internal creates a new AppError for an unhandled failure.
func Internal(cause error) *AppError {
	return &AppError{
		Code: ErrCodeInternal, Message: "Internal server error",
		HTTPStatus: http.StatusInternalServerError, Retryable: false, Cause: cause,
	}
}
