package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Request errors
const (
	// ErrCodeNoFileUploaded indicates the multipart file field was absent.
	ErrCodeNoFileUploaded ErrorCode = "NO_FILE_UPLOADED"
	// ErrCodeInvalidInput indicates malformed or missing request input.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
)

// Provider errors
const (
	// ErrCodeProviderUnavailable indicates the transcription provider has no
	// credential configured and cannot be called.
	ErrCodeProviderUnavailable ErrorCode = "PROVIDER_UNAVAILABLE"
	// ErrCodeNetworkError indicates a remote media fetch failed.
	ErrCodeNetworkError ErrorCode = "NETWORK_ERROR"
	// ErrCodeTranscriptionError indicates the provider call itself failed
	// (HTTP error, malformed response, quota or auth failure).
	ErrCodeTranscriptionError ErrorCode = "TRANSCRIPTION_ERROR"
)

// Fallback
const (
	// ErrCodeInternal indicates an unhandled failure.
	ErrCodeInternal ErrorCode = "INTERNAL"
)

// IsRetryableCode reports whether an error code represents a transient
// condition. The relay itself never retries; the flag is informational.
func IsRetryableCode(code ErrorCode) bool {
	switch code {
	case ErrCodeNetworkError:
		return true
	default:
		return false
	}
}
