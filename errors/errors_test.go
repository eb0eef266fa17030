package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestDomainConstructors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       ErrorCode
		httpStatus int
		message    string
	}{
		{"no file", NoFileUploaded(), ErrCodeNoFileUploaded, http.StatusBadRequest, "No file uploaded"},
		{"provider unavailable", ProviderUnavailable(), ErrCodeProviderUnavailable, http.StatusInternalServerError, "ElevenLabs API key not configured"},
		{"network", NetworkError(stderrors.New("dial tcp: refused")), ErrCodeNetworkError, http.StatusBadGateway, "Failed to fetch remote media"},
		{"transcription", TranscriptionError(stderrors.New("HTTP 500")), ErrCodeTranscriptionError, http.StatusInternalServerError, "Error processing audio file"},
		{"internal", Internal(stderrors.New("boom")), ErrCodeInternal, http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.code {
				t.Errorf("code = %s, want %s", tt.err.Code, tt.code)
			}
			if tt.err.HTTPStatus != tt.httpStatus {
				t.Errorf("status = %d, want %d", tt.err.HTTPStatus, tt.httpStatus)
			}
			if tt.err.Message != tt.message {
				t.Errorf("message = %q, want %q", tt.err.Message, tt.message)
			}
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := stderrors.New("underlying")
	err := TranscriptionError(cause)

	if !stderrors.Is(err, cause) {
		t.Fatal("expected errors.Is to find the cause")
	}
}

func TestAppError_ErrorString(t *testing.T) {
	err := NoFileUploaded()
	want := "NO_FILE_UPLOADED: No file uploaded"
	if err.Error() != want {
		t.Fatalf("Error() = %q, want %q", err.Error(), want)
	}

	withCause := NetworkError(stderrors.New("dns failure"))
	if got := withCause.Error(); got != "NETWORK_ERROR: Failed to fetch remote media (cause: dns failure)" {
		t.Fatalf("unexpected Error(): %q", got)
	}
}

func TestToResponse_FlatContract(t *testing.T) {
	resp := ProviderUnavailable().ToResponse()
	if resp.Error != "ElevenLabs API key not configured" {
		t.Fatalf("unexpected response body: %q", resp.Error)
	}
}

func TestAsAppError_Wrapped(t *testing.T) {
	inner := NoFileUploaded()
	wrapped := fmt.Errorf("handler: %w", inner)

	appErr, ok := AsAppError(wrapped)
	if !ok {
		t.Fatal("expected AsAppError to unwrap")
	}
	if appErr.Code != ErrCodeNoFileUploaded {
		t.Fatalf("unexpected code: %s", appErr.Code)
	}

	if !IsCode(wrapped, ErrCodeNoFileUploaded) {
		t.Fatal("expected IsCode match")
	}
	if IsCode(wrapped, ErrCodeNetworkError) {
		t.Fatal("unexpected IsCode match")
	}
}

func TestRetryable(t *testing.T) {
	if !NetworkError(nil).Retryable {
		t.Error("network errors should be retryable")
	}
	if TranscriptionError(nil).Retryable {
		t.Error("transcription errors should not be retryable")
	}
	if New(ErrCodeNetworkError, "fetch failed", http.StatusBadGateway).Retryable != true {
		t.Error("New should derive retryable from the code")
	}
}
