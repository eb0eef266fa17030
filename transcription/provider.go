package transcription

import "context"

// Provider is the interface that speech-to-text backends must implement.
type Provider interface {
	// Name returns the provider's unique name.
	Name() string
	// IsAvailable reports whether the provider can be called at all. It must
	// be a local check (e.g. credential presence), never a network call.
	IsAvailable(ctx context.Context) bool
	// Transcribe sends audio for transcription and returns the result.
	// A failed call is a single reported failure; providers do not retry.
	Transcribe(ctx context.Context, req Request) (*Result, error)
}
