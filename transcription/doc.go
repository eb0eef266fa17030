// Package transcription defines the provider interface and common types
// for interacting with speech-to-text backends.
//
// It follows a provider pattern with a small registry so the configured
// backend is resolved once at startup and shared by both ingress paths.
//
// # Backends
//
//   - transcription/elevenlabs: ElevenLabs scribe_v1 speech-to-text
//
// # Usage
//
//	reg := transcription.NewRegistry()
//	reg.Register(elevenlabsProvider)
//	p, _ := reg.Get(elevenlabs.ProviderName)
//	result, err := p.Transcribe(ctx, transcription.NewRequest(data, mimeType, name))
package transcription
