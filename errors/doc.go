// Package errors provides unified error handling for the transcription
// relay. It implements structured error types with machine-readable codes
// and HTTP status mapping, so handlers can convert any failure into a
// user-facing message plus a detailed server-side log.
package errors
