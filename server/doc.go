// Package server provides the HTTP surface of the transcription relay: a
// Gin engine behind a net/http server with graceful shutdown, the standard
// middleware stack (recovery, request IDs, request logging), and response
// helpers enforcing the flat error contract.
package server
