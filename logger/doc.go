// Package logger provides structured logging for the transcription relay
// using zerolog.
//
// It supports JSON and pretty console output, log level configuration, and
// component-scoped loggers with structured fields.
//
// # Usage
//
//	log := logger.NewDefault("transcriber").WithComponent("upload")
//	log.Info("file received", map[string]interface{}{"filename": name})
package logger
