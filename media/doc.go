// Package media maps audio file extensions to MIME types and manages the
// transient upload directory. Files placed in the store live only for the
// duration of one transcription request.
package media
