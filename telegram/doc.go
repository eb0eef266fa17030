// Package telegram implements the bot side of the transcription relay:
// a thin wrapper over the Bot API, webhook intake, and per-media-kind
// message handlers that acknowledge, download, transcribe and reply.
package telegram
