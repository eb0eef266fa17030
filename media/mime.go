package media

import (
	"path/filepath"
	"strings"
)

// DefaultMIMEType is used for any extension not in the lookup table.
const DefaultMIMEType = "audio/mpeg"

// Fixed MIME types for Telegram media kinds that carry no usable extension.
const (
	VoiceMIMEType     = "audio/ogg"
	VideoNoteMIMEType = "video/mp4"
)

// mimeByExt is the extension lookup table shared by the upload and bot paths.
var mimeByExt = map[string]string{
	".mp3":  "audio/mp3",
	".wav":  "audio/wav",
	".m4a":  "audio/m4a",
	".ogg":  "audio/ogg",
	".webm": "audio/webm",
}

// TypeByExtension derives the MIME type from a file name or path. The match
// is case-insensitive; unknown extensions fall back to DefaultMIMEType.
func TypeByExtension(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	if mt, ok := mimeByExt[ext]; ok {
		return mt
	}
	return DefaultMIMEType
}
