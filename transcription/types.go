package transcription

// DefaultModel is the speech-to-text model used for every call.
const DefaultModel = "scribe_v1"

// Request holds the audio payload and options for a transcription call.
// The payload is owned by the handling request and never reused across calls.
type Request struct {
	// Data is the raw audio content.
	Data []byte `json:"-"`
	// MIMEType is the declared MIME type of the payload (e.g. "audio/ogg").
	MIMEType string `json:"mime_type"`
	// FileName is the name reported to the provider, informational only.
	FileName string `json:"file_name,omitempty"`
	// Model is the transcription model to use.
	Model string `json:"model,omitempty"`
	// LanguageCode is the expected language. Empty means auto-detect.
	LanguageCode string `json:"language_code,omitempty"`
	// TagAudioEvents asks the provider to annotate non-speech events.
	TagAudioEvents bool `json:"tag_audio_events"`
	// Diarize asks the provider to label speakers.
	Diarize bool `json:"diarize"`
}

// NewRequest builds a Request with the fixed options used throughout the
// relay: scribe_v1, audio event tagging, diarization, language auto-detect.
func NewRequest(data []byte, mimeType, fileName string) Request {
	return Request{
		Data:           data,
		MIMEType:       mimeType,
		FileName:       fileName,
		Model:          DefaultModel,
		TagAudioEvents: true,
		Diarize:        true,
	}
}

// Result holds the outcome of a transcription call, returned to the caller
// verbatim and never stored server-side.
type Result struct {
	// Text is the full transcription text.
	Text string `json:"text"`
	// LanguageCode is the detected language.
	LanguageCode string `json:"language_code,omitempty"`
	// LanguageProbability is the confidence of the language detection.
	LanguageProbability float64 `json:"language_probability,omitempty"`
	// Words contains per-word annotations including speakers and audio events.
	Words []Word `json:"words,omitempty"`
}

// Word is a single annotated token of the transcript.
type Word struct {
	// Text is the token text.
	Text string `json:"text"`
	// Type distinguishes words, spacing, and tagged audio events.
	Type string `json:"type,omitempty"`
	// Speaker is the diarization label, if available.
	Speaker string `json:"speaker_id,omitempty"`
	// Start is the token start time in seconds.
	Start float64 `json:"start,omitempty"`
	// End is the token end time in seconds.
	End float64 `json:"end,omitempty"`
}
