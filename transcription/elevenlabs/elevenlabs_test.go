package elevenlabs

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	apperrors "github.com/viprogramm/audio11eleven/errors"
	"github.com/viprogramm/audio11eleven/logger"
	"github.com/viprogramm/audio11eleven/transcription"
)

func newTestProvider(t *testing.T, srvURL, apiKey string) *Provider {
	t.Helper()
	p, err := NewProvider(Config{APIKey: apiKey, BaseURL: srvURL}, logger.NewDefault("test"))
	if err != nil {
		t.Fatalf("NewProvider: %v", err)
	}
	return p
}

func TestTranscribe_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/speech-to-text" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("xi-api-key") != "key123" {
			t.Errorf("missing xi-api-key header")
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("ParseMultipartForm: %v", err)
		}
		if got := r.FormValue("model_id"); got != "scribe_v1" {
			t.Errorf("model_id = %q", got)
		}
		if got := r.FormValue("tag_audio_events"); got != "true" {
			t.Errorf("tag_audio_events = %q", got)
		}
		if got := r.FormValue("diarize"); got != "true" {
			t.Errorf("diarize = %q", got)
		}
		if got := r.FormValue("language_code"); got != "" {
			t.Errorf("language_code should be absent for auto-detect, got %q", got)
		}
		f, header, err := r.FormFile("file")
		if err != nil {
			t.Fatalf("FormFile: %v", err)
		}
		defer f.Close()
		if header.Header.Get("Content-Type") != "audio/ogg" {
			t.Errorf("file content type = %q", header.Header.Get("Content-Type"))
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"text": "привет мир",
			"language_code": "ru",
			"language_probability": 0.98,
			"words": [
				{"text": "привет", "type": "word", "speaker_id": "speaker_0", "start": 0.1, "end": 0.6},
				{"text": "мир", "type": "word", "speaker_id": "speaker_0", "start": 0.7, "end": 1.1}
			]
		}`))
	}))
	defer srv.Close()

	p := newTestProvider(t, srv.URL, "key123")
	result, err := p.Transcribe(context.Background(), transcription.NewRequest([]byte("OggS"), "audio/ogg", "note.ogg"))
	if err != nil {
		t.Fatalf("Transcribe: %v", err)
	}

	if result.Text != "привет мир" {
		t.Errorf("text = %q", result.Text)
	}
	if result.LanguageCode != "ru" || result.LanguageProbability != 0.98 {
		t.Errorf("language metadata = %q/%v", result.LanguageCode, result.LanguageProbability)
	}
	if len(result.Words) != 2 || result.Words[0].Speaker != "speaker_0" {
		t.Errorf("unexpected words: %+v", result.Words)
	}
}

func TestTranscribe_NoCredentialShortCircuits(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	p := newTestProvider(t, srv.URL, "")

	if p.IsAvailable(context.Background()) {
		t.Fatal("provider without credential must report unavailable")
	}

	_, err := p.Transcribe(context.Background(), transcription.NewRequest([]byte("x"), "audio/mp3", "a.mp3"))
	if !apperrors.IsCode(err, apperrors.ErrCodeProviderUnavailable) {
		t.Fatalf("expected ProviderUnavailable, got %v", err)
	}
	if atomic.LoadInt32(&calls) != 0 {
		t.Fatal("no network call may be attempted without a credential")
	}
}

func TestTranscribe_ProviderFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"detail":"quota exceeded"}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	p := newTestProvider(t, srv.URL, "key123")
	_, err := p.Transcribe(context.Background(), transcription.NewRequest([]byte("x"), "audio/wav", "a.wav"))
	if !apperrors.IsCode(err, apperrors.ErrCodeTranscriptionError) {
		t.Fatalf("expected TranscriptionError, got %v", err)
	}
}

func TestTranscribe_MalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	p := newTestProvider(t, srv.URL, "key123")
	_, err := p.Transcribe(context.Background(), transcription.NewRequest([]byte("x"), "audio/wav", "a.wav"))
	if !apperrors.IsCode(err, apperrors.ErrCodeTranscriptionError) {
		t.Fatalf("expected TranscriptionError for malformed body, got %v", err)
	}
}

func TestTranscribe_ExplicitLanguage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseMultipartForm(1 << 20)
		if got := r.FormValue("language_code"); got != "en" {
			t.Errorf("language_code = %q, want en", got)
		}
		_, _ = w.Write([]byte(`{"text":"hi"}`))
	}))
	defer srv.Close()

	p := newTestProvider(t, srv.URL, "key123")
	req := transcription.NewRequest([]byte("x"), "audio/mp3", "a.mp3")
	req.LanguageCode = "en"
	if _, err := p.Transcribe(context.Background(), req); err != nil {
		t.Fatalf("Transcribe: %v", err)
	}
}
