// Package elevenlabs implements transcription.Provider against the
// ElevenLabs speech-to-text API.
package elevenlabs

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	apperrors "github.com/viprogramm/audio11eleven/errors"
	"github.com/viprogramm/audio11eleven/httpclient"
	"github.com/viprogramm/audio11eleven/logger"
	"github.com/viprogramm/audio11eleven/transcription"
)

const (
	// ProviderName is the registered name for the ElevenLabs provider.
	ProviderName = "elevenlabs"

	defaultBaseURL = "https://api.elevenlabs.io"
	defaultTimeout = 120 * time.Second

	speechToTextPath = "/v1/speech-to-text"
	apiKeyHeader     = "xi-api-key"
)

// Config holds configuration for the ElevenLabs transcription provider.
type Config struct {
	// APIKey is the ElevenLabs credential. When empty the provider reports
	// itself unavailable and refuses to make network calls.
	APIKey string `yaml:"api_key" mapstructure:"api_key"`
	// BaseURL overrides the API endpoint, mainly for tests.
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`
	// Timeout bounds a single conversion call. Defaults to 2 minutes; long
	// recordings take well over the usual 30s client default.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`
}

// Provider implements transcription.Provider using the ElevenLabs API.
type Provider struct {
	cfg    Config
	client *httpclient.Client
	log    *logger.Logger
}

// NewProvider creates a new ElevenLabs transcription provider.
func NewProvider(cfg Config, log *logger.Logger) (*Provider, error) {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = defaultTimeout
	}

	client, err := httpclient.New(httpclient.Config{
		BaseURL: cfg.BaseURL,
		Timeout: cfg.Timeout,
		Auth:    httpclient.APIKeyAuthHeader(cfg.APIKey, apiKeyHeader),
	})
	if err != nil {
		return nil, fmt.Errorf("elevenlabs client: %w", err)
	}

	return &Provider{
		cfg:    cfg,
		client: client,
		log:    log.WithComponent("elevenlabs"),
	}, nil
}

// Name returns the provider name.
func (p *Provider) Name() string { return ProviderName }

// IsAvailable reports whether a credential is configured. No network call.
func (p *Provider) IsAvailable(_ context.Context) bool {
	return p.cfg.APIKey != ""
}

// Transcribe sends the audio payload to the conversion endpoint and returns
// the parsed result. The call is attempted exactly once.
func (p *Provider) Transcribe(ctx context.Context, req transcription.Request) (*transcription.Result, error) {
	if p.cfg.APIKey == "" {
		return nil, apperrors.ProviderUnavailable()
	}

	model := req.Model
	if model == "" {
		model = transcription.DefaultModel
	}
	fileName := req.FileName
	if fileName == "" {
		fileName = "audio"
	}

	fields := map[string]string{
		"model_id":         model,
		"tag_audio_events": strconv.FormatBool(req.TagAudioEvents),
		"diarize":          strconv.FormatBool(req.Diarize),
	}
	if req.LanguageCode != "" {
		fields["language_code"] = req.LanguageCode
	}

	p.log.Debug("sending audio to ElevenLabs", map[string]interface{}{
		logger.FieldMIMEType: req.MIMEType,
		logger.FieldSize:     len(req.Data),
		"model":              model,
	})

	start := time.Now()
	resp, err := p.client.Do(ctx, httpclient.Request{
		Method: http.MethodPost,
		Path:   speechToTextPath,
		Body: &httpclient.MultipartBody{
			Fields: fields,
			Files: []httpclient.FileField{{
				FieldName:   "file",
				FileName:    fileName,
				ContentType: req.MIMEType,
				Data:        req.Data,
			}},
		},
	})
	if err != nil {
		return nil, apperrors.TranscriptionError(err)
	}

	var parsed conversionResponse
	if err := json.Unmarshal(resp.Body, &parsed); err != nil {
		return nil, apperrors.TranscriptionError(fmt.Errorf("decode response: %w", err))
	}

	result := toResult(&parsed)
	p.log.Info("transcription completed", map[string]interface{}{
		"language":             result.LanguageCode,
		"language_probability": result.LanguageProbability,
		logger.FieldDuration:   time.Since(start).Milliseconds(),
	})
	return result, nil
}

// --- internal ElevenLabs API response types ---

type conversionResponse struct {
	Text                string           `json:"text"`
	LanguageCode        string           `json:"language_code"`
	LanguageProbability float64          `json:"language_probability"`
	Words               []conversionWord `json:"words"`
}

type conversionWord struct {
	Text      string  `json:"text"`
	Type      string  `json:"type"`
	SpeakerID string  `json:"speaker_id"`
	Start     float64 `json:"start"`
	End       float64 `json:"end"`
}

func toResult(resp *conversionResponse) *transcription.Result {
	words := make([]transcription.Word, len(resp.Words))
	for i, w := range resp.Words {
		words[i] = transcription.Word{
			Text:    w.Text,
			Type:    w.Type,
			Speaker: w.SpeakerID,
			Start:   w.Start,
			End:     w.End,
		}
	}
	return &transcription.Result{
		Text:                resp.Text,
		LanguageCode:        resp.LanguageCode,
		LanguageProbability: resp.LanguageProbability,
		Words:               words,
	}
}
