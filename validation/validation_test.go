package validation

import (
	"testing"

	apperrors "github.com/viprogramm/audio11eleven/errors"
)

type testConfig struct {
	Port       int    `mapstructure:"port" validate:"min=0,max=65535"`
	WebhookURL string `mapstructure:"webhook_url" validate:"omitempty,url"`
	UploadDir  string `mapstructure:"upload_dir" validate:"required"`
}

func TestValidate_OK(t *testing.T) {
	cfg := testConfig{Port: 3001, WebhookURL: "https://example.com", UploadDir: "uploads"}
	if err := Validate(cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_OmitEmptyURL(t *testing.T) {
	cfg := testConfig{Port: 3001, UploadDir: "uploads"}
	if err := Validate(cfg); err != nil {
		t.Fatalf("empty optional URL should pass: %v", err)
	}
}

func TestValidate_Failures(t *testing.T) {
	tests := []struct {
		name string
		cfg  testConfig
	}{
		{"port out of range", testConfig{Port: 70000, UploadDir: "uploads"}},
		{"bad url", testConfig{Port: 80, WebhookURL: "not-a-url", UploadDir: "uploads"}},
		{"missing upload dir", testConfig{Port: 80}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.cfg)
			if err == nil {
				t.Fatal("expected validation error")
			}
			appErr, ok := apperrors.AsAppError(err)
			if !ok {
				t.Fatalf("expected AppError, got %T", err)
			}
			if appErr.Code != apperrors.ErrCodeInvalidInput {
				t.Fatalf("unexpected code: %s", appErr.Code)
			}
			if appErr.Details["fields"] == nil {
				t.Fatal("expected field details")
			}
		})
	}
}

func TestToSnakeCase(t *testing.T) {
	if got := toSnakeCase("WebhookURL"); got != "webhook_url" {
		t.Fatalf("toSnakeCase(WebhookURL) = %q", got)
	}
	if got := toSnakeCase("Port"); got != "port" {
		t.Fatalf("toSnakeCase(Port) = %q", got)
	}
}
