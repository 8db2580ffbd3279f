package discordhook

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// WebhookConfig defines file-based configuration for a webhook sender.
type WebhookConfig struct {
	WebhookURL     string    `json:"webhook_url" yaml:"webhook_url" validate:"required,url"`
	Username       string    `json:"username,omitempty" yaml:"username,omitempty"`
	AvatarURL      string    `json:"avatar_url,omitempty" yaml:"avatar_url,omitempty" validate:"omitempty,url"`
	MentionRoleIDs []string  `json:"mention_role_ids,omitempty" yaml:"mention_role_ids,omitempty"`
	Log            LogConfig `json:"log,omitempty" yaml:"log,omitempty"`
}

// LogConfig defines configuration for logging
type LogConfig struct {
	LogFile       string `json:"log_file,omitempty" yaml:"log_file,omitempty"`
	LogFormat     string `json:"log_format,omitempty" yaml:"log_format,omitempty" validate:"omitempty,logformat"`
	LogLevel      string `json:"log_level,omitempty" yaml:"log_level,omitempty" validate:"omitempty,loglevel"`
	MaxLogBackups int    `json:"max_log_backups,omitempty" yaml:"max_log_backups,omitempty"`
	MaxLogSizeMB  int    `json:"max_log_size_mb,omitempty" yaml:"max_log_size_mb,omitempty"`
}

// NewDefaultLogConfig creates default log configuration
func NewDefaultLogConfig() LogConfig {
	return LogConfig{
		LogFormat:     "console",
		LogLevel:      "info",
		MaxLogBackups: 3,
		MaxLogSizeMB:  10,
	}
}

// NewDefaultWebhookConfig creates default webhook configuration
func NewDefaultWebhookConfig() WebhookConfig {
	return WebhookConfig{
		MentionRoleIDs: []string{},
		Log:            NewDefaultLogConfig(),
	}
}

// LoadWebhookConfigFromFile reads and validates a YAML config file.
func LoadWebhookConfigFromFile(path string) (*WebhookConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, WrapError(err, fmt.Sprintf("failed to read config file '%s'", path))
	}

	cfg := NewDefaultWebhookConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, WrapError(err, fmt.Sprintf("failed to parse config file '%s'", path))
	}

	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ValidateConfig performs validation on the WebhookConfig structure.
func ValidateConfig(cfg *WebhookConfig) error {
	validate := validator.New()

	// Register custom validation for LogLevel
	_ = validate.RegisterValidation("loglevel", func(fl validator.FieldLevel) bool {
		level := strings.ToLower(fl.Field().String())
		switch level {
		case "", "debug", "info", "warn", "error", "fatal", "panic": // Allow empty for omitempty
			return true
		default:
			return false
		}
	})

	// Register custom validation for LogFormat
	_ = validate.RegisterValidation("logformat", func(fl validator.FieldLevel) bool {
		format := strings.ToLower(fl.Field().String())
		switch format {
		case "", "console", "text", "json": // Allow empty for omitempty
			return true
		default:
			return false
		}
	})

	err := validate.Struct(cfg)
	if err != nil {
		var errs validator.ValidationErrors
		if errors.As(err, &errs) {
			var messages []string
			for _, e := range errs {
				msg := fmt.Sprintf("Validation failed for '%s': rule '%s'", e.Field(), e.Tag())
				if e.Param() != "" {
					msg += fmt.Sprintf(" (expected: %s)", e.Param())
				}
				if e.Value() != nil && e.Value() != "" {
					msg += fmt.Sprintf(", actual: '%v'", e.Value())
				}
				messages = append(messages, msg)
			}
			return fmt.Errorf("config validation failed: %s", strings.Join(messages, "; "))
		}
		return WrapError(err, "config validation failed")
	}
	return nil
}
