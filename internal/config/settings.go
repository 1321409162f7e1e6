package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	defaultPort            = 5000
	defaultMonPort         = 8888
	defaultServiceName     = "whatsapp-ai-bridge"
	defaultGeminiModel     = "gemini-2.0-flash"
	defaultGraphAPIURL     = "https://graph.facebook.com"
	defaultGraphAPIVersion = "v18.0"
	maxPort                = 65535
)

// ErrInvalidPort is returned when PORT is outside the TCP port range.
var ErrInvalidPort = errors.New("invalid port")

// Settings contains the application config
type Settings struct {
	Port        int    `env:"PORT" envDefault:"5000"`
	MonPort     int    `env:"MON_PORT" envDefault:"8888"`
	EnablePprof bool   `env:"ENABLE_PPROF"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"whatsapp-ai-bridge"`

	GeminiAPIKey  string `env:"GEMINI_API_KEY"`
	GeminiModel   string `env:"GEMINI_MODEL" envDefault:"gemini-2.0-flash"`
	GeminiBaseURL string `env:"GEMINI_BASE_URL"`

	// WhatsAppToken is the Graph API bearer token. WHAT_TOKEN is accepted for
	// older deployments.
	WhatsAppToken    string `env:"WHATSAPP_TOKEN"`
	LegacyWhatsToken string `env:"WHAT_TOKEN"`
	VerifyToken      string `env:"VERIFY_TOKEN"`
	// PhoneNumberID is used when a notification carries no metadata.phone_number_id.
	PhoneNumberID       string `env:"PHONE_NUMBER_ID"`
	LegacyPhoneNumberID string `env:"PHONE_NUMBER"`
	GraphAPIURL         string `env:"GRAPH_API_URL" envDefault:"https://graph.facebook.com"`
	GraphAPIVersion     string `env:"GRAPH_API_VERSION" envDefault:"v18.0"`

	ReplyUnsupported bool          `env:"REPLY_UNSUPPORTED" envDefault:"true"`
	DedupTTL         time.Duration `env:"DEDUP_TTL" envDefault:"10m"`
}

// Validate fills in defaults for zero values, folds the legacy variable names
// into their current fields and checks that the required secrets are present.
func (s *Settings) Validate() error {
	if s.Port <= 0 {
		s.Port = defaultPort
	}
	if s.Port > maxPort {
		return fmt.Errorf("%w: PORT %d is out of range", ErrInvalidPort, s.Port)
	}
	if s.MonPort <= 0 {
		s.MonPort = defaultMonPort
	}
	if s.LogLevel == "" {
		s.LogLevel = "info"
	}
	if s.ServiceName == "" {
		s.ServiceName = defaultServiceName
	}
	if s.GeminiModel == "" {
		s.GeminiModel = defaultGeminiModel
	}
	if s.GraphAPIURL == "" {
		s.GraphAPIURL = defaultGraphAPIURL
	}
	s.GraphAPIURL = strings.TrimRight(s.GraphAPIURL, "/")
	if s.GraphAPIVersion == "" {
		s.GraphAPIVersion = defaultGraphAPIVersion
	}
	if s.DedupTTL < 0 {
		s.DedupTTL = 0
	}
	if s.WhatsAppToken == "" {
		s.WhatsAppToken = s.LegacyWhatsToken
	}
	if s.PhoneNumberID == "" {
		s.PhoneNumberID = s.LegacyPhoneNumberID
	}

	var missing []string
	if s.GeminiAPIKey == "" {
		missing = append(missing, "GEMINI_API_KEY")
	}
	if s.WhatsAppToken == "" {
		missing = append(missing, "WHATSAPP_TOKEN")
	}
	if s.VerifyToken == "" {
		missing = append(missing, "VERIFY_TOKEN")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required settings: %s", strings.Join(missing, ", "))
	}
	return nil
}
