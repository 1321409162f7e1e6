package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/DIMO-Network/server-garage/pkg/richerrors"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	// DeliveryFailureCode is the code returned when the Graph API did not accept a message.
	DeliveryFailureCode = -1

	// Default timeout for Graph API requests
	defaultTimeout = 30 * time.Second
	// Maximum response body size to read for error logging
	maxResponseBodySize = 1024

	messagingProduct = "whatsapp"
	userAgent        = "whatsapp-ai-bridge/1.0"
)

// ErrInvalidMessage is returned when a message is missing its routing ID, recipient or body.
var ErrInvalidMessage = errors.New("invalid message")

// Config holds the Graph API endpoint and credentials.
type Config struct {
	BaseURL    string
	APIVersion string
	Token      string
}

// Client sends messages through the WhatsApp Cloud API.
type Client struct {
	baseURL    *url.URL
	apiVersion string
	token      string
	httpClient *http.Client
}

// New creates a new Client. A nil httpClient gets a default client with a
// traced transport.
func New(cfg Config, httpClient *http.Client) (*Client, error) {
	baseURL, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse graph API URL: %w", err)
	}
	if baseURL.Scheme == "" || baseURL.Host == "" {
		return nil, fmt.Errorf("graph API URL %q must be absolute", cfg.BaseURL)
	}
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout:   defaultTimeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}
	return &Client{
		baseURL:    baseURL,
		apiVersion: cfg.APIVersion,
		token:      cfg.Token,
		httpClient: httpClient,
	}, nil
}

// SendText sends body as a text message to the recipient from the business
// phone number identified by phoneNumberID.
// Returns error for failures, nil for success.
func (c *Client) SendText(ctx context.Context, phoneNumberID, to, body string) error {
	if err := validateMessage(phoneNumberID, to, body); err != nil {
		return err
	}

	msg := TextMessage{
		MessagingProduct: messagingProduct,
		RecipientType:    "individual",
		To:               to,
		Type:             "text",
		Text:             TextBody{Body: body},
	}
	reqBody, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	endpoint := c.messagesURL(phoneNumberID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(reqBody))
	if err != nil {
		return richerrors.Error{
			Code: DeliveryFailureCode,
			Err:  fmt.Errorf("failed to create message request: %w", err),
		}
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return richerrors.Error{
			Code: DeliveryFailureCode,
			Err:  fmt.Errorf("failed to POST message: %w", err),
		}
	}
	defer resp.Body.Close() // nolint:errcheck

	// Read response body for logging (limited size for security)
	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodySize))
	logger := zerolog.Ctx(ctx)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.Error().
			Int("status", resp.StatusCode).
			Str("to", to).
			Str("response", string(respBody)).
			Msg("Graph API rejected message")
		return richerrors.Error{
			Code: DeliveryFailureCode,
			Err:  fmt.Errorf("graph API returned status code %d: %s", resp.StatusCode, describeError(respBody)),
		}
	}

	var sent SendResponse
	if err := json.Unmarshal(respBody, &sent); err == nil && len(sent.Messages) > 0 {
		logger.Debug().Str("to", to).Str("messageId", sent.Messages[0].ID).Msg("Message accepted")
	} else {
		logger.Debug().Str("to", to).Str("response", string(respBody)).Msg("Message accepted")
	}
	return nil
}

func (c *Client) messagesURL(phoneNumberID string) string {
	return c.baseURL.JoinPath(url.PathEscape(c.apiVersion), url.PathEscape(phoneNumberID), "messages").String()
}

func validateMessage(phoneNumberID, to, body string) error {
	switch {
	case phoneNumberID == "":
		return fmt.Errorf("%w: missing phone number ID", ErrInvalidMessage)
	case to == "":
		return fmt.Errorf("%w: missing recipient", ErrInvalidMessage)
	case body == "":
		return fmt.Errorf("%w: empty body", ErrInvalidMessage)
	}
	for _, r := range phoneNumberID {
		if r < '0' || r > '9' {
			return fmt.Errorf("%w: phone number ID %q is not numeric", ErrInvalidMessage, phoneNumberID)
		}
	}
	return nil
}

// describeError prefers the Graph API error message over the raw body.
func describeError(body []byte) string {
	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error.Message != "" {
		return fmt.Sprintf("%s (code %d, fbtrace_id %s)", errResp.Error.Message, errResp.Error.Code, errResp.Error.FBTraceID)
	}
	return string(body)
}
