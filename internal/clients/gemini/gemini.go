package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/DIMO-Network/server-garage/pkg/richerrors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"google.golang.org/genai"
)

const (
	// DefaultModel is the model used when none is configured.
	DefaultModel = "gemini-2.0-flash"
	// Temperature is the sampling temperature for every completion.
	Temperature float32 = 0.7

	// FallbackReply is sent to the user when no completion could be generated.
	FallbackReply = "Sorry, I'm having trouble answering right now. Please try again in a moment."

	// CompletionFailureCode is the code returned when the AI service could not produce a completion.
	CompletionFailureCode = -2

	defaultTimeout = 30 * time.Second
)

var (
	// ErrEmptyPrompt is returned for blank prompts.
	ErrEmptyPrompt = errors.New("prompt is empty")
	// ErrNoCandidates is returned when the response has no candidates, usually
	// because the prompt or every candidate was blocked by the safety filter.
	ErrNoCandidates = errors.New("no candidates returned")
	// ErrEmptyCompletion is returned when the first candidate carries no text.
	ErrEmptyCompletion = errors.New("completion has no text")
)

// Config holds the Gemini API credentials and model selection.
type Config struct {
	APIKey string
	Model  string
	// BaseURL overrides the Gemini API endpoint.
	BaseURL string
}

// Client generates replies with the Gemini API.
type Client struct {
	models *genai.Models
	model  string
}

// New creates a new Client. A nil httpClient gets a default client with a
// traced transport.
func New(ctx context.Context, cfg Config, httpClient *http.Client) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("gemini API key is required")
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout:   defaultTimeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}

	clientConfig := &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: httpClient,
	}
	if cfg.BaseURL != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}
	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &Client{
		models: client.Models,
		model:  cfg.Model,
	}, nil
}

// Complete returns the model's completion for prompt.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", ErrEmptyPrompt
	}

	resp, err := c.models.GenerateContent(ctx, c.model, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature: genai.Ptr(Temperature),
	})
	if err != nil {
		return "", richerrors.Error{
			Code: CompletionFailureCode,
			Err:  fmt.Errorf("failed to generate content: %w", err),
		}
	}
	return candidateText(resp)
}

// Result is the outcome of a reply attempt. Text is never empty: when Err is
// set it holds FallbackReply.
type Result struct {
	Text string
	Err  error
}

// Fallback reports whether the completion failed and Text is the fallback.
func (r Result) Fallback() bool {
	return r.Err != nil
}

// Reply returns the completion for prompt, substituting FallbackReply when the
// completion failed.
func (c *Client) Reply(ctx context.Context, prompt string) Result {
	text, err := c.Complete(ctx, prompt)
	if err != nil {
		return Result{Text: FallbackReply, Err: err}
	}
	return Result{Text: text}
}

// candidateText joins the text parts of the first candidate, skipping thoughts.
func candidateText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		if resp != nil && resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
			return "", richerrors.Error{
				Code: CompletionFailureCode,
				Err:  fmt.Errorf("%w: prompt blocked (%s)", ErrNoCandidates, resp.PromptFeedback.BlockReason),
			}
		}
		return "", richerrors.Error{Code: CompletionFailureCode, Err: ErrNoCandidates}
	}

	candidate := resp.Candidates[0]
	if candidate == nil || candidate.Content == nil {
		reason := ""
		if candidate != nil {
			reason = string(candidate.FinishReason)
		}
		return "", richerrors.Error{
			Code: CompletionFailureCode,
			Err:  fmt.Errorf("%w: finish reason %q", ErrEmptyCompletion, reason),
		}
	}

	var sb strings.Builder
	for _, part := range candidate.Content.Parts {
		if part == nil || part.Thought {
			continue
		}
		sb.WriteString(part.Text)
	}
	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", richerrors.Error{
			Code: CompletionFailureCode,
			Err:  fmt.Errorf("%w: finish reason %q", ErrEmptyCompletion, candidate.FinishReason),
		}
	}
	return text, nil
}
