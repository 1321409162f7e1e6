package e2e_test

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
)

// failPrompt makes the mock Gemini server answer with 503.
const failPrompt = "please fail"

// mockGeminiServer answers generateContent calls. Prompts are recorded and
// answered with "echo: <prompt>", except failPrompt which gets a 503.
type mockGeminiServer struct {
	server  *httptest.Server
	mu      sync.RWMutex
	prompts []string
}

func newMockGeminiServer() *mockGeminiServer {
	ms := &mockGeminiServer{}
	ms.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("x-goog-api-key") != testGeminiKey || !strings.HasSuffix(r.URL.Path, ":generateContent") {
			http.Error(w, `{"error":{"code":401,"message":"bad key","status":"UNAUTHENTICATED"}}`, http.StatusUnauthorized)
			return
		}
		var req struct {
			Contents []struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"contents"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.Contents) == 0 || len(req.Contents[0].Parts) == 0 {
			http.Error(w, `{"error":{"code":400,"message":"bad request","status":"INVALID_ARGUMENT"}}`, http.StatusBadRequest)
			return
		}
		prompt := req.Contents[0].Parts[0].Text

		ms.mu.Lock()
		ms.prompts = append(ms.prompts, prompt)
		ms.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		if prompt == failPrompt {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = fmt.Fprint(w, `{"error":{"code":503,"message":"unavailable","status":"UNAVAILABLE"}}`)
			return
		}
		resp := map[string]any{
			"candidates": []any{map[string]any{
				"content":      map[string]any{"role": "model", "parts": []any{map[string]any{"text": "echo: " + prompt}}},
				"finishReason": "STOP",
			}},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	return ms
}

func (ms *mockGeminiServer) URL() string {
	return ms.server.URL
}

func (ms *mockGeminiServer) Prompts() []string {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	result := make([]string, len(ms.prompts))
	copy(result, ms.prompts)
	return result
}

func (ms *mockGeminiServer) Close() {
	ms.server.Close()
}

// GraphCall is a message delivered to the mock Graph API.
type GraphCall struct {
	Path          string
	Authorization string
	To            string
	Body          string
}

// mockGraphServer records outbound message sends.
type mockGraphServer struct {
	server   *httptest.Server
	mu       sync.RWMutex
	received []GraphCall
}

func newMockGraphServer() *mockGraphServer {
	ms := &mockGraphServer{}
	ms.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, "Failed to read body", http.StatusBadRequest)
			return
		}
		var msg struct {
			To   string `json:"to"`
			Text struct {
				Body string `json:"body"`
			} `json:"text"`
		}
		if err := json.Unmarshal(raw, &msg); err != nil {
			http.Error(w, `{"error":{"message":"bad payload","type":"OAuthException","code":100}}`, http.StatusBadRequest)
			return
		}

		ms.mu.Lock()
		ms.received = append(ms.received, GraphCall{
			Path:          r.URL.Path,
			Authorization: r.Header.Get("Authorization"),
			To:            msg.To,
			Body:          msg.Text.Body,
		})
		ms.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		_, _ = fmt.Fprintf(w, `{"messaging_product":"whatsapp","contacts":[{"input":%q,"wa_id":%q}],"messages":[{"id":"wamid.out"}]}`, msg.To, msg.To)
	}))
	return ms
}

func (ms *mockGraphServer) URL() string {
	return ms.server.URL
}

// CallsTo returns the deliveries addressed to recipient.
func (ms *mockGraphServer) CallsTo(recipient string) []GraphCall {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	var result []GraphCall
	for _, call := range ms.received {
		if call.To == recipient {
			result = append(result, call)
		}
	}
	return result
}

func (ms *mockGraphServer) Close() {
	ms.server.Close()
}
