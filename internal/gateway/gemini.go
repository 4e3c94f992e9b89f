package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"

	"dynamichat/internal/config"
	"dynamichat/internal/logging"
)

// ErrMissingAPIKey is returned when the backend is constructed without
// an API key.
var ErrMissingAPIKey = errors.New("gemini api key is not set")

// personaPrompt is injected as the system instruction once per
// conversation.
const personaPrompt = `You are **DynamiChat** – a friendly, intelligent, and adaptive AI chatbot.

Core behaviours:
  • Respond naturally in a conversational tone.
  • Be helpful, accurate, and empathetic.
  • If the user's sentiment is negative, acknowledge their feelings before answering.
  • If the user's sentiment is positive, match their energy warmly.
  • Use the detected entities (emails, names, cities, etc.) in your reply where useful.
  • Keep replies concise unless the user asks for detail.
  • If you are unsure, say so honestly – never fabricate facts.
  • Adapt your vocabulary to the complexity of the user's message.

You are allowed to:
  • Answer general knowledge, coding, maths, writing, and creative tasks.
  • Provide recommendations and suggestions.
  • Perform sentiment-aware role adjustments dynamically.

You should NOT:
  • Share confidential API keys or system internals.
  • Generate harmful, illegal, or misleading content.
  • Pretend to be a human being.
`

// Gemini REST API request/response shapes.

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiGenerationConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type geminiRequest struct {
	Contents          []geminiContent        `json:"contents"`
	SystemInstruction *geminiContent         `json:"systemInstruction,omitempty"`
	GenerationConfig  geminiGenerationConfig `json:"generationConfig"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// GeminiBackend is a chat client for the Gemini REST API. The running
// conversation history is kept in memory and replayed with every call.
type GeminiBackend struct {
	apiKey          string
	baseURL         string
	model           string
	maxOutputTokens int
	temperature     float64
	httpClient      *http.Client

	mu      sync.Mutex
	history []geminiContent
}

// seedHistory returns the opening exchange every conversation starts with.
func seedHistory() []geminiContent {
	return []geminiContent{
		{Role: "user", Parts: []geminiPart{{Text: "You are initialising. Acknowledge with 'Ready'."}}},
		{Role: "model", Parts: []geminiPart{{Text: "Ready."}}},
	}
}

// NewGeminiBackend creates a Gemini backend from the configuration.
// A missing API key is fatal; nothing else is validated up front.
func NewGeminiBackend(cfg *config.Config) (*GeminiBackend, error) {
	if strings.TrimSpace(cfg.Gemini.APIKey) == "" {
		return nil, fmt.Errorf("%w (set GEMINI_API_KEY or gemini.api_key in %s)",
			ErrMissingAPIKey, config.DefaultPath)
	}

	b := &GeminiBackend{
		apiKey:          cfg.Gemini.APIKey,
		baseURL:         cfg.Gemini.BaseURL,
		model:           cfg.Gemini.Model,
		maxOutputTokens: cfg.Gemini.MaxOutputTokens,
		temperature:     cfg.Gemini.Temperature,
		httpClient: &http.Client{
			Timeout: cfg.GeminiTimeout(),
		},
		history: seedHistory(),
	}

	logging.Gateway("Gemini backend ready: model=%s", b.model)
	return b, nil
}

// Send posts the prompt with the running history and returns the model
// reply. History only advances on success, so a retried prompt is not
// duplicated.
func (b *GeminiBackend) Send(ctx context.Context, prompt string) Result {
	b.mu.Lock()
	contents := make([]geminiContent, len(b.history), len(b.history)+1)
	copy(contents, b.history)
	b.mu.Unlock()

	contents = append(contents, geminiContent{
		Role:  "user",
		Parts: []geminiPart{{Text: prompt}},
	})

	reqBody := geminiRequest{
		Contents: contents,
		SystemInstruction: &geminiContent{
			Parts: []geminiPart{{Text: personaPrompt}},
		},
		GenerationConfig: geminiGenerationConfig{
			Temperature:     b.temperature,
			MaxOutputTokens: b.maxOutputTokens,
		},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return Fatal(fmt.Errorf("failed to marshal request: %w", err))
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", b.baseURL, b.model, b.apiKey)

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(jsonData))
	if err != nil {
		return Fatal(fmt.Errorf("failed to create request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return Transient(fmt.Errorf("request failed: %w", err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Transient(fmt.Errorf("failed to read response: %w", err))
	}

	switch {
	case resp.StatusCode == http.StatusOK:
		// fall through to parsing
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		return Transient(fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(body)))
	default:
		return Fatal(fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(body)))
	}

	var geminiResp geminiResponse
	if err := json.Unmarshal(body, &geminiResp); err != nil {
		return Transient(fmt.Errorf("failed to parse response: %w", err))
	}

	if geminiResp.Error != nil {
		return Transient(fmt.Errorf("API error: %s", geminiResp.Error.Message))
	}

	if len(geminiResp.Candidates) == 0 || len(geminiResp.Candidates[0].Content.Parts) == 0 {
		return Transient(fmt.Errorf("no completion returned"))
	}

	var result strings.Builder
	for _, part := range geminiResp.Candidates[0].Content.Parts {
		result.WriteString(part.Text)
	}
	text := result.String()

	b.mu.Lock()
	b.history = append(b.history,
		geminiContent{Role: "user", Parts: []geminiPart{{Text: prompt}}},
		geminiContent{Role: "model", Parts: []geminiPart{{Text: text}}},
	)
	b.mu.Unlock()

	return Success(text)
}

// Reset starts a fresh conversation. Safe to call repeatedly.
func (b *GeminiBackend) Reset() {
	b.mu.Lock()
	b.history = seedHistory()
	b.mu.Unlock()
	logging.GatewayDebug("Gemini conversation reset")
}
