package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/healthbridge/healthbridge/internal/domain"
)

// GeminiClient calls the Gemini generateContent endpoint. One HTTP round
// trip per call, no retry, no streaming.
type GeminiClient struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
	log        *slog.Logger
}

type GeminiConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

func DefaultGeminiConfig(apiKey string) GeminiConfig {
	return GeminiConfig{
		APIKey:  apiKey,
		BaseURL: "https://generativelanguage.googleapis.com/v1beta",
		Model:   "gemini-1.5-flash",
		Timeout: 30 * time.Second,
	}
}

func NewGeminiClient(config GeminiConfig, log *slog.Logger) *GeminiClient {
	if config.BaseURL == "" {
		config.BaseURL = DefaultGeminiConfig("").BaseURL
	}
	if config.Model == "" {
		config.Model = DefaultGeminiConfig("").Model
	}
	if config.Timeout <= 0 {
		config.Timeout = DefaultGeminiConfig("").Timeout
	}

	return &GeminiClient{
		apiKey:  config.APIKey,
		baseURL: config.BaseURL,
		model:   config.Model,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
		log: log,
	}
}

type geminiRequest struct {
	Contents         []geminiContent   `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
	SafetySettings   []safetySetting   `json:"safetySettings,omitempty"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	TopK            int     `json:"topK"`
	TopP            float64 `json:"topP"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type safetySetting struct {
	Category  string `json:"category"`
	Threshold string `json:"threshold"`
}

type geminiResponse struct {
	Candidates []geminiCandidate `json:"candidates"`
}

type geminiCandidate struct {
	Content geminiContent `json:"content"`
}

func defaultSafetySettings() []safetySetting {
	categories := []string{
		"HARM_CATEGORY_HARASSMENT",
		"HARM_CATEGORY_HATE_SPEECH",
		"HARM_CATEGORY_SEXUALLY_EXPLICIT",
		"HARM_CATEGORY_DANGEROUS_CONTENT",
	}

	settings := make([]safetySetting, 0, len(categories))
	for _, category := range categories {
		settings = append(settings, safetySetting{
			Category:  category,
			Threshold: "BLOCK_MEDIUM_AND_ABOVE",
		})
	}

	return settings
}

// GenerateText sends the prompt and returns the first candidate's text.
// Upstream failures are logged with their detail but returned as the
// generic upstream errors: response bodies and the credential must not
// reach the caller.
func (c *GeminiClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	if c.apiKey == "" {
		return "", domain.ErrUpstreamUnavailable
	}

	reqBody := geminiRequest{
		Contents: []geminiContent{
			{
				Role:  "user",
				Parts: []geminiPart{{Text: prompt}},
			},
		},
		GenerationConfig: &generationConfig{
			Temperature:     0.2,
			TopK:            40,
			TopP:            0.95,
			MaxOutputTokens: 1024,
		},
		SafetySettings: defaultSafetySettings(),
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("json.Marshal: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("http.NewRequestWithContext: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.ErrorContext(ctx, "gemini request failed", slog.Any("err", err))
		return "", domain.ErrUpstreamError
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.log.ErrorContext(ctx, "gemini response read failed", slog.Any("err", err))
		return "", domain.ErrUpstreamError
	}

	if resp.StatusCode != http.StatusOK {
		c.log.ErrorContext(ctx, "gemini returned non-OK status",
			slog.Int("status", resp.StatusCode),
			slog.String("body", string(body)))
		return "", domain.ErrUpstreamError
	}

	var parsed geminiResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		c.log.ErrorContext(ctx, "gemini response parse failed", slog.Any("err", err))
		return "", domain.ErrUpstreamError
	}

	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		c.log.ErrorContext(ctx, "gemini returned no candidate text")
		return "", domain.ErrUpstreamError
	}

	return parsed.Candidates[0].Content.Parts[0].Text, nil
}
