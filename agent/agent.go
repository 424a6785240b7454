// Package agent runs coaching prompts against Google Gemini.
package agent

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const (
	// EnvAPIKey is the environment variable holding the Gemini API key.
	EnvAPIKey = "GEMINI_API_KEY"

	defaultModel       = "gemini-2.0-flash"
	defaultTemperature = 0.3
)

// Options configures a Coach. Zero values fall back to defaults.
type Options struct {
	APIKey      string  // defaults to the GEMINI_API_KEY environment variable
	Model       string  // defaults to gemini-2.0-flash
	Temperature float32 // defaults to 0.3 for mostly-deterministic coaching text
}

// Coach is a thin client around the Gemini API. One Coach may serve many
// Generate calls.
type Coach struct {
	client *genai.Client
	model  string
	temp   float32
}

// New creates a Coach. It fails fast when no API key is available so callers
// can surface configuration problems before decoding any files.
func New(ctx context.Context, opts Options) (*Coach, error) {
	apiKey := opts.APIKey
	if apiKey == "" {
		apiKey = os.Getenv(EnvAPIKey)
	}
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key required: set %s or pass Options.APIKey", EnvAPIKey)
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	model := opts.Model
	if model == "" {
		model = defaultModel
	}
	temp := opts.Temperature
	if temp == 0 {
		temp = defaultTemperature
	}

	return &Coach{client: client, model: model, temp: temp}, nil
}

// Close releases the underlying API client.
func (c *Coach) Close() error {
	return c.client.Close()
}

// Response is one generated analysis.
type Response struct {
	Text        string
	Model       string
	GeneratedAt time.Time
}

// Generate sends one prompt and returns the concatenated text parts of the
// first candidate.
func (c *Coach) Generate(ctx context.Context, prompt string) (*Response, error) {
	model := c.client.GenerativeModel(c.model)
	model.SetTemperature(c.temp)

	started := time.Now()
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("generate content: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("no content generated")
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}

	slog.Debug("gemini response",
		"model", c.model,
		"prompt_chars", len(prompt),
		"response_chars", b.Len(),
		"elapsed", time.Since(started),
	)

	return &Response{
		Text:        strings.TrimSpace(b.String()),
		Model:       c.model,
		GeneratedAt: time.Now().UTC(),
	}, nil
}
