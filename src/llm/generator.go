// Package llm is the client side of the external text-generation service.
package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"admission-backend/src/logger"

	"google.golang.org/genai"
)

// Generator turns a prompt into free text. No structure is imposed on the
// response.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

var (
	ErrNotConfigured = errors.New("generation service is not configured")
	ErrEmptyResponse = errors.New("generation service returned no text")
)

// GeminiGenerator calls a Gemini model through google.golang.org/genai.
type GeminiGenerator struct {
	client *genai.Client
	model  string
}

// NewGemini connects to the Gemini API. An empty apiKey yields a generator
// that fails every call with ErrNotConfigured, so the service can still
// start and serve store-only endpoints.
func NewGemini(ctx context.Context, apiKey, model string) (Generator, error) {
	if strings.TrimSpace(apiKey) == "" {
		logger.Warn().Msg("⚠️ GEMINI_API_KEY not set, agent endpoints will report the generation service as unavailable")
		return Unconfigured{}, nil
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	logger.Info().Str("model", model).Msg("✅ Gemini client ready")
	return &GeminiGenerator{client: client, model: model}, nil
}

func (g *GeminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini %s: %w", g.model, err)
	}
	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

// Unconfigured is the generator used when no API key is present.
type Unconfigured struct{}

func (Unconfigured) Generate(context.Context, string) (string, error) {
	return "", ErrNotConfigured
}
