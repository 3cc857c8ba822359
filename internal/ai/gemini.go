package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiProvider implements LLMProvider using Google's Gemini models.
// A client is created per call so a missing key only surfaces when a request is made.
type GeminiProvider struct {
	apiKey string
	model  string
	opts   []option.ClientOption
}

// NewGeminiProvider returns a provider for the given key and model.
// Extra client options are appended after the API key (tests point the endpoint elsewhere).
func NewGeminiProvider(apiKey, model string, opts ...option.ClientOption) *GeminiProvider {
	if model == "" {
		model = DefaultGeminiModel
	}
	return &GeminiProvider{apiKey: apiKey, model: model, opts: opts}
}

// Model reports the Gemini model name.
func (p *GeminiProvider) Model() string { return p.model }

// Complete sends the user turn with system as the model's system instruction.
func (p *GeminiProvider) Complete(ctx context.Context, system, user string) (string, error) {
	if strings.TrimSpace(p.apiKey) == "" {
		return "", fmt.Errorf("gemini: %w", ErrMissingAPIKey)
	}

	opts := append([]option.ClientOption{option.WithAPIKey(p.apiKey)}, p.opts...)
	client, err := genai.NewClient(ctx, opts...)
	if err != nil {
		return "", fmt.Errorf("gemini: create client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(p.model)
	if system != "" {
		model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(system)}}
	}

	resp, err := model.GenerateContent(ctx, genai.Text(user))
	if err != nil {
		return "", fmt.Errorf("gemini: generate content: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini: API returned empty candidates")
	}

	var text strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			text.WriteString(string(txt))
		}
	}
	if text.Len() == 0 {
		return "", fmt.Errorf("gemini: API returned empty text parts")
	}
	return text.String(), nil
}
