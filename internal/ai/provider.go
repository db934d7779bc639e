package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rimbac/edubot/internal/config"
	"google.golang.org/genai"
)

const geminiModel = "gemini-2.0-flash"

// Provider generates free-form text from a prompt. The bot treats it as an
// opaque collaborator; any call may fail.
type Provider interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type geminiProvider struct {
	client *genai.Client
}

func NewGeminiProvider(ctx context.Context) (Provider, error) {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("create Gemini client: %w", err)
	}
	return &geminiProvider{client: client}, nil
}

func (p *geminiProvider) Generate(ctx context.Context, prompt string) (string, error) {
	log := config.WithContext(ctx)

	result, err := p.client.Models.GenerateContent(ctx, geminiModel, genai.Text(prompt), nil)
	if err != nil {
		log.WithError(err).Error("Gemini generation failed")
		return "", fmt.Errorf("generate content: %w", err)
	}

	raw := strings.TrimSpace(result.Text())
	if raw == "" {
		return "", errors.New("empty model response")
	}

	// Models occasionally wrap plain answers in markdown fences.
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")
	return strings.Trim(raw, "`\n "), nil
}
