// Package openai implements the generation.Generator interface against
// OpenAI and OpenAI-compatible chat completion endpoints.
package openai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	openai "github.com/sashabaranov/go-openai"

	"github.com/lunalearn/luna-api/internal/config"
	"github.com/lunalearn/luna-api/internal/generation"
)

// DefaultModel is used when the configuration does not name one.
const DefaultModel = "gpt-4o-mini"

// Generator implements generation.Generator using chat completions.
type Generator struct {
	logger *slog.Logger
	client *openai.Client
	model  string
}

// NewGenerator creates a new OpenAI-backed Generator. A base URL in the
// configuration redirects the client to an OpenAI-compatible endpoint.
func NewGenerator(logger *slog.Logger, cfg config.LLMConfig) (*Generator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if cfg.OpenAIAPIKey == "" {
		return nil, fmt.Errorf("%w: openai API key cannot be empty", generation.ErrInvalidConfig)
	}

	clientCfg := openai.DefaultConfig(cfg.OpenAIAPIKey)
	if cfg.OpenAIBaseURL != "" {
		clientCfg.BaseURL = cfg.OpenAIBaseURL
	}

	model := cfg.ModelName
	if model == "" {
		model = DefaultModel
	}

	return &Generator{
		logger: logger,
		client: openai.NewClientWithConfig(clientCfg),
		model:  model,
	}, nil
}

// Generate sends the prompt as a single user message and returns the first
// choice's content.
func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	if prompt == "" {
		return "", fmt.Errorf("%w: prompt cannot be empty", generation.ErrInvalidConfig)
	}

	req := openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
	}

	resp, err := g.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", generation.ErrTransport, err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices in completion", generation.ErrEmptyResponse)
	}

	text := resp.Choices[0].Message.Content
	if text == "" {
		return "", fmt.Errorf("%w: completion carried no content", generation.ErrEmptyResponse)
	}

	g.logger.DebugContext(ctx, "OpenAI completion successful",
		"model", g.model,
		"response_length", len(text))

	return text, nil
}
