package gemini

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lunalearn/luna-api/internal/config"
	"github.com/lunalearn/luna-api/internal/generation"
)

func TestNewGeneratorValidation(t *testing.T) {
	t.Parallel()

	validCfg := config.LLMConfig{
		Backend:      "gemini",
		GeminiAPIKey: "test-key",
		ModelName:    "gemini-2.5-flash-preview-04-17",
	}

	tests := []struct {
		name    string
		logger  *slog.Logger
		mutate  func(*config.LLMConfig)
		wantErr error
	}{
		{
			name:   "nil logger",
			logger: nil,
			mutate: func(cfg *config.LLMConfig) {},
		},
		{
			name:    "missing API key",
			logger:  slog.Default(),
			mutate:  func(cfg *config.LLMConfig) { cfg.GeminiAPIKey = "" },
			wantErr: generation.ErrInvalidConfig,
		},
		{
			name:    "missing model name",
			logger:  slog.Default(),
			mutate:  func(cfg *config.LLMConfig) { cfg.ModelName = "" },
			wantErr: generation.ErrInvalidConfig,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validCfg
			tt.mutate(&cfg)

			gen, err := NewGenerator(context.Background(), tt.logger, cfg)
			require.Error(t, err)
			assert.Nil(t, gen)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))
			}
		})
	}
}

func TestGenerateRejectsEmptyPrompt(t *testing.T) {
	t.Parallel()

	g := &Generator{logger: slog.Default()}
	_, err := g.Generate(context.Background(), "")
	assert.True(t, errors.Is(err, generation.ErrInvalidConfig))
}
