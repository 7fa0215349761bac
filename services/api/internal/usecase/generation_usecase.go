package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"brand-sell/pkg/claude"
	"brand-sell/pkg/logger"
)

// Generator sends a prompt to the language model and returns its raw reply.
type Generator interface {
	Generate(ctx context.Context, prompt string) (json.RawMessage, error)
}

type GenerationUseCase interface {
	Generate(ctx context.Context, userID, prompt string) (json.RawMessage, error)
}

type generationUseCase struct {
	generator Generator
	logger    *logger.Logger
}

func NewGenerationUseCase(generator Generator, logger *logger.Logger) GenerationUseCase {
	return &generationUseCase{
		generator: generator,
		logger:    logger,
	}
}

// Generate forwards prompt unchanged. Failures of the model provider are
// returned wrapped in claude.ErrGeneration.
func (uc *generationUseCase) Generate(ctx context.Context, userID, prompt string) (json.RawMessage, error) {
	if strings.TrimSpace(prompt) == "" {
		return nil, fmt.Errorf("%w: prompt is required", ErrInvalidInput)
	}

	start := time.Now()
	raw, err := uc.generator.Generate(ctx, prompt)
	if err != nil {
		uc.logger.Error("Generation for user %s failed after %s: %v", userID, time.Since(start), err)
		return nil, err
	}

	if text, err := claude.FirstText(raw); err == nil && text == "" {
		uc.logger.Warn("Generation for user %s returned no text", userID)
	}
	uc.logger.Info("Generation for user %s completed in %s", userID, time.Since(start))
	return raw, nil
}
