package service

import (
	"context"
	"fmt"

	"github.com/ieltsmaster/writing-api/config"
	"github.com/rs/zerolog/log"
	openai "github.com/sashabaranov/go-openai"
)

type openaiLLMService struct {
	api   *openai.Client
	model string
}

// NewOpenAICompletionService builds a CompletionService backed by the OpenAI
// chat completions API.
func NewOpenAICompletionService(cfg *config.Config) CompletionService {
	if cfg.AI.OpenAIKey == "" {
		log.Warn().Msg("OPENAI_API_KEY is not set. OpenAI completion calls will fail.")
	}
	return &openaiLLMService{
		api:   openai.NewClient(cfg.AI.OpenAIKey),
		model: cfg.AI.OpenAIModel,
	}
}

func (s *openaiLLMService) Complete(ctx context.Context, systemPrompt, userPrompt string, temperature float32) (string, error) {
	resp, err := s.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
		Temperature: temperature,
	})
	if err != nil {
		return "", fmt.Errorf("openai chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		log.Warn().Str("model", s.model).Msg("OpenAI returned no choices")
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}
