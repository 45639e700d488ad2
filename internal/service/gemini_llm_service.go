package service

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"github.com/ieltsmaster/writing-api/config"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

type geminiLLMService struct {
	client *genai.Client
	model  string
}

// NewGeminiCompletionService builds a CompletionService backed by the Gemini
// API. Gemini has no separate system role in this SDK version, so the system
// prompt is attached as the model's system instruction.
func NewGeminiCompletionService(cfg *config.Config) (CompletionService, error) {
	if cfg.AI.GeminiAPIKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set. Gemini completion calls will fail.")
	}
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(cfg.AI.GeminiAPIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	return &geminiLLMService{client: client, model: cfg.AI.GeminiModel}, nil
}

func (s *geminiLLMService) Complete(ctx context.Context, systemPrompt, userPrompt string, temperature float32) (string, error) {
	m := s.client.GenerativeModel(s.model)
	m.SetTemperature(temperature)
	m.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(systemPrompt)}}

	resp, err := m.GenerateContent(ctx, genai.Text(userPrompt))
	if err != nil {
		return "", fmt.Errorf("gemini generate content: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		log.Warn().Str("model", s.model).Msg("Gemini returned no candidates")
		return "", nil
	}

	text := ""
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			text += string(txt)
		}
	}
	return text, nil
}
