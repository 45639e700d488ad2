package service

import (
	"context"

	"github.com/rs/zerolog/log"
)

// QuestionSource produces a fresh writing question for a test/task category.
// Two implementations exist: the AI path (prompt -> completion -> parse) and
// the canned mock path. The choice is made once at startup from config.
type QuestionSource interface {
	GenerateQuestion(ctx context.Context, testType, taskType string) (GeneratedQuestion, error)
}

type aiQuestionSource struct {
	completion CompletionService
}

func NewAIQuestionSource(completion CompletionService) QuestionSource {
	return &aiQuestionSource{completion: completion}
}

func (s *aiQuestionSource) GenerateQuestion(ctx context.Context, testType, taskType string) (GeneratedQuestion, error) {
	prompt := BuildQuestionPrompt(testType, taskType)

	content, err := s.completion.Complete(ctx, questionSystemPrompt, prompt, questionTemperature)
	if err != nil {
		log.Error().Err(err).Str("test_type", testType).Str("task_type", taskType).Msg("Completion service failed during question generation")
		return GeneratedQuestion{}, err
	}

	return ParseQuestionResponse(content, testType, taskType), nil
}
