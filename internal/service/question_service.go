package service

import (
	"context"
	"fmt"

	"github.com/ieltsmaster/writing-api/internal/dto"
	"github.com/ieltsmaster/writing-api/internal/model"
	"github.com/ieltsmaster/writing-api/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
)

// QuestionService orchestrates question generation: source (AI or mock),
// category invariants, persistence.
type QuestionService interface {
	GenerateQuestion(ctx context.Context, req dto.GenerateQuestionRequest) (*dto.QuestionResponse, error)
}

type questionService struct {
	source       QuestionSource
	questionRepo repository.QuestionRepository
}

func NewQuestionService(source QuestionSource, questionRepo repository.QuestionRepository) QuestionService {
	return &questionService{source: source, questionRepo: questionRepo}
}

func (s *questionService) GenerateQuestion(ctx context.Context, req dto.GenerateQuestionRequest) (*dto.QuestionResponse, error) {
	generated, err := s.source.GenerateQuestion(ctx, req.TestType, req.TaskType)
	if err != nil {
		return nil, fmt.Errorf("failed to generate question: %w", err)
	}

	// Word count and time limit are a function of the task type alone,
	// regardless of which source produced the question text.
	question := model.Question{
		TestType:     req.TestType,
		TaskType:     req.TaskType,
		Prompt:       generated.Prompt,
		Instructions: generated.Instructions,
		WordCount:    model.MinWordCount(req.TaskType),
		TimeLimit:    model.TimeLimitMinutes(req.TaskType),
	}

	if err := s.questionRepo.Create(&question); err != nil {
		log.Error().Err(err).Str("test_type", req.TestType).Str("task_type", req.TaskType).Msg("Failed to save generated question")
		return nil, fmt.Errorf("failed to save question: %w", err)
	}

	var resp dto.QuestionResponse
	if err := copier.Copy(&resp, &question); err != nil {
		return nil, fmt.Errorf("error preparing question response: %w", err)
	}
	return &resp, nil
}
