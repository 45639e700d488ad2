package service

import (
	"context"

	"github.com/ieltsmaster/writing-api/internal/model"
	"github.com/rs/zerolog/log"
)

// ScoringService turns a candidate's submitted text into the four criterion
// bands plus feedback. Like QuestionSource it has an AI and a mock
// implementation, selected once at startup.
type ScoringService interface {
	ScoreSubmission(ctx context.Context, question *model.Question, content string, wordCount int) (ScoreSet, error)
}

type aiScoringService struct {
	completion CompletionService
}

func NewAIScoringService(completion CompletionService) ScoringService {
	return &aiScoringService{completion: completion}
}

func (s *aiScoringService) ScoreSubmission(ctx context.Context, question *model.Question, content string, wordCount int) (ScoreSet, error) {
	prompt := BuildScoringPrompt(question, content)

	raw, err := s.completion.Complete(ctx, scoringSystemPrompt, prompt, scoringTemperature)
	if err != nil {
		log.Error().Err(err).Str("question_id", question.ID.String()).Msg("Completion service failed during scoring")
		return ScoreSet{}, err
	}

	// The parser never fails; a malformed completion degrades to default
	// criterion bands rather than failing the whole submission.
	return ParseScores(raw), nil
}
