package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/ieltsmaster/writing-api/internal/dto"
	"github.com/ieltsmaster/writing-api/internal/model"
	"github.com/ieltsmaster/writing-api/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// SubmissionService orchestrates the submit-and-score flow and result
// retrieval.
type SubmissionService interface {
	SubmitAnswer(ctx context.Context, userID uuid.UUID, req dto.SubmitAnswerRequest) (*dto.SubmitAnswerResponse, error)
	GetResult(ctx context.Context, userID, submissionID uuid.UUID) (*dto.ResultResponse, error)
}

type submissionService struct {
	questionRepo   repository.QuestionRepository
	submissionRepo repository.SubmissionRepository
	scoreRepo      repository.ScoreRepository
	scorer         ScoringService
}

func NewSubmissionService(
	questionRepo repository.QuestionRepository,
	submissionRepo repository.SubmissionRepository,
	scoreRepo repository.ScoreRepository,
	scorer ScoringService,
) SubmissionService {
	return &submissionService{
		questionRepo:   questionRepo,
		submissionRepo: submissionRepo,
		scoreRepo:      scoreRepo,
		scorer:         scorer,
	}
}

// SubmitAnswer persists the attempt, scores it, and persists the score.
// There is no compensation across the persistence steps: a submission that
// was already written stays written even when scoring or the score insert
// fails afterwards.
func (s *submissionService) SubmitAnswer(ctx context.Context, userID uuid.UUID, req dto.SubmitAnswerRequest) (*dto.SubmitAnswerResponse, error) {
	questionID, err := uuid.Parse(req.QuestionID)
	if err != nil {
		return nil, fmt.Errorf("invalid question id: %w", err)
	}

	question, err := s.questionRepo.FindByID(questionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuestionNotFound
		}
		return nil, fmt.Errorf("failed to load question %s: %w", questionID, err)
	}

	submission := model.Submission{
		UserID:     userID,
		QuestionID: question.ID,
		Content:    req.Content,
		WordCount:  req.WordCount,
		TimeTaken:  req.TimeTaken,
	}
	if err := s.submissionRepo.Create(&submission); err != nil {
		log.Error().Err(err).Str("question_id", questionID.String()).Msg("Failed to save submission")
		return nil, fmt.Errorf("failed to save submission: %w", err)
	}

	scores, err := s.scorer.ScoreSubmission(ctx, question, req.Content, req.WordCount)
	if err != nil {
		log.Error().Err(err).Str("submission_id", submission.ID.String()).Msg("Scoring failed after submission was persisted")
		return nil, fmt.Errorf("failed to score submission: %w", err)
	}

	score := model.Score{
		SubmissionID:      submission.ID,
		TaskAchievement:   scores.TaskAchievement,
		CoherenceCohesion: scores.CoherenceCohesion,
		LexicalResource:   scores.LexicalResource,
		GrammaticalRange:  scores.GrammaticalRange,
		OverallBand:       OverallBand(scores),
		Feedback:          scores.Feedback,
	}
	if err := s.scoreRepo.Create(&score); err != nil {
		log.Error().Err(err).Str("submission_id", submission.ID.String()).Msg("Failed to save score")
		return nil, fmt.Errorf("failed to save score: %w", err)
	}

	var scoreResp dto.ScoreResponse
	if err := copier.Copy(&scoreResp, &score); err != nil {
		return nil, fmt.Errorf("error preparing score response: %w", err)
	}
	return &dto.SubmitAnswerResponse{
		SubmissionID: submission.ID,
		Score:        scoreResp,
	}, nil
}

// GetResult returns the full review view of one attempt. Owner-only: a
// submission belonging to another user reads as not found.
func (s *submissionService) GetResult(ctx context.Context, userID, submissionID uuid.UUID) (*dto.ResultResponse, error) {
	submission, err := s.submissionRepo.FindByIDForUser(submissionID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrResultNotFound
		}
		return nil, fmt.Errorf("failed to load submission %s: %w", submissionID, err)
	}

	score, err := s.scoreRepo.FindBySubmissionID(submission.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// A submission whose scoring step failed has no score row.
			return nil, ErrResultNotFound
		}
		return nil, fmt.Errorf("failed to load score for submission %s: %w", submissionID, err)
	}

	var resp dto.ResultResponse
	if err := copier.Copy(&resp.Submission, submission); err != nil {
		return nil, fmt.Errorf("error preparing result response: %w", err)
	}
	if err := copier.Copy(&resp.Question, &submission.Question); err != nil {
		return nil, fmt.Errorf("error preparing result response: %w", err)
	}
	if err := copier.Copy(&resp.Score, score); err != nil {
		return nil, fmt.Errorf("error preparing result response: %w", err)
	}
	return &resp, nil
}
