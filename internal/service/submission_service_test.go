package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/ieltsmaster/writing-api/internal/dto"
	"github.com/ieltsmaster/writing-api/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedQuestion(t *testing.T, repo *fakeQuestionRepo) model.Question {
	t.Helper()
	q := model.Question{
		TestType:     model.TestTypeAcademic,
		TaskType:     model.TaskTypeTask2,
		Prompt:       "Discuss.",
		Instructions: "Write at least 250 words.",
		WordCount:    250,
		TimeLimit:    40,
	}
	require.NoError(t, repo.Create(&q))
	return q
}

func scoringStub() ScoringService {
	return NewAIScoringService(&stubCompletion{
		response: "TASK_ACHIEVEMENT: 6.5\nCOHERENCE_COHESION: 7\nLEXICAL_RESOURCE: 5.5\nGRAMMATICAL_RANGE: 6\nFEEDBACK: keep going",
	})
}

func TestSubmitAnswer_HappyPath(t *testing.T) {
	questionRepo := newFakeQuestionRepo()
	submissionRepo := newFakeSubmissionRepo()
	scoreRepo := newFakeScoreRepo()
	question := seedQuestion(t, questionRepo)
	userID := uuid.New()

	svc := NewSubmissionService(questionRepo, submissionRepo, scoreRepo, scoringStub())

	resp, err := svc.SubmitAnswer(context.Background(), userID, dto.SubmitAnswerRequest{
		QuestionID: question.ID.String(),
		Content:    "my essay",
		WordCount:  260,
		TimeTaken:  1800,
	})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, resp.SubmissionID)
	assert.Equal(t, 6.5, resp.Score.TaskAchievement)
	assert.Equal(t, 6.5, resp.Score.OverallBand) // round((6.5+7+5.5+6)/4 * 2)/2
	assert.Equal(t, "keep going", resp.Score.Feedback)

	// Persisted rows
	assert.Len(t, submissionRepo.submissions, 1)
	assert.Len(t, scoreRepo.scores, 1)
	saved := submissionRepo.submissions[resp.SubmissionID]
	assert.Equal(t, userID, saved.UserID)
	assert.Equal(t, question.ID, saved.QuestionID)
}

func TestSubmitAnswer_QuestionNotFound(t *testing.T) {
	questionRepo := newFakeQuestionRepo()
	submissionRepo := newFakeSubmissionRepo()
	scoreRepo := newFakeScoreRepo()

	svc := NewSubmissionService(questionRepo, submissionRepo, scoreRepo, scoringStub())

	_, err := svc.SubmitAnswer(context.Background(), uuid.New(), dto.SubmitAnswerRequest{
		QuestionID: uuid.New().String(),
		Content:    "text",
		WordCount:  200,
		TimeTaken:  600,
	})
	assert.ErrorIs(t, err, ErrQuestionNotFound)
	// Nothing was written.
	assert.Empty(t, submissionRepo.submissions)
	assert.Empty(t, scoreRepo.scores)
}

func TestSubmitAnswer_ScoringFailureKeepsSubmission(t *testing.T) {
	questionRepo := newFakeQuestionRepo()
	submissionRepo := newFakeSubmissionRepo()
	scoreRepo := newFakeScoreRepo()
	question := seedQuestion(t, questionRepo)

	failing := NewAIScoringService(&stubCompletion{err: errors.New("provider down")})
	svc := NewSubmissionService(questionRepo, submissionRepo, scoreRepo, failing)

	_, err := svc.SubmitAnswer(context.Background(), uuid.New(), dto.SubmitAnswerRequest{
		QuestionID: question.ID.String(),
		Content:    "text",
		WordCount:  200,
		TimeTaken:  600,
	})
	require.Error(t, err)

	// No compensation: the submission stays persisted, the score does not exist.
	assert.Len(t, submissionRepo.submissions, 1)
	assert.Empty(t, scoreRepo.scores)
}

func TestGetResult_OwnerOnly(t *testing.T) {
	questionRepo := newFakeQuestionRepo()
	submissionRepo := newFakeSubmissionRepo()
	scoreRepo := newFakeScoreRepo()
	question := seedQuestion(t, questionRepo)
	owner := uuid.New()

	svc := NewSubmissionService(questionRepo, submissionRepo, scoreRepo, scoringStub())
	resp, err := svc.SubmitAnswer(context.Background(), owner, dto.SubmitAnswerRequest{
		QuestionID: question.ID.String(),
		Content:    "essay body",
		WordCount:  260,
		TimeTaken:  1500,
	})
	require.NoError(t, err)

	// Preload is faked: attach the question to the stored submission.
	sub := submissionRepo.submissions[resp.SubmissionID]
	sub.Question = question
	submissionRepo.submissions[resp.SubmissionID] = sub

	result, err := svc.GetResult(context.Background(), owner, resp.SubmissionID)
	require.NoError(t, err)
	assert.Equal(t, "essay body", result.Submission.Content)
	assert.Equal(t, question.Prompt, result.Question.Prompt)
	assert.Equal(t, 6.5, result.Score.OverallBand)

	// Someone else's id reads as not found.
	_, err = svc.GetResult(context.Background(), uuid.New(), resp.SubmissionID)
	assert.ErrorIs(t, err, ErrResultNotFound)
}

func TestGetResult_UnscoredSubmissionIsNotFound(t *testing.T) {
	questionRepo := newFakeQuestionRepo()
	submissionRepo := newFakeSubmissionRepo()
	scoreRepo := newFakeScoreRepo()
	question := seedQuestion(t, questionRepo)
	owner := uuid.New()

	sub := model.Submission{UserID: owner, QuestionID: question.ID, Content: "x", WordCount: 10, TimeTaken: 60, Question: question}
	require.NoError(t, submissionRepo.Create(&sub))

	svc := NewSubmissionService(questionRepo, submissionRepo, scoreRepo, scoringStub())
	_, err := svc.GetResult(context.Background(), owner, sub.ID)
	assert.ErrorIs(t, err, ErrResultNotFound)
}
