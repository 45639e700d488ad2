package service

import (
	"context"
	"errors"
	"testing"

	"github.com/ieltsmaster/writing-api/internal/dto"
	"github.com/ieltsmaster/writing-api/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateQuestion_TaskInvariants(t *testing.T) {
	tests := []struct {
		taskType      string
		wantWordCount int
		wantTimeLimit int
	}{
		{model.TaskTypeTask1, 150, 20},
		{model.TaskTypeTask2, 250, 40},
	}

	for _, tt := range tests {
		for _, testType := range []string{model.TestTypeAcademic, model.TestTypeGeneral} {
			for _, source := range []QuestionSource{
				NewMockQuestionSource(),
				NewAIQuestionSource(&stubCompletion{response: "PROMPT: p\nINSTRUCTIONS: i"}),
			} {
				repo := newFakeQuestionRepo()
				svc := NewQuestionService(source, repo)

				q, err := svc.GenerateQuestion(context.Background(), dto.GenerateQuestionRequest{
					TestType: testType,
					TaskType: tt.taskType,
				})
				require.NoError(t, err)

				assert.Equal(t, tt.wantWordCount, q.WordCount, "%s/%s", testType, tt.taskType)
				assert.Equal(t, tt.wantTimeLimit, q.TimeLimit, "%s/%s", testType, tt.taskType)
				assert.Equal(t, testType, q.TestType)
				assert.Equal(t, tt.taskType, q.TaskType)
				assert.Len(t, repo.questions, 1)
			}
		}
	}
}

func TestGenerateQuestion_SourceErrorIsNotPersisted(t *testing.T) {
	repo := newFakeQuestionRepo()
	svc := NewQuestionService(NewAIQuestionSource(&stubCompletion{err: errors.New("boom")}), repo)

	_, err := svc.GenerateQuestion(context.Background(), dto.GenerateQuestionRequest{
		TestType: model.TestTypeAcademic,
		TaskType: model.TaskTypeTask1,
	})
	assert.Error(t, err)
	assert.Empty(t, repo.questions)
}

func TestGenerateQuestion_PersistenceErrorPropagates(t *testing.T) {
	repo := newFakeQuestionRepo()
	repo.createErr = errors.New("db down")
	svc := NewQuestionService(NewMockQuestionSource(), repo)

	_, err := svc.GenerateQuestion(context.Background(), dto.GenerateQuestionRequest{
		TestType: model.TestTypeGeneral,
		TaskType: model.TaskTypeTask2,
	})
	assert.Error(t, err)
}
