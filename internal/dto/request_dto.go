package dto

// GenerateQuestionRequest asks for a fresh writing question.
type GenerateQuestionRequest struct {
	TestType string `json:"test_type" binding:"required,oneof=academic general"`
	TaskType string `json:"task_type" binding:"required,oneof=task1 task2"`
}

// SubmitAnswerRequest carries a finished attempt for scoring.
type SubmitAnswerRequest struct {
	QuestionID string `json:"question_id" binding:"required,uuid"`
	Content    string `json:"content" binding:"required,min=1"`
	WordCount  int    `json:"word_count" binding:"required,gt=0"`
	TimeTaken  int    `json:"time_taken" binding:"required,gt=0"` // seconds
}

// UpdateProfileRequest sets the caller's display name.
type UpdateProfileRequest struct {
	DisplayName string `json:"display_name" binding:"required,min=1,max=100"`
}
