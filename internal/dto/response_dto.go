package dto

import (
	"time"

	"github.com/google/uuid"
)

type ErrorResponse struct {
	Message string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

type QuestionResponse struct {
	ID           uuid.UUID `json:"id"`
	TestType     string    `json:"test_type"`
	TaskType     string    `json:"task_type"`
	Prompt       string    `json:"prompt"`
	Instructions string    `json:"instructions"`
	WordCount    int       `json:"word_count"`
	TimeLimit    int       `json:"time_limit"`
	CreatedAt    time.Time `json:"created_at"`
}

type GenerateQuestionResponse struct {
	Question QuestionResponse `json:"question"`
}

type ScoreResponse struct {
	ID                uuid.UUID `json:"id"`
	SubmissionID      uuid.UUID `json:"submission_id"`
	TaskAchievement   float64   `json:"task_achievement"`
	CoherenceCohesion float64   `json:"coherence_cohesion"`
	LexicalResource   float64   `json:"lexical_resource"`
	GrammaticalRange  float64   `json:"grammatical_range"`
	OverallBand       float64   `json:"overall_band"`
	Feedback          string    `json:"feedback"`
	CreatedAt         time.Time `json:"created_at"`
}

type SubmitAnswerResponse struct {
	SubmissionID uuid.UUID     `json:"submission_id"`
	Score        ScoreResponse `json:"score"`
}

type SubmissionResponse struct {
	ID          uuid.UUID `json:"id"`
	Content     string    `json:"content"`
	WordCount   int       `json:"word_count"`
	TimeTaken   int       `json:"time_taken"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// ResultResponse is the full review view of one attempt.
type ResultResponse struct {
	Submission SubmissionResponse `json:"submission"`
	Question   QuestionResponse   `json:"question"`
	Score      ScoreResponse      `json:"score"`
}

type LogoutResponse struct {
	Success bool `json:"success"`
}

type ProfileResponse struct {
	ID          uuid.UUID `json:"id"`
	DisplayName string    `json:"display_name"`
	CreatedAt   time.Time `json:"created_at"`
}

// SubmissionSummary is one row of the profile history list.
type SubmissionSummary struct {
	SubmissionID uuid.UUID `json:"submission_id"`
	TestType     string    `json:"test_type"`
	TaskType     string    `json:"task_type"`
	OverallBand  *float64  `json:"overall_band,omitempty"`
	SubmittedAt  time.Time `json:"submitted_at"`
}

type ProfileDetailResponse struct {
	Profile ProfileResponse     `json:"profile"`
	History []SubmissionSummary `json:"history"`
}
