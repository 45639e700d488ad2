package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// IELTS test/task categories. The word count and time limit of a question are
// fully determined by the task type: task1 is 150 words in 20 minutes, task2
// is 250 words in 40 minutes.
const (
	TestTypeAcademic = "academic"
	TestTypeGeneral  = "general"

	TaskTypeTask1 = "task1"
	TaskTypeTask2 = "task2"
)

type Question struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	TestType     string    `json:"test_type" gorm:"not null;index"`
	TaskType     string    `json:"task_type" gorm:"not null;index"`
	Prompt       string    `json:"prompt" gorm:"type:text;not null"`
	Instructions string    `json:"instructions" gorm:"type:text;not null"`
	WordCount    int       `json:"word_count" gorm:"not null"`
	TimeLimit    int       `json:"time_limit" gorm:"not null"` // minutes
	CreatedAt    time.Time `json:"created_at"`
}

func (q *Question) BeforeCreate(tx *gorm.DB) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	return nil
}

// MinWordCount returns the required minimum word count for a task type.
func MinWordCount(taskType string) int {
	if taskType == TaskTypeTask1 {
		return 150
	}
	return 250
}

// TimeLimitMinutes returns the allotted minutes for a task type.
func TimeLimitMinutes(taskType string) int {
	if taskType == TaskTypeTask1 {
		return 20
	}
	return 40
}
