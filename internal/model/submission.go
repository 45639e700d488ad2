package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Submission is one writing attempt. Created exactly once per attempt and
// never updated afterwards.
type Submission struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index"`
	QuestionID  uuid.UUID `json:"question_id" gorm:"type:uuid;not null;index"`
	Question    Question  `json:"question,omitempty" gorm:"foreignKey:QuestionID"`
	Content     string    `json:"content" gorm:"type:text;not null"`
	WordCount   int       `json:"word_count" gorm:"not null"`
	TimeTaken   int       `json:"time_taken" gorm:"not null"` // seconds
	SubmittedAt time.Time `json:"submitted_at" gorm:"autoCreateTime"`
}

func (s *Submission) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
