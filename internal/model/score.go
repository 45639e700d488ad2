package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Score holds the four IELTS criterion bands for a submission plus the
// overall band. One score per submission, written once, never updated.
// All bands are half-point values in [0, 9]; the overall band is the
// half-point-rounded mean of the four criteria.
type Score struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	SubmissionID      uuid.UUID `json:"submission_id" gorm:"type:uuid;not null;uniqueIndex"`
	TaskAchievement   float64   `json:"task_achievement" gorm:"not null"`
	CoherenceCohesion float64   `json:"coherence_cohesion" gorm:"not null"`
	LexicalResource   float64   `json:"lexical_resource" gorm:"not null"`
	GrammaticalRange  float64   `json:"grammatical_range" gorm:"not null"`
	OverallBand       float64   `json:"overall_band" gorm:"not null"`
	Feedback          string    `json:"feedback" gorm:"type:text"`
	CreatedAt         time.Time `json:"created_at"`
}

func (s *Score) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
