package repository

import (
	"github.com/google/uuid"
	"github.com/ieltsmaster/writing-api/internal/model"
	"gorm.io/gorm"
)

type ScoreRepository interface {
	Create(score *model.Score) error
	FindBySubmissionID(submissionID uuid.UUID) (*model.Score, error)
	FindBySubmissionIDs(submissionIDs []uuid.UUID) ([]model.Score, error)
}

type scoreRepository struct {
	db *gorm.DB
}

func NewScoreRepository(db *gorm.DB) ScoreRepository {
	return &scoreRepository{db: db}
}

func (r *scoreRepository) Create(score *model.Score) error {
	return r.db.Create(score).Error
}

func (r *scoreRepository) FindBySubmissionID(submissionID uuid.UUID) (*model.Score, error) {
	var score model.Score
	if err := r.db.First(&score, "submission_id = ?", submissionID).Error; err != nil {
		return nil, err
	}
	return &score, nil
}

func (r *scoreRepository) FindBySubmissionIDs(submissionIDs []uuid.UUID) ([]model.Score, error) {
	var scores []model.Score
	if len(submissionIDs) == 0 {
		return scores, nil
	}
	if err := r.db.Where("submission_id IN ?", submissionIDs).Find(&scores).Error; err != nil {
		return nil, err
	}
	return scores, nil
}
