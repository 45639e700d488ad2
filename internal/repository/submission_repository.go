package repository

import (
	"github.com/google/uuid"
	"github.com/ieltsmaster/writing-api/internal/model"
	"gorm.io/gorm"
)

type SubmissionRepository interface {
	Create(submission *model.Submission) error
	// FindByIDForUser returns the submission only when it belongs to userID.
	FindByIDForUser(id, userID uuid.UUID) (*model.Submission, error)
	FindRecentByUser(userID uuid.UUID, limit int) ([]model.Submission, error)
}

type submissionRepository struct {
	db *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) SubmissionRepository {
	return &submissionRepository{db: db}
}

func (r *submissionRepository) Create(submission *model.Submission) error {
	return r.db.Create(submission).Error
}

func (r *submissionRepository) FindByIDForUser(id, userID uuid.UUID) (*model.Submission, error) {
	var submission model.Submission
	err := r.db.Preload("Question").
		Where("id = ? AND user_id = ?", id, userID).
		First(&submission).Error
	if err != nil {
		return nil, err
	}
	return &submission, nil
}

func (r *submissionRepository) FindRecentByUser(userID uuid.UUID, limit int) ([]model.Submission, error) {
	var submissions []model.Submission
	err := r.db.Preload("Question").
		Where("user_id = ?", userID).
		Order("submitted_at DESC").
		Limit(limit).
		Find(&submissions).Error
	if err != nil {
		return nil, err
	}
	return submissions, nil
}
