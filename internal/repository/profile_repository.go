package repository

import (
	"github.com/google/uuid"
	"github.com/ieltsmaster/writing-api/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProfileRepository interface {
	FindByID(id uuid.UUID) (*model.Profile, error)
	// Upsert creates the profile row on first write and updates the display
	// name afterwards. Profiles are keyed by the auth provider's user id.
	Upsert(profile *model.Profile) error
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) FindByID(id uuid.UUID) (*model.Profile, error) {
	var profile model.Profile
	if err := r.db.First(&profile, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) Upsert(profile *model.Profile) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"display_name", "updated_at"}),
	}).Create(profile).Error
}
