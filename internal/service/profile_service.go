package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/ieltsmaster/writing-api/internal/dto"
	"github.com/ieltsmaster/writing-api/internal/model"
	"github.com/ieltsmaster/writing-api/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const historyLimit = 20

// ProfileService serves the caller's profile plus recent attempt history.
type ProfileService interface {
	GetProfile(ctx context.Context, userID uuid.UUID, email string) (*dto.ProfileDetailResponse, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req dto.UpdateProfileRequest) (*dto.ProfileResponse, error)
}

type profileService struct {
	profileRepo    repository.ProfileRepository
	submissionRepo repository.SubmissionRepository
	scoreRepo      repository.ScoreRepository
}

func NewProfileService(
	profileRepo repository.ProfileRepository,
	submissionRepo repository.SubmissionRepository,
	scoreRepo repository.ScoreRepository,
) ProfileService {
	return &profileService{
		profileRepo:    profileRepo,
		submissionRepo: submissionRepo,
		scoreRepo:      scoreRepo,
	}
}

func (s *profileService) GetProfile(ctx context.Context, userID uuid.UUID, email string) (*dto.ProfileDetailResponse, error) {
	profile, err := s.profileRepo.FindByID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// First visit: seed the profile row from the auth identity.
		profile = &model.Profile{ID: userID, DisplayName: displayNameFromEmail(email)}
		if err := s.profileRepo.Upsert(profile); err != nil {
			log.Error().Err(err).Str("user_id", userID.String()).Msg("Failed to seed profile")
			return nil, fmt.Errorf("failed to create profile: %w", err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	submissions, err := s.submissionRepo.FindRecentByUser(userID, historyLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load submission history: %w", err)
	}

	ids := make([]uuid.UUID, len(submissions))
	for i, sub := range submissions {
		ids[i] = sub.ID
	}
	scores, err := s.scoreRepo.FindBySubmissionIDs(ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load scores for history: %w", err)
	}
	bandBySubmission := make(map[uuid.UUID]float64, len(scores))
	for _, score := range scores {
		bandBySubmission[score.SubmissionID] = score.OverallBand
	}

	history := make([]dto.SubmissionSummary, len(submissions))
	for i, sub := range submissions {
		summary := dto.SubmissionSummary{
			SubmissionID: sub.ID,
			TestType:     sub.Question.TestType,
			TaskType:     sub.Question.TaskType,
			SubmittedAt:  sub.SubmittedAt,
		}
		if band, ok := bandBySubmission[sub.ID]; ok {
			b := band
			summary.OverallBand = &b
		}
		history[i] = summary
	}

	return &dto.ProfileDetailResponse{
		Profile: dto.ProfileResponse{
			ID:          profile.ID,
			DisplayName: profile.DisplayName,
			CreatedAt:   profile.CreatedAt,
		},
		History: history,
	}, nil
}

func (s *profileService) UpdateProfile(ctx context.Context, userID uuid.UUID, req dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	profile := &model.Profile{ID: userID, DisplayName: req.DisplayName}
	if err := s.profileRepo.Upsert(profile); err != nil {
		log.Error().Err(err).Str("user_id", userID.String()).Msg("Failed to update profile")
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return &dto.ProfileResponse{
		ID:          profile.ID,
		DisplayName: profile.DisplayName,
		CreatedAt:   profile.CreatedAt,
	}, nil
}

func displayNameFromEmail(email string) string {
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return email
}
