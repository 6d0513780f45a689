package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"smarthire/interview/internal/models"
)

var ErrProfileNotFound = errors.New("recruiter profile not found")

// ProfileRepository is the Session Context Store.
type ProfileRepository struct {
	DB *gorm.DB
}

// Load returns the profile with the given id, upgraded to the current
// schema. Returns ErrProfileNotFound when no configuration has been saved.
func (r *ProfileRepository) Load(ctx context.Context, id string) (*models.RecruiterProfile, error) {
	var row models.RecruiterProfile
	err := r.DB.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	upgraded := upgradeProfile(row)
	return &upgraded, nil
}

// Save validates and upserts the profile, always writing the current schema.
func (r *ProfileRepository) Save(ctx context.Context, profile *models.RecruiterProfile) error {
	if len(profile.RecruiterName) > models.MaxNameLength {
		return &models.ErrorResponse{Code: "recruiter_name_too_long", Message: "Recruiter name too long"}
	}
	if len(profile.CandidateName) > models.MaxNameLength {
		return &models.ErrorResponse{Code: "candidate_name_too_long", Message: "Candidate name too long"}
	}
	if len(profile.ContextFile) > models.MaxContextLength {
		return &models.ErrorResponse{Code: "context_too_large", Message: "Context file too large"}
	}

	profile.SchemaVersion = models.ProfileSchemaCurrent
	if err := r.DB.WithContext(ctx).Save(profile).Error; err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	return nil
}

// Delete removes the profile with the given id. Deleting a missing profile
// is not an error.
func (r *ProfileRepository) Delete(ctx context.Context, id string) error {
	if err := r.DB.WithContext(ctx).Delete(&models.RecruiterProfile{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}
	return nil
}

// Context converts a stored profile into the session configuration.
func Context(profile *models.RecruiterProfile) models.InterviewContext {
	return models.InterviewContext{
		RecruiterName: profile.RecruiterName,
		Difficulty:    profile.Difficulty,
		InterviewType: profile.InterviewType,
		CandidateName: profile.CandidateName,
		ContextFile:   profile.ContextFile,
	}
}
