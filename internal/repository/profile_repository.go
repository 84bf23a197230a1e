package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	apperrors "buildhub/internal/errors"
	"buildhub/internal/model"
)

// ProfileRepository defines profile persistence operations.
type ProfileRepository interface {
	// FindByUserID returns apperrors.ErrProfileNotFound when no row exists.
	FindByUserID(ctx context.Context, userID string) (*model.Profile, error)
	// Create inserts the profile and fills generated columns in place.
	// A second profile for the same user yields apperrors.ErrProfileExists.
	Create(ctx context.Context, profile *model.Profile) error
}

type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository builds a GORM-backed repository.
// The DB must be opened with TranslateError so duplicate keys are recognised.
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) FindByUserID(ctx context.Context, userID string) (*model.Profile, error) {
	var profile model.Profile
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find profile %s: %w", userID, err)
	}
	return &profile, nil
}

func (r *profileRepository) Create(ctx context.Context, profile *model.Profile) error {
	err := r.db.WithContext(ctx).Create(profile).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperrors.ErrProfileExists
	}
	if err != nil {
		return fmt.Errorf("create profile %s: %w", profile.UserID, err)
	}
	return nil
}
