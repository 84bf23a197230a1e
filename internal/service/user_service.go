package service

import (
	"context"
	"errors"

	apperrors "buildhub/internal/errors"
	"buildhub/internal/model"
	"buildhub/internal/repository"
)

// ProfileStatus tells how the profile behind a CurrentUser was obtained.
type ProfileStatus int

const (
	// ProfileFound means an existing profile row was read.
	ProfileFound ProfileStatus = iota + 1
	// ProfileCreated means the profile was missing and has been created.
	ProfileCreated
	// ProfileUnavailable means the store failed and the view is built from the identity alone.
	ProfileUnavailable
)

func (s ProfileStatus) String() string {
	switch s {
	case ProfileFound:
		return "found"
	case ProfileCreated:
		return "created"
	case ProfileUnavailable:
		return "unavailable"
	default:
		return "unknown"
	}
}

// CurrentUser is the outcome of bootstrapping the signed-in user for one request.
type CurrentUser struct {
	User   model.UserView
	Status ProfileStatus
	// Err is the store error behind ProfileUnavailable, nil otherwise.
	Err error
}

// Degraded reports whether the view was built without profile data.
func (u *CurrentUser) Degraded() bool {
	return u != nil && u.Status == ProfileUnavailable
}

// UserService exposes domain operations.
type UserService interface {
	// CurrentUser never fails: it returns nil for a nil identity and otherwise
	// a user view, degraded to identity-only data when the profile store misbehaves.
	CurrentUser(ctx context.Context, identity *model.Identity) *CurrentUser
}

type userService struct {
	repo repository.ProfileRepository
}

// NewUserService builds a UserService over the profile repository.
func NewUserService(repo repository.ProfileRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) CurrentUser(ctx context.Context, identity *model.Identity) *CurrentUser {
	if identity == nil {
		return nil
	}

	profile, err := s.repo.FindByUserID(ctx, identity.ID)
	switch {
	case err == nil:
		return found(identity, profile)
	case !errors.Is(err, apperrors.ErrProfileNotFound):
		return degraded(identity, err)
	}

	profile = model.NewProfileFor(identity)
	err = s.repo.Create(ctx, profile)
	switch {
	case err == nil:
		return &CurrentUser{User: BuildUserView(identity, profile), Status: ProfileCreated}
	case !errors.Is(err, apperrors.ErrProfileExists):
		return degraded(identity, err)
	}

	// A concurrent request created the row first.
	profile, err = s.repo.FindByUserID(ctx, identity.ID)
	if err != nil {
		return degraded(identity, err)
	}
	return found(identity, profile)
}

func found(identity *model.Identity, profile *model.Profile) *CurrentUser {
	return &CurrentUser{User: BuildUserView(identity, profile), Status: ProfileFound}
}

func degraded(identity *model.Identity, err error) *CurrentUser {
	return &CurrentUser{User: BuildUserView(identity, nil), Status: ProfileUnavailable, Err: err}
}
