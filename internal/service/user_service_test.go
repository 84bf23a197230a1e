package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "buildhub/internal/errors"
	"buildhub/internal/model"
)

// MockProfileRepository is a mock implementation of ProfileRepository.
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) FindByUserID(ctx context.Context, userID string) (*model.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Profile), args.Error(1)
}

func (m *MockProfileRepository) Create(ctx context.Context, profile *model.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func annIdentity() *model.Identity {
	return &model.Identity{
		ID:       "u1",
		Email:    "a@b.com",
		Metadata: map[string]any{"full_name": "Ann"},
	}
}

// defaultProfile matches the profile created for a first-time identity.
func defaultProfile(p *model.Profile) bool {
	return p.UserID == "u1" &&
		p.Role == model.RoleUser &&
		p.IsActive &&
		p.Email != nil && *p.Email == "a@b.com" &&
		p.FullName != nil && *p.FullName == "Ann"
}

func TestUserService_CurrentUser(t *testing.T) {
	storeErr := errors.New("connection refused")

	tests := []struct {
		name       string
		identity   *model.Identity
		setupMock  func(*MockProfileRepository)
		wantNil    bool
		wantStatus ProfileStatus
		wantView   model.UserView
		wantErr    error
	}{
		{
			name:     "no identity makes no store calls",
			identity: nil,
			setupMock: func(m *MockProfileRepository) {
			},
			wantNil: true,
		},
		{
			name:     "existing profile",
			identity: annIdentity(),
			setupMock: func(m *MockProfileRepository) {
				m.On("FindByUserID", mock.Anything, "u1").Return(&model.Profile{
					UserID:   "u1",
					FullName: strPtr("Ann Admin"),
					Email:    strPtr("ann@corp.com"),
					Role:     "admin",
					IsActive: true,
				}, nil).Once()
			},
			wantStatus: ProfileFound,
			wantView:   model.UserView{ID: "u1", Email: "ann@corp.com", Name: "Ann Admin", Role: "admin"},
		},
		{
			name:     "missing profile is created once",
			identity: annIdentity(),
			setupMock: func(m *MockProfileRepository) {
				m.On("FindByUserID", mock.Anything, "u1").Return(nil, apperrors.ErrProfileNotFound).Once()
				m.On("Create", mock.Anything, mock.MatchedBy(defaultProfile)).Return(nil).Once()
			},
			wantStatus: ProfileCreated,
			wantView:   model.UserView{ID: "u1", Email: "a@b.com", Name: "Ann", Role: "user"},
		},
		{
			name:     "fetch store error skips create",
			identity: annIdentity(),
			setupMock: func(m *MockProfileRepository) {
				m.On("FindByUserID", mock.Anything, "u1").Return(nil, storeErr).Once()
			},
			wantStatus: ProfileUnavailable,
			wantView:   model.UserView{ID: "u1", Email: "a@b.com", Name: "Ann", Role: "user"},
			wantErr:    storeErr,
		},
		{
			name:     "fetch and create both fail",
			identity: &model.Identity{ID: "u1", Email: "a@b.com"},
			setupMock: func(m *MockProfileRepository) {
				m.On("FindByUserID", mock.Anything, "u1").Return(nil, apperrors.ErrProfileNotFound).Once()
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.Profile")).Return(storeErr).Once()
			},
			wantStatus: ProfileUnavailable,
			wantView:   model.UserView{ID: "u1", Email: "a@b.com", Name: "Admin User", Role: "user"},
			wantErr:    storeErr,
		},
		{
			name:     "create race re-fetches",
			identity: annIdentity(),
			setupMock: func(m *MockProfileRepository) {
				m.On("FindByUserID", mock.Anything, "u1").Return(nil, apperrors.ErrProfileNotFound).Once()
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.Profile")).Return(apperrors.ErrProfileExists).Once()
				m.On("FindByUserID", mock.Anything, "u1").Return(&model.Profile{
					UserID:   "u1",
					FullName: strPtr("Ann"),
					Role:     "user",
				}, nil).Once()
			},
			wantStatus: ProfileFound,
			wantView:   model.UserView{ID: "u1", Email: "a@b.com", Name: "Ann", Role: "user"},
		},
		{
			name:     "create race re-fetch fails",
			identity: annIdentity(),
			setupMock: func(m *MockProfileRepository) {
				m.On("FindByUserID", mock.Anything, "u1").Return(nil, apperrors.ErrProfileNotFound).Once()
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.Profile")).Return(apperrors.ErrProfileExists).Once()
				m.On("FindByUserID", mock.Anything, "u1").Return(nil, storeErr).Once()
			},
			wantStatus: ProfileUnavailable,
			wantView:   model.UserView{ID: "u1", Email: "a@b.com", Name: "Ann", Role: "user"},
			wantErr:    storeErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockProfileRepository)
			tt.setupMock(mockRepo)

			service := NewUserService(mockRepo)
			current := service.CurrentUser(context.Background(), tt.identity)

			if tt.wantNil {
				assert.Nil(t, current)
				mockRepo.AssertNotCalled(t, "FindByUserID", mock.Anything, mock.Anything)
				mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
				return
			}

			require.NotNil(t, current)
			assert.Equal(t, tt.wantStatus, current.Status)
			assert.Equal(t, tt.wantView, current.User)
			if tt.wantErr != nil {
				assert.ErrorIs(t, current.Err, tt.wantErr)
				assert.True(t, current.Degraded())
			} else {
				assert.NoError(t, current.Err)
				assert.False(t, current.Degraded())
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestUserService_FetchErrorNeverCreates(t *testing.T) {
	mockRepo := new(MockProfileRepository)
	mockRepo.On("FindByUserID", mock.Anything, "u1").Return(nil, errors.New("permission denied"))

	current := NewUserService(mockRepo).CurrentUser(context.Background(), annIdentity())

	require.NotNil(t, current)
	assert.Equal(t, ProfileUnavailable, current.Status)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestProfileStatus_String(t *testing.T) {
	assert.Equal(t, "found", ProfileFound.String())
	assert.Equal(t, "created", ProfileCreated.String())
	assert.Equal(t, "unavailable", ProfileUnavailable.String())
	assert.Equal(t, "unknown", ProfileStatus(0).String())
}
