package handler

import (
	"context"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"buildhub/internal/auth"
	"buildhub/internal/authapi"
	"buildhub/internal/model"
	"buildhub/internal/service"
	"buildhub/internal/web"
)

type testValidator struct {
	validator *validator.Validate
}

func (v *testValidator) Validate(i interface{}) error {
	return v.validator.Struct(i)
}

func newTestEcho(t *testing.T) *echo.Echo {
	t.Helper()
	renderer, err := web.NewRenderer()
	require.NoError(t, err)

	e := echo.New()
	e.Validator = &testValidator{validator: validator.New()}
	e.Renderer = renderer
	return e
}

// MockUserService is a mock implementation of service.UserService.
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) CurrentUser(ctx context.Context, identity *model.Identity) *service.CurrentUser {
	args := m.Called(ctx, identity)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*service.CurrentUser)
}

// MockOTPVerifier is a mock implementation of OTPVerifier.
type MockOTPVerifier struct {
	mock.Mock
}

func (m *MockOTPVerifier) VerifyOTP(ctx context.Context, tokenHash, otpType string) (*authapi.Session, error) {
	args := m.Called(ctx, tokenHash, otpType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authapi.Session), args.Error(1)
}

// MockSessionStore is a mock implementation of auth.SessionStore.
type MockSessionStore struct {
	mock.Mock
}

func (m *MockSessionStore) Save(ctx context.Context, s *auth.Session) error {
	args := m.Called(ctx, s)
	if args.Error(0) == nil && s.ID == "" {
		s.ID = "sess-1"
	}
	return args.Error(0)
}

func (m *MockSessionStore) Get(ctx context.Context, id string) (*auth.Session, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.Session), args.Error(1)
}

func (m *MockSessionStore) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
