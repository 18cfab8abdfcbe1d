package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/formcraft/session/internal/model"
	"github.com/formcraft/session/internal/service"
)

// AuthService is a testify mock of the auth handler's service dependency.
type AuthService struct {
	mock.Mock
}

func (m *AuthService) Signup(ctx context.Context, name, email, password, confirmPassword string) (service.Session, error) {
	args := m.Called(ctx, name, email, password, confirmPassword)
	return args.Get(0).(service.Session), args.Error(1)
}

func (m *AuthService) Login(ctx context.Context, email, password string) (service.Session, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(service.Session), args.Error(1)
}

func (m *AuthService) VerifySession(token string) (model.SessionClaims, error) {
	args := m.Called(token)
	return args.Get(0).(model.SessionClaims), args.Error(1)
}

func (m *AuthService) RefreshSession(claims model.SessionClaims) (string, model.SessionClaims, bool, error) {
	args := m.Called(claims)
	return args.String(0), args.Get(1).(model.SessionClaims), args.Bool(2), args.Error(3)
}
