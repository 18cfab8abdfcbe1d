package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/formcraft/session/internal/model"
)

// TokenManager is a testify mock of model.TokenManager.
type TokenManager struct {
	mock.Mock
}

var _ model.TokenManager = (*TokenManager)(nil)

func (m *TokenManager) Issue(claims model.SessionClaims) (string, model.SessionClaims, error) {
	args := m.Called(claims)
	return args.String(0), args.Get(1).(model.SessionClaims), args.Error(2)
}

func (m *TokenManager) Parse(token string) (model.SessionClaims, error) {
	args := m.Called(token)
	return args.Get(0).(model.SessionClaims), args.Error(1)
}
