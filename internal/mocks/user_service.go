package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/formcraft/session/internal/model"
)

// UserService is a testify mock of the user handler's service dependency.
type UserService struct {
	mock.Mock
}

func (m *UserService) Get(ctx context.Context, id string) (model.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.User), args.Error(1)
}
