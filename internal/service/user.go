package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/formcraft/session/internal/cache"
	"github.com/formcraft/session/internal/logger"
	"github.com/formcraft/session/internal/model"
)

// User serves user profile reads. Lookups are fronted by a bounded TTL
// cache; authentication decisions never consult it, only the verified
// session claims.
type User struct {
	userStore model.UserStore
	cache     *cache.Cache[string, model.User]
	logger    *logger.Logger
}

// NewUser creates a new User service around the store and an explicitly
// constructed cache.
func NewUser(userStore model.UserStore, cache *cache.Cache[string, model.User], logger *logger.Logger) *User {
	return &User{
		userStore: userStore,
		cache:     cache,
		logger:    logger,
	}
}

// Get returns the stored user identified by the session claims' user id.
// A malformed id or a vanished user reads as an authentication failure:
// the session references an account that cannot be served.
func (s *User) Get(ctx context.Context, id string) (model.User, error) {
	userID, err := uuid.Parse(id)
	if err != nil {
		s.logger.Debug("User service: malformed user id in session",
			"user_id", id)
		return model.User{}, model.NewAuthenticationError("Authentication required")
	}

	if user, ok := s.cache.Get(id); ok {
		return user, nil
	}

	user, err := s.userStore.GetByID(ctx, userID)
	if errors.Is(err, model.ErrNotFound) {
		s.logger.Info("User service: session references missing user",
			"user_id", id)
		return model.User{}, model.NewAuthenticationError("Authentication required")
	}
	if err != nil {
		s.logger.Error("User service: failed to get user by id",
			"user_id", id,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	s.cache.Add(id, user)

	return user, nil
}
