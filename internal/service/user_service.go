package service

import (
	"context"
	"fmt"

	"github.com/campusdesk/campus-portal/internal/model"
	"github.com/campusdesk/campus-portal/internal/repository"
)

// UserService backs the bearer-token middleware. The portal trusts the
// identity the token resolves to; how tokens are issued is outside this
// service.
type UserService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// Authenticate resolves an API token to an identity. A nil identity with
// a nil error means the token is unknown.
func (s *UserService) Authenticate(ctx context.Context, token string) (*model.Identity, error) {
	if token == "" {
		return nil, nil
	}

	user, err := s.userRepo.GetByToken(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("get user by token: %w", err)
	}
	if user == nil {
		return nil, nil
	}

	identity := user.Identity()
	return &identity, nil
}
