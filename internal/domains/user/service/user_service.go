package service

import (
	"context"
	"strings"

	"filmorate-backend/internal/domains/user/model"
	"filmorate-backend/internal/domains/user/repository"
	"filmorate-backend/pkg/apperr"
)

// userService owns the user business rules: a blank display name defaults to
// the login, and friend operations require both referenced users to exist.
type userService struct {
	repo repository.RepositoryInterface
}

func NewUserService(repo repository.RepositoryInterface) ServiceInterface {
	return &userService{repo: repo}
}

func (s *userService) Create(ctx context.Context, user model.User) (*model.User, error) {
	if strings.TrimSpace(user.Name) == "" {
		user.Name = user.Login
	}
	return s.repo.Create(ctx, &user)
}

func (s *userService) Update(ctx context.Context, user model.User) (*model.User, error) {
	if strings.TrimSpace(user.Name) == "" {
		user.Name = user.Login
	}
	// The repository fails with not-found when the id does not exist, so no
	// existence pre-check is needed here.
	return s.repo.Update(ctx, &user)
}

func (s *userService) GetByID(ctx context.Context, id int) (*model.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *userService) GetAll(ctx context.Context) ([]model.User, error) {
	return s.repo.GetAll(ctx)
}

func (s *userService) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

func (s *userService) AddFriend(ctx context.Context, userID, friendID int) error {
	if userID == friendID {
		return apperr.Validation("a user cannot befriend themselves")
	}
	if err := s.requireUsers(ctx, userID, friendID); err != nil {
		return err
	}
	return s.repo.AddFriend(ctx, userID, friendID)
}

func (s *userService) RemoveFriend(ctx context.Context, userID, friendID int) error {
	if err := s.requireUsers(ctx, userID, friendID); err != nil {
		return err
	}
	return s.repo.RemoveFriend(ctx, userID, friendID)
}

func (s *userService) GetFriends(ctx context.Context, userID int) ([]model.User, error) {
	if err := s.requireUsers(ctx, userID); err != nil {
		return nil, err
	}
	return s.repo.GetFriends(ctx, userID)
}

func (s *userService) GetCommonFriends(ctx context.Context, userID, otherID int) ([]model.User, error) {
	if err := s.requireUsers(ctx, userID, otherID); err != nil {
		return nil, err
	}
	return s.repo.GetCommonFriends(ctx, userID, otherID)
}

func (s *userService) requireUsers(ctx context.Context, ids ...int) error {
	for _, id := range ids {
		if _, err := s.repo.GetByID(ctx, id); err != nil {
			return err
		}
	}
	return nil
}
