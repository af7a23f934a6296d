package service

import (
	"context"

	"filmorate-backend/internal/domains/user/model"
)

type ServiceInterface interface {
	Create(ctx context.Context, user model.User) (*model.User, error)
	Update(ctx context.Context, user model.User) (*model.User, error)
	GetByID(ctx context.Context, id int) (*model.User, error)
	GetAll(ctx context.Context) ([]model.User, error)
	Delete(ctx context.Context, id int) error

	AddFriend(ctx context.Context, userID, friendID int) error
	RemoveFriend(ctx context.Context, userID, friendID int) error
	GetFriends(ctx context.Context, userID int) ([]model.User, error)
	GetCommonFriends(ctx context.Context, userID, otherID int) ([]model.User, error)
}
