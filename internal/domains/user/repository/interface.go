package repository

import (
	"context"

	"filmorate-backend/internal/domains/user/model"
)

// RepositoryInterface is the user storage contract, implemented by both the
// relational and the in-memory backends.
//
// Create assigns the id. Update and Delete fail with a not-found error when
// the target id does not exist. Friendship is a directed edge: AddFriend
// records only userID -> friendID and GetFriends lists the users userID
// points to.
type RepositoryInterface interface {
	Create(ctx context.Context, user *model.User) (*model.User, error)
	Update(ctx context.Context, user *model.User) (*model.User, error)
	GetByID(ctx context.Context, id int) (*model.User, error)
	GetAll(ctx context.Context) ([]model.User, error)
	Delete(ctx context.Context, id int) error

	AddFriend(ctx context.Context, userID, friendID int) error
	RemoveFriend(ctx context.Context, userID, friendID int) error
	GetFriends(ctx context.Context, userID int) ([]model.User, error)
	GetCommonFriends(ctx context.Context, userID, otherID int) ([]model.User, error)
}
