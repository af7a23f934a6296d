package repository

import (
	"context"

	"filmorate-backend/internal/domains/film/model"
)

// RepositoryInterface is the film storage contract, implemented by both the
// relational and the in-memory backends.
//
// Create assigns the id and persists the deduplicated genre set. Update
// replaces the genre set wholesale and fails with a not-found error when the
// target id does not exist. GetPopular ranks by descending like count with
// ties broken by ascending film id; a non-positive count yields an empty
// list.
type RepositoryInterface interface {
	Create(ctx context.Context, film *model.Film) (*model.Film, error)
	Update(ctx context.Context, film *model.Film) (*model.Film, error)
	GetByID(ctx context.Context, id int) (*model.Film, error)
	GetAll(ctx context.Context) ([]model.Film, error)
	Delete(ctx context.Context, id int) error

	AddLike(ctx context.Context, filmID, userID int) error
	RemoveLike(ctx context.Context, filmID, userID int) error
	GetPopular(ctx context.Context, count int) ([]model.Film, error)
}
