package repository

import (
	"context"

	"filmorate-backend/internal/domains/catalog/model"
)

// RepositoryInterface is the read-only lookup contract for genres and MPA
// ratings. Lists are ordered by id; a miss is a not-found error.
type RepositoryInterface interface {
	GetAllGenres(ctx context.Context) ([]model.Genre, error)
	GetGenreByID(ctx context.Context, id int) (*model.Genre, error)
	GetAllRatings(ctx context.Context) ([]model.MpaRating, error)
	GetRatingByID(ctx context.Context, id int) (*model.MpaRating, error)
}
