package service

import (
	"context"

	"filmorate-backend/internal/domains/catalog/model"
)

type ServiceInterface interface {
	GetAllGenres(ctx context.Context) ([]model.Genre, error)
	GetGenreByID(ctx context.Context, id int) (*model.Genre, error)
	GetAllRatings(ctx context.Context) ([]model.MpaRating, error)
	GetRatingByID(ctx context.Context, id int) (*model.MpaRating, error)
}
