package service

import (
	"context"

	"filmorate-backend/internal/domains/catalog/model"
	"filmorate-backend/internal/domains/catalog/repository"
	"filmorate-backend/pkg/apperr"
)

// catalogService exposes the read-only genre and MPA lookups. There is no
// business logic beyond id sanity; the repository owns ordering and caching.
type catalogService struct {
	repo repository.RepositoryInterface
}

func NewCatalogService(repo repository.RepositoryInterface) ServiceInterface {
	return &catalogService{repo: repo}
}

func (s *catalogService) GetAllGenres(ctx context.Context) ([]model.Genre, error) {
	return s.repo.GetAllGenres(ctx)
}

func (s *catalogService) GetGenreByID(ctx context.Context, id int) (*model.Genre, error) {
	if id <= 0 {
		return nil, apperr.NotFound("genre", id)
	}
	return s.repo.GetGenreByID(ctx, id)
}

func (s *catalogService) GetAllRatings(ctx context.Context) ([]model.MpaRating, error) {
	return s.repo.GetAllRatings(ctx)
}

func (s *catalogService) GetRatingByID(ctx context.Context, id int) (*model.MpaRating, error) {
	if id <= 0 {
		return nil, apperr.NotFound("mpa rating", id)
	}
	return s.repo.GetRatingByID(ctx, id)
}
