package repository

import (
	"context"

	"filmorate-backend/internal/domains/catalog/model"
	"filmorate-backend/pkg/apperr"
)

// memoryRepository serves the lookup tables from pre-seeded slices. It backs
// the no-database storage driver and the service tests. The data is read-only
// after construction, so no locking is needed.
type memoryRepository struct {
	genres  []model.Genre
	ratings []model.MpaRating
}

func NewMemoryRepository() RepositoryInterface {
	return &memoryRepository{
		genres: []model.Genre{
			{ID: 1, Name: "Comedy"},
			{ID: 2, Name: "Drama"},
			{ID: 3, Name: "Cartoon"},
			{ID: 4, Name: "Thriller"},
			{ID: 5, Name: "Documentary"},
			{ID: 6, Name: "Action"},
		},
		ratings: []model.MpaRating{
			{ID: 1, Name: "G"},
			{ID: 2, Name: "PG"},
			{ID: 3, Name: "PG-13"},
			{ID: 4, Name: "R"},
			{ID: 5, Name: "NC-17"},
		},
	}
}

func (r *memoryRepository) GetAllGenres(_ context.Context) ([]model.Genre, error) {
	out := make([]model.Genre, len(r.genres))
	copy(out, r.genres)
	return out, nil
}

func (r *memoryRepository) GetGenreByID(_ context.Context, id int) (*model.Genre, error) {
	for _, g := range r.genres {
		if g.ID == id {
			genre := g
			return &genre, nil
		}
	}
	return nil, apperr.NotFound("genre", id)
}

func (r *memoryRepository) GetAllRatings(_ context.Context) ([]model.MpaRating, error) {
	out := make([]model.MpaRating, len(r.ratings))
	copy(out, r.ratings)
	return out, nil
}

func (r *memoryRepository) GetRatingByID(_ context.Context, id int) (*model.MpaRating, error) {
	for _, m := range r.ratings {
		if m.ID == id {
			rating := m
			return &rating, nil
		}
	}
	return nil, apperr.NotFound("mpa rating", id)
}
