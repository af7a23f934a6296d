package service

import (
	"context"

	catalogrepo "filmorate-backend/internal/domains/catalog/repository"
	"filmorate-backend/internal/domains/film/model"
	"filmorate-backend/internal/domains/film/repository"
	userrepo "filmorate-backend/internal/domains/user/repository"
	"filmorate-backend/internal/shared"
	"filmorate-backend/pkg/apperr"
)

// earliestReleaseDate is the first public film screening; nothing can have
// been released before it.
var earliestReleaseDate = shared.NewDate(1895, 12, 28)

// filmService owns the film business rules: the release-date floor, MPA and
// genre references must resolve in the catalog, and like operations require
// both the film and the user to exist.
type filmService struct {
	films   repository.RepositoryInterface
	users   userrepo.RepositoryInterface
	catalog catalogrepo.RepositoryInterface
}

func NewFilmService(
	films repository.RepositoryInterface,
	users userrepo.RepositoryInterface,
	catalog catalogrepo.RepositoryInterface,
) ServiceInterface {
	return &filmService{films: films, users: users, catalog: catalog}
}

func (s *filmService) Create(ctx context.Context, film model.Film) (*model.Film, error) {
	if err := s.checkFilm(ctx, film); err != nil {
		return nil, err
	}
	return s.films.Create(ctx, &film)
}

func (s *filmService) Update(ctx context.Context, film model.Film) (*model.Film, error) {
	if err := s.checkFilm(ctx, film); err != nil {
		return nil, err
	}
	// The repository fails with not-found when the id does not exist.
	return s.films.Update(ctx, &film)
}

func (s *filmService) GetByID(ctx context.Context, id int) (*model.Film, error) {
	return s.films.GetByID(ctx, id)
}

func (s *filmService) GetAll(ctx context.Context) ([]model.Film, error) {
	return s.films.GetAll(ctx)
}

func (s *filmService) Delete(ctx context.Context, id int) error {
	return s.films.Delete(ctx, id)
}

func (s *filmService) AddLike(ctx context.Context, filmID, userID int) error {
	if err := s.requireFilmAndUser(ctx, filmID, userID); err != nil {
		return err
	}
	return s.films.AddLike(ctx, filmID, userID)
}

func (s *filmService) RemoveLike(ctx context.Context, filmID, userID int) error {
	if err := s.requireFilmAndUser(ctx, filmID, userID); err != nil {
		return err
	}
	return s.films.RemoveLike(ctx, filmID, userID)
}

func (s *filmService) GetPopular(ctx context.Context, count int) ([]model.Film, error) {
	return s.films.GetPopular(ctx, count)
}

// checkFilm enforces the rules that need more than the request body: the
// release-date floor and catalog references resolving to real rows.
func (s *filmService) checkFilm(ctx context.Context, film model.Film) error {
	if !film.ReleaseDate.IsZero() && film.ReleaseDate.Before(earliestReleaseDate) {
		return apperr.Validation("release date must not be before 1895-12-28")
	}

	if film.Mpa != nil {
		if _, err := s.catalog.GetRatingByID(ctx, film.Mpa.ID); err != nil {
			return err
		}
	}

	for _, g := range film.UniqueGenres() {
		if _, err := s.catalog.GetGenreByID(ctx, g.ID); err != nil {
			return err
		}
	}

	return nil
}

func (s *filmService) requireFilmAndUser(ctx context.Context, filmID, userID int) error {
	if _, err := s.films.GetByID(ctx, filmID); err != nil {
		return err
	}
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return err
	}
	return nil
}
