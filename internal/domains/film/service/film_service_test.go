package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalog "filmorate-backend/internal/domains/catalog/model"
	catalogrepo "filmorate-backend/internal/domains/catalog/repository"
	"filmorate-backend/internal/domains/film/model"
	"filmorate-backend/internal/domains/film/repository"
	usermodel "filmorate-backend/internal/domains/user/model"
	userrepo "filmorate-backend/internal/domains/user/repository"
	"filmorate-backend/internal/shared"
	"filmorate-backend/pkg/apperr"
)

type fixture struct {
	films ServiceInterface
	users userrepo.RepositoryInterface
}

func newFixture() *fixture {
	users := userrepo.NewMemoryRepository()
	films := NewFilmService(
		repository.NewMemoryRepository(),
		users,
		catalogrepo.NewMemoryRepository(),
	)
	return &fixture{films: films, users: users}
}

func (f *fixture) createFilm(t *testing.T, film model.Film) *model.Film {
	t.Helper()
	created, err := f.films.Create(context.Background(), film)
	require.NoError(t, err)
	return created
}

func (f *fixture) createUser(t *testing.T, login string) *usermodel.User {
	t.Helper()
	created, err := f.users.Create(context.Background(), &usermodel.User{
		Email: login + "@example.com",
		Login: login,
		Name:  login,
	})
	require.NoError(t, err)
	return created
}

func baseFilm() model.Film {
	return model.Film{
		Name:        "nisi eiusmod",
		Description: "adipisicing",
		ReleaseDate: shared.NewDate(1967, time.March, 25),
		Duration:    100,
	}
}

func TestCreateFilmOnEarliestReleaseDate(t *testing.T) {
	f := newFixture()

	film := baseFilm()
	film.ReleaseDate = shared.NewDate(1895, time.December, 28)

	created := f.createFilm(t, film)
	assert.Equal(t, shared.NewDate(1895, time.December, 28), created.ReleaseDate)
}

func TestCreateFilmBeforeEarliestReleaseDate(t *testing.T) {
	f := newFixture()

	film := baseFilm()
	film.ReleaseDate = shared.NewDate(1895, time.December, 27)

	_, err := f.films.Create(context.Background(), film)

	assert.True(t, apperr.IsValidation(err))
	assert.EqualError(t, err, "release date must not be before 1895-12-28")
}

func TestCreateFilmWithUnknownRating(t *testing.T) {
	f := newFixture()

	film := baseFilm()
	film.Mpa = &catalog.MpaRating{ID: 10}

	_, err := f.films.Create(context.Background(), film)

	assert.True(t, apperr.IsNotFound(err))
	assert.EqualError(t, err, "mpa rating with id=10 not found")
}

func TestCreateFilmWithUnknownGenre(t *testing.T) {
	f := newFixture()

	film := baseFilm()
	film.Genres = []catalog.Genre{{ID: 1}, {ID: 99}}

	_, err := f.films.Create(context.Background(), film)

	assert.True(t, apperr.IsNotFound(err))
	assert.EqualError(t, err, "genre with id=99 not found")
}

func TestCreateFilmWithKnownReferences(t *testing.T) {
	f := newFixture()

	film := baseFilm()
	film.Mpa = &catalog.MpaRating{ID: 3}
	film.Genres = []catalog.Genre{{ID: 1}, {ID: 2}}

	created := f.createFilm(t, film)

	assert.NotZero(t, created.ID)
	assert.Len(t, created.Genres, 2)
}

func TestUpdateFilmValidatesReferences(t *testing.T) {
	f := newFixture()
	created := f.createFilm(t, baseFilm())

	created.Mpa = &catalog.MpaRating{ID: 10}
	_, err := f.films.Update(context.Background(), *created)

	assert.True(t, apperr.IsNotFound(err))
}

func TestUpdateMissingFilm(t *testing.T) {
	f := newFixture()

	film := baseFilm()
	film.ID = 9999
	_, err := f.films.Update(context.Background(), film)

	assert.True(t, apperr.IsNotFound(err))
	assert.EqualError(t, err, "film with id=9999 not found")
}

func TestAddLike(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	film := f.createFilm(t, baseFilm())
	user := f.createUser(t, "viewer")

	require.NoError(t, f.films.AddLike(ctx, film.ID, user.ID))

	popular, err := f.films.GetPopular(ctx, 10)
	require.NoError(t, err)
	require.Len(t, popular, 1)
	assert.Equal(t, film.ID, popular[0].ID)
}

func TestAddLikeMissingUser(t *testing.T) {
	f := newFixture()
	film := f.createFilm(t, baseFilm())

	err := f.films.AddLike(context.Background(), film.ID, 4444)

	assert.True(t, apperr.IsNotFound(err))
	assert.EqualError(t, err, "user with id=4444 not found")
}

func TestAddLikeMissingFilm(t *testing.T) {
	f := newFixture()
	user := f.createUser(t, "viewer")

	err := f.films.AddLike(context.Background(), 4444, user.ID)

	assert.True(t, apperr.IsNotFound(err))
}

func TestRemoveLikeMissingUser(t *testing.T) {
	f := newFixture()
	film := f.createFilm(t, baseFilm())

	err := f.films.RemoveLike(context.Background(), film.ID, 4444)

	assert.True(t, apperr.IsNotFound(err))
}

func TestGetPopularPassesCountThrough(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.createFilm(t, baseFilm())

	popular, err := f.films.GetPopular(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, popular)
}
