package repository

import (
	"context"
	"sort"
	"sync"

	catalog "filmorate-backend/internal/domains/catalog/model"
	"filmorate-backend/internal/domains/film/model"
	"filmorate-backend/pkg/apperr"
)

// memoryRepository is the map-backed film store used when STORAGE_DRIVER is
// memory. Films are deep-copied on the way in and out so callers can never
// mutate stored state through a shared slice.
type memoryRepository struct {
	mu     sync.Mutex
	films  map[int]model.Film
	likes  map[int]map[int]struct{}
	nextID int
}

func NewMemoryRepository() RepositoryInterface {
	return &memoryRepository{
		films:  make(map[int]model.Film),
		likes:  make(map[int]map[int]struct{}),
		nextID: 1,
	}
}

func (r *memoryRepository) Create(_ context.Context, f *model.Film) (*model.Film, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := cloneFilm(*f)
	stored.ID = r.nextID
	stored.Genres = sortedGenres(stored.UniqueGenres())
	r.nextID++

	r.films[stored.ID] = stored
	r.likes[stored.ID] = make(map[int]struct{})

	result := cloneFilm(stored)
	return &result, nil
}

func (r *memoryRepository) Update(_ context.Context, f *model.Film) (*model.Film, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.films[f.ID]; !ok {
		return nil, apperr.NotFound("film", f.ID)
	}

	stored := cloneFilm(*f)
	stored.Genres = sortedGenres(stored.UniqueGenres())
	r.films[stored.ID] = stored

	result := cloneFilm(stored)
	return &result, nil
}

func (r *memoryRepository) GetByID(_ context.Context, id int) (*model.Film, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.films[id]
	if !ok {
		return nil, apperr.NotFound("film", id)
	}

	result := cloneFilm(stored)
	return &result, nil
}

func (r *memoryRepository) GetAll(_ context.Context) ([]model.Film, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	films := make([]model.Film, 0, len(r.films))
	for _, f := range r.films {
		films = append(films, cloneFilm(f))
	}
	sort.Slice(films, func(i, j int) bool { return films[i].ID < films[j].ID })

	return films, nil
}

func (r *memoryRepository) Delete(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.films[id]; !ok {
		return apperr.NotFound("film", id)
	}

	delete(r.films, id)
	delete(r.likes, id)
	return nil
}

func (r *memoryRepository) AddLike(_ context.Context, filmID, userID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	likes, ok := r.likes[filmID]
	if !ok {
		return apperr.NotFound("film", filmID)
	}
	likes[userID] = struct{}{}
	return nil
}

func (r *memoryRepository) RemoveLike(_ context.Context, filmID, userID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	likes, ok := r.likes[filmID]
	if !ok {
		return apperr.NotFound("film", filmID)
	}
	delete(likes, userID)
	return nil
}

func (r *memoryRepository) GetPopular(_ context.Context, count int) ([]model.Film, error) {
	if count <= 0 {
		return []model.Film{}, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	films := make([]model.Film, 0, len(r.films))
	for _, f := range r.films {
		films = append(films, cloneFilm(f))
	}
	sort.Slice(films, func(i, j int) bool {
		li, lj := len(r.likes[films[i].ID]), len(r.likes[films[j].ID])
		if li != lj {
			return li > lj
		}
		return films[i].ID < films[j].ID
	})

	if count < len(films) {
		films = films[:count]
	}
	return films, nil
}

func cloneFilm(f model.Film) model.Film {
	clone := f
	if f.Mpa != nil {
		mpa := *f.Mpa
		clone.Mpa = &mpa
	}
	if f.Genres != nil {
		clone.Genres = append([]catalog.Genre{}, f.Genres...)
	}
	return clone
}

func sortedGenres(genres []catalog.Genre) []catalog.Genre {
	if genres == nil {
		return []catalog.Genre{}
	}
	sort.Slice(genres, func(i, j int) bool { return genres[i].ID < genres[j].ID })
	return genres
}
