package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"filmorate-backend/internal/domains/catalog/model"
	"filmorate-backend/pkg/apperr"
	"filmorate-backend/pkg/cache"
)

// Cache keys. The lookup tables are small and effectively immutable, so a
// generous TTL is fine.
const (
	genresAllKey    = "genres:all"
	genreKeyPrefix  = "genre:"
	ratingsAllKey   = "mpa:all"
	ratingKeyPrefix = "mpa:"
	lookupCacheTTL  = time.Hour
)

// postgresRepository reads the genre and MPA lookup tables, with an optional
// read-through cache in front.
type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache // may be nil when caching is disabled
}

func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) RepositoryInterface {
	return &postgresRepository{
		pool:  pool,
		cache: cache,
	}
}

func (r *postgresRepository) GetAllGenres(ctx context.Context) ([]model.Genre, error) {
	if r.cache != nil {
		var genres []model.Genre
		if found, err := r.cache.Get(ctx, genresAllKey, &genres); err == nil && found {
			return genres, nil
		}
	}

	rows, err := r.pool.Query(ctx, `SELECT id, name FROM genres ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query genres: %w", err)
	}
	defer rows.Close()

	var genres []model.Genre
	for rows.Next() {
		var g model.Genre
		if err := rows.Scan(&g.ID, &g.Name); err != nil {
			return nil, fmt.Errorf("failed to scan genre: %w", err)
		}
		genres = append(genres, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating genres: %w", err)
	}

	if r.cache != nil {
		_ = r.cache.Set(ctx, genresAllKey, genres, lookupCacheTTL)
	}

	return genres, nil
}

func (r *postgresRepository) GetGenreByID(ctx context.Context, id int) (*model.Genre, error) {
	cacheKey := fmt.Sprintf("%s%d", genreKeyPrefix, id)

	if r.cache != nil {
		var g model.Genre
		if found, err := r.cache.Get(ctx, cacheKey, &g); err == nil && found {
			return &g, nil
		}
	}

	var g model.Genre
	err := r.pool.QueryRow(ctx, `SELECT id, name FROM genres WHERE id = $1`, id).
		Scan(&g.ID, &g.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("genre", id)
		}
		return nil, fmt.Errorf("failed to get genre by id: %w", err)
	}

	if r.cache != nil {
		_ = r.cache.Set(ctx, cacheKey, g, lookupCacheTTL)
	}

	return &g, nil
}

func (r *postgresRepository) GetAllRatings(ctx context.Context) ([]model.MpaRating, error) {
	if r.cache != nil {
		var ratings []model.MpaRating
		if found, err := r.cache.Get(ctx, ratingsAllKey, &ratings); err == nil && found {
			return ratings, nil
		}
	}

	rows, err := r.pool.Query(ctx, `SELECT id, name FROM mpa_ratings ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query mpa ratings: %w", err)
	}
	defer rows.Close()

	var ratings []model.MpaRating
	for rows.Next() {
		var m model.MpaRating
		if err := rows.Scan(&m.ID, &m.Name); err != nil {
			return nil, fmt.Errorf("failed to scan mpa rating: %w", err)
		}
		ratings = append(ratings, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating mpa ratings: %w", err)
	}

	if r.cache != nil {
		_ = r.cache.Set(ctx, ratingsAllKey, ratings, lookupCacheTTL)
	}

	return ratings, nil
}

func (r *postgresRepository) GetRatingByID(ctx context.Context, id int) (*model.MpaRating, error) {
	cacheKey := fmt.Sprintf("%s%d", ratingKeyPrefix, id)

	if r.cache != nil {
		var m model.MpaRating
		if found, err := r.cache.Get(ctx, cacheKey, &m); err == nil && found {
			return &m, nil
		}
	}

	var m model.MpaRating
	err := r.pool.QueryRow(ctx, `SELECT id, name FROM mpa_ratings WHERE id = $1`, id).
		Scan(&m.ID, &m.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("mpa rating", id)
		}
		return nil, fmt.Errorf("failed to get mpa rating by id: %w", err)
	}

	if r.cache != nil {
		_ = r.cache.Set(ctx, cacheKey, m, lookupCacheTTL)
	}

	return &m, nil
}
