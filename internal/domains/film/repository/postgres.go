package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	catalog "filmorate-backend/internal/domains/catalog/model"
	"filmorate-backend/internal/domains/film/model"
	"filmorate-backend/pkg/apperr"
	"filmorate-backend/pkg/database"
)

const pgForeignKeyViolation = "23503"

// postgresRepository implements the film storage contract on pgxpool. The
// film row and its genre set are written inside one transaction so a failed
// genre replace never leaves a half-updated film behind.
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, f *model.Film) (*model.Film, error) {
	id, err := database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (int, error) {
		query := `
            INSERT INTO films (name, description, release_date, duration, mpa_rating_id)
            VALUES ($1, $2, $3, $4, $5)
            RETURNING id
        `

		var filmID int
		err := tx.QueryRow(ctx, query,
			f.Name, f.Description, f.ReleaseDate, f.Duration, mpaID(f),
		).Scan(&filmID)
		if err != nil {
			return 0, fmt.Errorf("failed to create film: %w", err)
		}

		if err := replaceGenres(ctx, tx, filmID, f.UniqueGenres()); err != nil {
			return 0, err
		}

		return filmID, nil
	})
	if err != nil {
		return nil, err
	}

	return r.GetByID(ctx, id)
}

func (r *postgresRepository) Update(ctx context.Context, f *model.Film) (*model.Film, error) {
	err := database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		query := `
            UPDATE films
            SET name = $1, description = $2, release_date = $3, duration = $4, mpa_rating_id = $5
            WHERE id = $6
        `

		cmdTag, err := tx.Exec(ctx, query,
			f.Name, f.Description, f.ReleaseDate, f.Duration, mpaID(f), f.ID,
		)
		if err != nil {
			return fmt.Errorf("failed to update film: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return apperr.NotFound("film", f.ID)
		}

		return replaceGenres(ctx, tx, f.ID, f.UniqueGenres())
	})
	if err != nil {
		return nil, err
	}

	return r.GetByID(ctx, f.ID)
}

func (r *postgresRepository) GetByID(ctx context.Context, id int) (*model.Film, error) {
	query := `
        SELECT f.id, f.name, f.description, f.release_date, f.duration,
               f.mpa_rating_id, m.name AS mpa_name
        FROM films f
        LEFT JOIN mpa_ratings m ON f.mpa_rating_id = m.id
        WHERE f.id = $1
    `

	f, err := scanFilm(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("film", id)
		}
		return nil, fmt.Errorf("failed to get film by id: %w", err)
	}

	if err := r.loadGenres(ctx, f); err != nil {
		return nil, err
	}

	return f, nil
}

func (r *postgresRepository) GetAll(ctx context.Context) ([]model.Film, error) {
	query := `
        SELECT f.id, f.name, f.description, f.release_date, f.duration,
               f.mpa_rating_id, m.name AS mpa_name
        FROM films f
        LEFT JOIN mpa_ratings m ON f.mpa_rating_id = m.id
        ORDER BY f.id
    `

	return r.queryFilms(ctx, query)
}

func (r *postgresRepository) Delete(ctx context.Context, id int) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM films WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete film: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperr.NotFound("film", id)
	}
	return nil
}

// AddLike records the like fact. Liking the same film twice is a no-op.
func (r *postgresRepository) AddLike(ctx context.Context, filmID, userID int) error {
	query := `
        INSERT INTO film_likes (film_id, user_id)
        VALUES ($1, $2)
        ON CONFLICT (film_id, user_id) DO NOTHING
    `

	_, err := r.pool.Exec(ctx, query, filmID, userID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return apperr.NotFound("user", userID)
		}
		return fmt.Errorf("failed to add like: %w", err)
	}

	return nil
}

func (r *postgresRepository) RemoveLike(ctx context.Context, filmID, userID int) error {
	query := `DELETE FROM film_likes WHERE film_id = $1 AND user_id = $2`

	if _, err := r.pool.Exec(ctx, query, filmID, userID); err != nil {
		return fmt.Errorf("failed to remove like: %w", err)
	}

	return nil
}

func (r *postgresRepository) GetPopular(ctx context.Context, count int) ([]model.Film, error) {
	if count <= 0 {
		return []model.Film{}, nil
	}

	query := `
        SELECT f.id, f.name, f.description, f.release_date, f.duration,
               f.mpa_rating_id, m.name AS mpa_name
        FROM films f
        LEFT JOIN mpa_ratings m ON f.mpa_rating_id = m.id
        LEFT JOIN film_likes fl ON f.id = fl.film_id
        GROUP BY f.id, m.name
        ORDER BY COUNT(fl.user_id) DESC, f.id
        LIMIT $1
    `

	return r.queryFilms(ctx, query, count)
}

func (r *postgresRepository) queryFilms(ctx context.Context, query string, args ...interface{}) ([]model.Film, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query films: %w", err)
	}
	defer rows.Close()

	var films []model.Film
	for rows.Next() {
		f, err := scanFilm(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan film: %w", err)
		}
		films = append(films, *f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating films: %w", err)
	}

	// Secondary genre lookup per film. Fine at this scale; a join-and-group
	// load would replace it if the catalog grows.
	for i := range films {
		if err := r.loadGenres(ctx, &films[i]); err != nil {
			return nil, err
		}
	}

	return films, nil
}

func (r *postgresRepository) loadGenres(ctx context.Context, f *model.Film) error {
	query := `
        SELECT g.id, g.name
        FROM genres g
        JOIN film_genres fg ON g.id = fg.genre_id
        WHERE fg.film_id = $1
        ORDER BY g.id
    `

	rows, err := r.pool.Query(ctx, query, f.ID)
	if err != nil {
		return fmt.Errorf("failed to query film genres: %w", err)
	}
	defer rows.Close()

	genres := []catalog.Genre{}
	for rows.Next() {
		var g catalog.Genre
		if err := rows.Scan(&g.ID, &g.Name); err != nil {
			return fmt.Errorf("failed to scan genre: %w", err)
		}
		genres = append(genres, g)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating film genres: %w", err)
	}

	f.Genres = genres
	return nil
}

// replaceGenres rewrites the film's genre associations: delete everything,
// then bulk-insert the current set. Runs inside the caller's transaction.
func replaceGenres(ctx context.Context, tx pgx.Tx, filmID int, genres []catalog.Genre) error {
	if _, err := tx.Exec(ctx, `DELETE FROM film_genres WHERE film_id = $1`, filmID); err != nil {
		return fmt.Errorf("failed to clear film genres: %w", err)
	}

	for _, g := range genres {
		_, err := tx.Exec(ctx,
			`INSERT INTO film_genres (film_id, genre_id) VALUES ($1, $2)`,
			filmID, g.ID,
		)
		if err != nil {
			return fmt.Errorf("failed to insert film genre: %w", err)
		}
	}

	return nil
}

func mpaID(f *model.Film) *int {
	if f.Mpa == nil {
		return nil
	}
	return &f.Mpa.ID
}

func scanFilm(row pgx.Row) (*model.Film, error) {
	var f model.Film
	var ratingID *int
	var ratingName *string

	err := row.Scan(
		&f.ID, &f.Name, &f.Description, &f.ReleaseDate, &f.Duration,
		&ratingID, &ratingName,
	)
	if err != nil {
		return nil, err
	}

	if ratingID != nil && ratingName != nil {
		f.Mpa = &catalog.MpaRating{ID: *ratingID, Name: *ratingName}
	}

	return &f, nil
}
