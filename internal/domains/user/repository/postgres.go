package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"filmorate-backend/internal/domains/user/model"
	"filmorate-backend/pkg/apperr"
)

const pgForeignKeyViolation = "23503"

// postgresRepository implements the user storage contract on pgxpool.
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, u *model.User) (*model.User, error) {
	query := `
        INSERT INTO users (email, login, name, birthday)
        VALUES ($1, $2, $3, $4)
        RETURNING id
    `

	err := r.pool.QueryRow(ctx, query, u.Email, u.Login, u.Name, u.Birthday).Scan(&u.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return u, nil
}

func (r *postgresRepository) Update(ctx context.Context, u *model.User) (*model.User, error) {
	query := `
        UPDATE users
        SET email = $1, login = $2, name = $3, birthday = $4
        WHERE id = $5
    `

	cmdTag, err := r.pool.Exec(ctx, query, u.Email, u.Login, u.Name, u.Birthday, u.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return nil, apperr.NotFound("user", u.ID)
	}

	return u, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id int) (*model.User, error) {
	query := `SELECT id, email, login, name, birthday FROM users WHERE id = $1`

	var u model.User
	err := r.pool.QueryRow(ctx, query, id).
		Scan(&u.ID, &u.Email, &u.Login, &u.Name, &u.Birthday)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("user", id)
		}
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}

	return &u, nil
}

func (r *postgresRepository) GetAll(ctx context.Context) ([]model.User, error) {
	query := `SELECT id, email, login, name, birthday FROM users ORDER BY id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	return scanUsers(rows)
}

func (r *postgresRepository) Delete(ctx context.Context, id int) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperr.NotFound("user", id)
	}
	return nil
}

// AddFriend records the directed edge userID -> friendID. Re-adding an
// existing friend is a no-op.
func (r *postgresRepository) AddFriend(ctx context.Context, userID, friendID int) error {
	query := `
        INSERT INTO friendships (user_id, friend_id)
        VALUES ($1, $2)
        ON CONFLICT (user_id, friend_id) DO NOTHING
    `

	_, err := r.pool.Exec(ctx, query, userID, friendID)
	if err != nil {
		// The service checks existence first, but the FK constraint still
		// backs it up under races.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return apperr.NotFound("user", friendID)
		}
		return fmt.Errorf("failed to add friend: %w", err)
	}

	return nil
}

func (r *postgresRepository) RemoveFriend(ctx context.Context, userID, friendID int) error {
	query := `DELETE FROM friendships WHERE user_id = $1 AND friend_id = $2`

	if _, err := r.pool.Exec(ctx, query, userID, friendID); err != nil {
		return fmt.Errorf("failed to remove friend: %w", err)
	}

	return nil
}

func (r *postgresRepository) GetFriends(ctx context.Context, userID int) ([]model.User, error) {
	query := `
        SELECT u.id, u.email, u.login, u.name, u.birthday
        FROM users u
        JOIN friendships f ON u.id = f.friend_id
        WHERE f.user_id = $1
        ORDER BY u.id
    `

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query friends: %w", err)
	}
	defer rows.Close()

	return scanUsers(rows)
}

func (r *postgresRepository) GetCommonFriends(ctx context.Context, userID, otherID int) ([]model.User, error) {
	query := `
        SELECT u.id, u.email, u.login, u.name, u.birthday
        FROM friendships f1
        JOIN friendships f2 ON f1.friend_id = f2.friend_id
        JOIN users u ON f1.friend_id = u.id
        WHERE f1.user_id = $1 AND f2.user_id = $2
        ORDER BY u.id
    `

	rows, err := r.pool.Query(ctx, query, userID, otherID)
	if err != nil {
		return nil, fmt.Errorf("failed to query common friends: %w", err)
	}
	defer rows.Close()

	return scanUsers(rows)
}

func scanUsers(rows pgx.Rows) ([]model.User, error) {
	var users []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Email, &u.Login, &u.Name, &u.Birthday); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating users: %w", err)
	}
	return users, nil
}
