package service

import (
	"context"

	"filmorate-backend/internal/domains/film/model"
)

type ServiceInterface interface {
	Create(ctx context.Context, film model.Film) (*model.Film, error)
	Update(ctx context.Context, film model.Film) (*model.Film, error)
	GetByID(ctx context.Context, id int) (*model.Film, error)
	GetAll(ctx context.Context) ([]model.Film, error)
	Delete(ctx context.Context, id int) error

	AddLike(ctx context.Context, filmID, userID int) error
	RemoveLike(ctx context.Context, filmID, userID int) error
	GetPopular(ctx context.Context, count int) ([]model.Film, error)
}
