package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	catalog "filmorate-backend/internal/domains/catalog/model"
	"filmorate-backend/internal/shared"
)

// MaxDescriptionLength caps the film description.
const MaxDescriptionLength = 200

// Film is both the stored entity and the request/response body. The MPA
// rating is optional; the genre set is unique by genre id and kept ordered
// by id on read.
type Film struct {
	ID          int                `json:"id" db:"id"`
	Name        string             `json:"name" db:"name"`
	Description string             `json:"description" db:"description"`
	ReleaseDate shared.Date        `json:"releaseDate" db:"release_date"`
	Duration    int                `json:"duration" db:"duration"`
	Mpa         *catalog.MpaRating `json:"mpa,omitempty"`
	Genres      []catalog.Genre    `json:"genres"`
}

func (f Film) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Name,
			validation.Required.Error("name must not be blank"),
		),
		validation.Field(&f.Description,
			validation.Length(0, MaxDescriptionLength).Error("description must not exceed 200 characters"),
		),
		validation.Field(&f.Duration,
			validation.Required.Error("duration must be positive"),
			validation.Min(1).Error("duration must be positive"),
		),
	)
}

// UniqueGenres returns the genre set deduplicated by id, preserving the
// order of first appearance.
func (f Film) UniqueGenres() []catalog.Genre {
	if len(f.Genres) == 0 {
		return nil
	}

	seen := make(map[int]struct{}, len(f.Genres))
	unique := make([]catalog.Genre, 0, len(f.Genres))
	for _, g := range f.Genres {
		if _, ok := seen[g.ID]; ok {
			continue
		}
		seen[g.ID] = struct{}{}
		unique = append(unique, g)
	}
	return unique
}
