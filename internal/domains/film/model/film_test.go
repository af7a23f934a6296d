package model

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	catalog "filmorate-backend/internal/domains/catalog/model"
	"filmorate-backend/internal/shared"
)

func validFilm() Film {
	return Film{
		Name:        "nisi eiusmod",
		Description: "adipisicing",
		ReleaseDate: shared.NewDate(1967, time.March, 25),
		Duration:    100,
	}
}

func TestFilmValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(f *Film)
		wantErr string
	}{
		{
			name:   "valid film passes",
			mutate: func(f *Film) {},
		},
		{
			name:   "description at limit is allowed",
			mutate: func(f *Film) { f.Description = strings.Repeat("a", MaxDescriptionLength) },
		},
		{
			name:   "empty description is allowed",
			mutate: func(f *Film) { f.Description = "" },
		},
		{
			name:    "blank name",
			mutate:  func(f *Film) { f.Name = "" },
			wantErr: "name must not be blank",
		},
		{
			name:    "description over limit",
			mutate:  func(f *Film) { f.Description = strings.Repeat("a", MaxDescriptionLength+1) },
			wantErr: "description must not exceed 200 characters",
		},
		{
			name:    "zero duration",
			mutate:  func(f *Film) { f.Duration = 0 },
			wantErr: "duration must be positive",
		},
		{
			name:    "negative duration",
			mutate:  func(f *Film) { f.Duration = -200 },
			wantErr: "duration must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validFilm()
			tt.mutate(&f)

			err := f.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestUniqueGenres(t *testing.T) {
	f := validFilm()
	f.Genres = []catalog.Genre{{ID: 2}, {ID: 1}, {ID: 2}, {ID: 3}, {ID: 1}}

	unique := f.UniqueGenres()

	assert.Equal(t, []catalog.Genre{{ID: 2}, {ID: 1}, {ID: 3}}, unique)
}

func TestUniqueGenresEmpty(t *testing.T) {
	f := validFilm()
	assert.Nil(t, f.UniqueGenres())
}
