package model

// Genre is a fixed tag assignable many-to-many to films. Pre-seeded,
// read-only from the application's perspective.
type Genre struct {
	ID   int    `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

// MpaRating is the MPA classification of a film (G, PG, ...). Pre-seeded,
// read-only.
type MpaRating struct {
	ID   int    `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}
