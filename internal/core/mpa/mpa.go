package mpa

// Mpa is a content-rating classification attached to every film.
type Mpa struct {
	ID   int64  `json:"id"`
	Name string `json:"name,omitempty"`
}

// DefaultID is the classification a film receives when none is supplied.
const DefaultID int64 = 1

// Kind names this catalog in NOT_FOUND messages.
const Kind = "Mpa"

// Seed is the fixed rating table.
var Seed = []Mpa{
	{ID: 1, Name: "G"},
	{ID: 2, Name: "PG"},
	{ID: 3, Name: "PG-13"},
	{ID: 4, Name: "R"},
	{ID: 5, Name: "NC-17"},
}
