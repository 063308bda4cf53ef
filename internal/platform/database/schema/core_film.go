package schema

// CoreFilmTable represents the 'core.film' table
type CoreFilmTable struct {
	Table       string
	ID          string
	Name        string
	Description string
	ReleaseDate string
	Duration    string
	MpaID       string
	CreatedAt   string

	// Sequence issues film identifiers. It is never rewound by deletes.
	Sequence string
}

// CoreFilm is the schema definition for core.film
var CoreFilm = CoreFilmTable{
	Table:       "core.film",
	ID:          "id",
	Name:        "name",
	Description: "description",
	ReleaseDate: "releasedate",
	Duration:    "duration",
	MpaID:       "mpaid",
	CreatedAt:   "createdat",
	Sequence:    "core.film_id_seq",
}

// Columns returns all standard column names
func (t CoreFilmTable) Columns() []string {
	return []string{t.ID, t.Name, t.Description, t.ReleaseDate, t.Duration, t.MpaID}
}
