package schema

// CoreFilmGenreTable represents the 'core.filmgenre' junction table
type CoreFilmGenreTable struct {
	Table    string
	FilmID   string
	GenreID  string
	Position string
}

// CoreFilmGenre is the schema definition for core.filmgenre
var CoreFilmGenre = CoreFilmGenreTable{
	Table:    "core.filmgenre",
	FilmID:   "filmid",
	GenreID:  "genreid",
	Position: "position",
}
