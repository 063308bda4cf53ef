package schema

// CoreFilmLikeTable represents the 'core.filmlike' table
type CoreFilmLikeTable struct {
	Table     string
	FilmID    string
	UserID    string
	CreatedAt string
}

// CoreFilmLike is the schema definition for core.filmlike
var CoreFilmLike = CoreFilmLikeTable{
	Table:     "core.filmlike",
	FilmID:    "filmid",
	UserID:    "userid",
	CreatedAt: "createdat",
}
