package genre

// Genre is a descriptive tag. A film may carry several.
type Genre struct {
	ID   int64  `json:"id"`
	Name string `json:"name,omitempty"`
}

// Kind names this catalog in NOT_FOUND messages.
const Kind = "Genre"

// Seed is the built-in genre table.
var Seed = []Genre{
	{ID: 1, Name: "Comedy"},
	{ID: 2, Name: "Drama"},
	{ID: 3, Name: "Cartoon"},
	{ID: 4, Name: "Thriller"},
	{ID: 5, Name: "Documentary"},
	{ID: 6, Name: "Action"},
}
