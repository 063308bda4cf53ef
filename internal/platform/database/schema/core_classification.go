package schema

// RefClassificationTable represents a small id -> name lookup table
type RefClassificationTable struct {
	Table string
	ID    string
	Name  string
}

// RefMpa is the schema definition for core.mpa
var RefMpa = RefClassificationTable{
	Table: "core.mpa",
	ID:    "id",
	Name:  "name",
}

// RefGenre is the schema definition for core.genre
var RefGenre = RefClassificationTable{
	Table: "core.genre",
	ID:    "id",
	Name:  "name",
}
