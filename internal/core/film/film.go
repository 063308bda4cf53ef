package film

import (
	"slices"
	"time"

	"github.com/taibuivan/filmorate/internal/core/genre"
	"github.com/taibuivan/filmorate/internal/core/mpa"
	"github.com/taibuivan/filmorate/pkg/date"
)

// Kind names films in NOT_FOUND messages.
const Kind = "Film"

// Film is a media item users can like.
//
// Mpa and Genres may arrive carrying only ids. Stored films always carry a
// resolved Mpa and a de-duplicated genre list in first-seen order.
type Film struct {
	ID          int64         `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	ReleaseDate *date.Date    `json:"releaseDate"`
	Duration    int           `json:"duration"`
	Mpa         *mpa.Mpa      `json:"mpa"`
	Genres      []genre.Genre `json:"genres"`
}

func (f *Film) GetID() int64   { return f.ID }
func (f *Film) SetID(id int64) { f.ID = id }

// Clone returns a deep copy.
func (f *Film) Clone() *Film {
	clone := *f
	if f.ReleaseDate != nil {
		released := *f.ReleaseDate
		clone.ReleaseDate = &released
	}
	if f.Mpa != nil {
		rating := *f.Mpa
		clone.Mpa = &rating
	}
	if f.Genres != nil {
		clone.Genres = slices.Clone(f.Genres)
	}
	return &clone
}

// EarliestRelease is the first recognised film screening.
var EarliestRelease = date.New(1895, time.December, 28)

// MaxDescriptionLength is counted in characters, not bytes.
const MaxDescriptionLength = 200

// DefaultPopularCount applies when a ranking request gives no positive count.
const DefaultPopularCount = 10

// Field names used in validation errors.
const (
	FieldName        = "name"
	FieldDescription = "description"
	FieldReleaseDate = "releaseDate"
	FieldDuration    = "duration"
)
