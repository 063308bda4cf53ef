package film

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/taibuivan/filmorate/internal/platform/validate"
)

// Normalize trims the name and brings free text to Unicode NFC.
//
// It runs before [Validate]: NFC can change the rune count, and the
// description limit applies to the stored text.
func Normalize(candidate *Film) {
	candidate.Name = norm.NFC.String(strings.TrimSpace(candidate.Name))
	candidate.Description = norm.NFC.String(candidate.Description)
}

// Validate checks a candidate film. Only the first violated rule is reported.
func Validate(candidate *Film) error {
	validator := validate.FailFast()

	validator.
		Required(FieldName, candidate.Name).
		MaxLen(FieldDescription, candidate.Description, MaxDescriptionLength).
		Custom(FieldReleaseDate, candidate.ReleaseDate == nil, "Must not be null").
		Custom(FieldReleaseDate, candidate.ReleaseDate != nil && candidate.ReleaseDate.Before(EarliestRelease),
			"Must not be before "+EarliestRelease.String()).
		Positive(FieldDuration, candidate.Duration)

	return validator.Err()
}
