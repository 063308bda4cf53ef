package user

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/taibuivan/filmorate/internal/platform/validate"
	"github.com/taibuivan/filmorate/pkg/date"
)

// Validate checks a candidate user. Only the first violated rule is reported.
func Validate(candidate *User) error {
	validator := validate.FailFast()

	validator.
		Required(FieldEmail, candidate.Email).
		Contains(FieldEmail, candidate.Email, "@").
		Required(FieldLogin, candidate.Login).
		NoWhitespace(FieldLogin, candidate.Login).
		Custom(FieldBirthday, candidate.Birthday == nil, "Must not be null").
		Custom(FieldBirthday, candidate.Birthday != nil && candidate.Birthday.After(date.Today()), "Must not be in the future")

	return validator.Err()
}

// Normalize trims and NFC-normalizes the text fields. It runs before [Validate].
func Normalize(candidate *User) {
	candidate.Email = strings.TrimSpace(candidate.Email)
	candidate.Login = norm.NFC.String(candidate.Login)
	candidate.Name = norm.NFC.String(strings.TrimSpace(candidate.Name))
}

// DefaultName runs after validation and before the record is stored.
// A blank display name falls back to the login.
func DefaultName(candidate *User) {
	if candidate.Name == "" {
		candidate.Name = candidate.Login
	}
}
