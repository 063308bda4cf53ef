package user

import "github.com/taibuivan/filmorate/pkg/date"

// Kind names users in NOT_FOUND messages.
const Kind = "User"

// User is a person who can befriend other users and like films.
type User struct {
	ID       int64      `json:"id"`
	Email    string     `json:"email"`
	Login    string     `json:"login"`
	Name     string     `json:"name"`
	Birthday *date.Date `json:"birthday"`
}

func (u *User) GetID() int64   { return u.ID }
func (u *User) SetID(id int64) { u.ID = id }

// Clone returns a deep copy.
func (u *User) Clone() *User {
	clone := *u
	if u.Birthday != nil {
		birthday := *u.Birthday
		clone.Birthday = &birthday
	}
	return &clone
}

// Field names used in validation errors.
const (
	FieldEmail    = "email"
	FieldLogin    = "login"
	FieldName     = "name"
	FieldBirthday = "birthday"
)
