package models

import (
	"database/sql"
	"strings"
	"time"
	"unicode"
)

// UserDB represents a row of the "Users" table.
type UserDB struct {
	ID        int64          `db:"Id"`
	Username  string         `db:"Username"`
	Email     string         `db:"Email"`
	Password  string         `db:"Password"` // bcrypt hash, never the plaintext
	FullName  sql.NullString `db:"FullName"`
	CreatedAt time.Time      `db:"CreatedAt"`
	LastLogin sql.NullTime   `db:"LastLogin"`
}

// DisplayName returns the full name, falling back to the username.
func (u *UserDB) DisplayName() string {
	if u.FullName.Valid && u.FullName.String != "" {
		return u.FullName.String
	}
	return u.Username
}

// Initials derives up to two uppercase initials from the display name
// for the team view. Returns "?" when nothing is available.
func (u *UserDB) Initials() string {
	words := strings.Fields(u.DisplayName())
	if len(words) > 2 {
		words = words[:2]
	}

	var b strings.Builder
	for _, w := range words {
		r := []rune(w)
		b.WriteRune(unicode.ToUpper(r[0]))
	}
	if b.Len() == 0 {
		return "?"
	}
	return b.String()
}

// TeamMember is the JSON shape served by the users listing.
type TeamMember struct {
	ID        int64      `json:"id"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	FullName  string     `json:"fullName"`
	Initials  string     `json:"initials"`
	CreatedAt *time.Time `json:"createdAt"`
}

// TeamView converts a user row to its team-listing shape.
func (u *UserDB) TeamView() TeamMember {
	createdAt := u.CreatedAt
	return TeamMember{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FullName:  u.DisplayName(),
		Initials:  u.Initials(),
		CreatedAt: &createdAt,
	}
}
