package model

import "time"

type User struct {
	UserID       string `firestore:"userid,omitempty" json:"id"`
	Name         string `firestore:"name,omitempty" json:"name"`
	Email        string `firestore:"email,omitempty" json:"email"`
	PasswordHash string `firestore:"passwordhash,omitempty" json:"-"`
	// Some early accounts stored the bcrypt hash under "password".
	Password  string    `firestore:"password,omitempty" json:"-"`
	CreatedAt time.Time `firestore:"createdat,omitempty" json:"-"`
}

// SanitizedUser is the shape returned to clients. The password hash never
// leaves the server.
type SanitizedUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (u *User) Sanitized() SanitizedUser {
	return SanitizedUser{ID: u.UserID, Name: u.Name, Email: u.Email}
}
