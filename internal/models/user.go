package models

type User struct {
	ID           int64  `json:"id" db:"id"`
	Name         string `json:"name" db:"name"`
	Email        string `json:"email" db:"email"`
	PasswordHash string `json:"-" db:"password_hash"`
}

// UserSummary is the list projection of a user.
type UserSummary struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UserDetails is the full serialized user: own fields plus owned tasks and assignments.
type UserDetails struct {
	UserSummary
	Tasks       []Task       `json:"tasks"`
	Assignments []Assignment `json:"assignments"`
}

func (u *User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Name: u.Name, Email: u.Email}
}
