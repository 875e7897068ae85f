package model

import "time"

// Role values the platform assigns. "suspended" doubles as a pseudo-status
// on some historical accounts; IsSuspended covers both encodings.
const (
	RoleAdmin     = "admin"
	RoleModerator = "moderator"
	RoleUser      = "user"
	RoleSuspended = "suspended"
)

// Account status values.
const (
	StatusActive    = "active"
	StatusSuspended = "suspended"
)

// User is a platform account as returned by the auth service.
type User struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	FirstName  string    `json:"firstName"`
	LastName   string    `json:"lastName"`
	Username   string    `json:"username"`
	Role       string    `json:"role"`
	Status     string    `json:"status"`
	Gender     string    `json:"gender"`
	Bio        string    `json:"bio"`
	Picture    string    `json:"picture"`
	ProfilePic string    `json:"profilePic"`
	Following  []string  `json:"following"`
	Followers  []string  `json:"followers"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// FullName joins first and last name.
func (u *User) FullName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// IsSuspended reports whether the account is suspended under either
// encoding the backend has used.
func (u *User) IsSuspended() bool {
	return u.Status == StatusSuspended || u.Role == RoleSuspended
}
