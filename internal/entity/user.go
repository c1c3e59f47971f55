package entity

type Role string

const (
	RoleAdmin Role = "admin"
	RoleBDA   Role = "BDA"
)

// User is a BDA or admin account. The core never mutates users; they exist
// for assignment lookups and view filtering.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Role  Role   `json:"role"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
