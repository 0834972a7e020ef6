package entity

type Role string

const (
	RoleUser  Role = "User"
	RoleAdmin Role = "Admin"
)

// IsAdmin is the only role predicate; handlers never compare raw strings
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// Valid reports whether the role is one of the two known variants
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

type User struct {
	Base
	FirstName    string `db:"first_name"`
	LastName     string `db:"last_name"`
	Username     string `db:"username"`
	Email        string `db:"email"`
	PasswordHash string `db:"password"`
	Role         Role   `db:"role"`
}
