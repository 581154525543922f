package entity

// Role is the authorization level carried on a user and in their token claims.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleReporter Role = "reporter"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleReporter
}
