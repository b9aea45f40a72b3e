package domain

type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// Principal identifies the authenticated caller of a booking operation.
// Identity management itself lives outside this service; every operation
// receives the principal as an explicit value instead of reading it from
// ambient state.
type Principal struct {
	UserID int
	Role   Role
}

func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}
