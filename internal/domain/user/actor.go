package user

// Actor is the authenticated identity performing an operation. Handlers build
// it from the verified JWT claims and pass it explicitly into every service
// call; business logic never reads request-scoped state itself. IP and
// UserAgent carry the request origin for the audit trail.
type Actor struct {
	ID        uint
	Role      Role
	IP        string
	UserAgent string
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}
