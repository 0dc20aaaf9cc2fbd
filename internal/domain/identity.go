package domain

type UserID string

type Role string

const (
	RoleDonor     Role = "donor"
	RoleRecipient Role = "recipient"
	RoleAdmin     Role = "admin"
)

// Identity is the authenticated principal held client-side after login.
// Token is present exactly when the identity represents a live session.
type Identity struct {
	ID       UserID
	FullName string
	Email    string
	Role     Role
	Token    string
}

func (i Identity) Authenticated() bool {
	return i.Token != ""
}

// User is an account record as the admin endpoints return it.
type User struct {
	ID       UserID
	FullName string
	Email    string
	Role     Role
}
