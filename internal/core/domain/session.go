package domain

// RoleAdmin is the only role allowed to hold a gateway session.
const RoleAdmin = "ADMIN"

// Account is the administrator identity returned by the auth endpoint and
// mirrored into the session vault.
type Account struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	Fullname string `json:"fullname"`
	Role     string `json:"role"`
	Status   string `json:"status"`
}

// IsAdmin reports whether the account may operate the admin gateway.
func (a Account) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// Session is a read-only snapshot of the gateway's authentication state.
// Invariant: Authenticated implies a non-empty Token and a non-nil Account
// whose role is ADMIN.
type Session struct {
	ID            string   `json:"id,omitempty"`
	Token         string   `json:"-"`
	Account       *Account `json:"account,omitempty"`
	Authenticated bool     `json:"authenticated"`
}
