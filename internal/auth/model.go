package auth

// User is the identity returned by the credential collaborator.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Grant is a successful credential check: the issued token plus the
// verified user.
type Grant struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// State is the persisted session record. Login replaces it wholesale;
// logout deletes it rather than zeroing fields, so "logged out" and
// "never logged in" stay distinguishable.
type State struct {
	User          *User  `json:"user"`
	Token         string `json:"token"`
	Authenticated bool   `json:"isAuthenticated"`
}

// Result reports a login attempt. Failures carry a human-readable message
// instead of an error value; login never returns an error to its caller.
type Result struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}
