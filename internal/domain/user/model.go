package user

import "time"

// User is an operator account on the league backend.
type User struct {
	ID       int64
	Username string
}

// Credentials are exchanged for a bearer token at login. The backend
// is the only component that ever validates a password.
type Credentials struct {
	Username string
	Password string
}

// Token is the backend's login response.
type Token struct {
	AccessToken string
	TokenType   string
}

// Principal identifies the operator behind a request, decoded from the
// bearer token's claims. The console never verifies the signature:
// enforcement happens on the backend, which rejects bad tokens.
type Principal struct {
	Username  string
	ExpiresAt time.Time
}
