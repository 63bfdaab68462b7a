// Package session carries the operator's credentials as an explicit
// capability object. It is built once per request from the bearer
// token and handed to whichever operation needs it; nothing in the
// console reads authentication state from ambient globals.
package session

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/renca-fc/league-console/internal/domain/user"
)

// Session is a live operator session: the raw bearer token forwarded
// to the league backend, plus the principal decoded from its claims.
//
// The console only decodes claims for display and logging; the backend
// is the sole verifier and rejects tampered or expired tokens on every
// mutating call.
type Session struct {
	Token     string
	Principal user.Principal
}

type tokenClaims struct {
	Subject   string `json:"sub"`
	ExpiresAt int64  `json:"exp"`
}

// FromBearer builds a session from a bearer token value. The token
// must look like a JWT (three dot-separated segments) with decodable
// claims; anything else is treated as an invalid credential.
func FromBearer(token string) (*Session, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, fmt.Errorf("token is required")
	}

	segments := strings.Split(token, ".")
	if len(segments) != 3 {
		return nil, fmt.Errorf("malformed token")
	}

	payload, err := base64.RawURLEncoding.DecodeString(segments[1])
	if err != nil {
		return nil, fmt.Errorf("decode token claims: %w", err)
	}

	var claims tokenClaims
	if err := sonic.Unmarshal(payload, &claims); err != nil {
		return nil, fmt.Errorf("unmarshal token claims: %w", err)
	}
	if strings.TrimSpace(claims.Subject) == "" {
		return nil, fmt.Errorf("token has no subject")
	}

	principal := user.Principal{Username: claims.Subject}
	if claims.ExpiresAt > 0 {
		principal.ExpiresAt = time.Unix(claims.ExpiresAt, 0)
	}

	return &Session{Token: token, Principal: principal}, nil
}

// Username is the operator's display name, for logs and audit trails.
func (s *Session) Username() string {
	if s == nil {
		return ""
	}
	return s.Principal.Username
}
