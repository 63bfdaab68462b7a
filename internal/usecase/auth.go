package usecase

import (
	"fmt"
	"strings"

	"github.com/renca-fc/league-console/internal/session"
)

// requireSession extracts the bearer token from an operator session.
// Every mutating operation goes through here so privileged calls can
// never fall back to ambient credentials.
func requireSession(sess *session.Session) (string, error) {
	if sess == nil || strings.TrimSpace(sess.Token) == "" {
		return "", fmt.Errorf("%w: an operator session is required", ErrUnauthorized)
	}
	return sess.Token, nil
}
