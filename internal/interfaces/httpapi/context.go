package httpapi

import (
	"context"

	"github.com/renca-fc/league-console/internal/session"
)

type contextKey string

const sessionContextKey contextKey = "operator_session"

func withSession(ctx context.Context, sess *session.Session) context.Context {
	return context.WithValue(ctx, sessionContextKey, sess)
}

func sessionFromContext(ctx context.Context) *session.Session {
	sess, _ := ctx.Value(sessionContextKey).(*session.Session)
	return sess
}
