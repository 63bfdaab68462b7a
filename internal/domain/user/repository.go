package user

import "context"

// Repository exposes account operations against the league backend.
type Repository interface {
	Login(ctx context.Context, credentials Credentials) (Token, error)
	List(ctx context.Context, token string) ([]User, error)
	Create(ctx context.Context, token string, credentials Credentials) (User, error)
	Delete(ctx context.Context, token string, userID int64) error
}
