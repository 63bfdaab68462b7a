package audit

import "context"

// Repository exposes the privileged audit-log read.
type Repository interface {
	List(ctx context.Context, token string, limit int) ([]Entry, error)
}
