package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/renca-fc/league-console/internal/domain/audit"
	"github.com/renca-fc/league-console/internal/domain/user"
	"github.com/renca-fc/league-console/internal/session"
)

const defaultAuditLimit = 100

// AccountService handles login and privileged account administration.
type AccountService struct {
	userRepo  user.Repository
	auditRepo audit.Repository
	logger    *slog.Logger
}

func NewAccountService(userRepo user.Repository, auditRepo audit.Repository, logger *slog.Logger) *AccountService {
	if logger == nil {
		logger = slog.Default()
	}
	return &AccountService{userRepo: userRepo, auditRepo: auditRepo, logger: logger}
}

// Login exchanges credentials for a bearer token and decodes it into a
// session. Credential validation is entirely the backend's job.
func (s *AccountService) Login(ctx context.Context, credentials user.Credentials) (*session.Session, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AccountService.Login")
	defer span.End()

	credentials.Username = strings.TrimSpace(credentials.Username)
	if credentials.Username == "" || credentials.Password == "" {
		return nil, fmt.Errorf("%w: username and password are required", ErrInvalidInput)
	}

	token, err := s.userRepo.Login(ctx, credentials)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	sess, err := session.FromBearer(token.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("%w: backend returned an unusable token: %v", ErrDependencyUnavailable, err)
	}

	s.logger.InfoContext(ctx, "operator logged in", "operator", sess.Username())
	return sess, nil
}

func (s *AccountService) ListUsers(ctx context.Context, sess *session.Session) ([]user.User, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AccountService.ListUsers")
	defer span.End()

	token, err := requireSession(sess)
	if err != nil {
		return nil, err
	}
	users, err := s.userRepo.List(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (s *AccountService) CreateUser(ctx context.Context, sess *session.Session, credentials user.Credentials) (user.User, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AccountService.CreateUser")
	defer span.End()

	token, err := requireSession(sess)
	if err != nil {
		return user.User{}, err
	}
	credentials.Username = strings.TrimSpace(credentials.Username)
	if credentials.Username == "" || credentials.Password == "" {
		return user.User{}, fmt.Errorf("%w: username and password are required", ErrInvalidInput)
	}

	created, err := s.userRepo.Create(ctx, token, credentials)
	if err != nil {
		return user.User{}, fmt.Errorf("create user: %w", err)
	}
	s.logger.InfoContext(ctx, "operator account created",
		"username", created.Username,
		"operator", sess.Username(),
	)
	return created, nil
}

func (s *AccountService) DeleteUser(ctx context.Context, sess *session.Session, userID int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.AccountService.DeleteUser")
	defer span.End()

	token, err := requireSession(sess)
	if err != nil {
		return err
	}
	if userID <= 0 {
		return fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if err := s.userRepo.Delete(ctx, token, userID); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	s.logger.WarnContext(ctx, "operator account deleted",
		"user_id", userID,
		"operator", sess.Username(),
	)
	return nil
}

func (s *AccountService) AuditLog(ctx context.Context, sess *session.Session, limit int) ([]audit.Entry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AccountService.AuditLog")
	defer span.End()

	token, err := requireSession(sess)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultAuditLimit
	}
	entries, err := s.auditRepo.List(ctx, token, limit)
	if err != nil {
		return nil, fmt.Errorf("audit log: %w", err)
	}
	return entries, nil
}
