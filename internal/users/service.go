package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/liftlog/internal/auth"
	"github.com/2beens/liftlog/internal/telemetry/tracing"
	"github.com/2beens/liftlog/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=users_test

type usersRepo interface {
	Add(ctx context.Context, params RegisterParams, passwordHash string) (*User, error)
	Get(ctx context.Context, id int) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Update(ctx context.Context, id int, patch UserPatch) (*User, error)
	UpdatePassword(ctx context.Context, id int, passwordHash string) error
}

type sessionStore interface {
	Login(ctx context.Context, userID int) (*auth.LoginSession, error)
	Logout(ctx context.Context, token string) (bool, error)
}

type Service struct {
	repo     usersRepo
	sessions sessionStore
}

func NewService(repo usersRepo, sessions sessionStore) *Service {
	return &Service{
		repo:     repo,
		sessions: sessions,
	}
}

// Register creates the user and logs them in.
func (s *Service) Register(ctx context.Context, params RegisterParams) (_ *User, _ *auth.LoginSession, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.users.register")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	params.Normalize()
	if err := params.Validate(); err != nil {
		return nil, nil, err
	}

	hash, err := pkg.HashPassword(params.Password)
	if err != nil {
		return nil, nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.repo.Add(ctx, params, hash)
	if err != nil {
		return nil, nil, err
	}
	span.SetAttributes(attribute.Int("user.id", user.ID))

	session, err := s.sessions.Login(ctx, user.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("login new user: %w", err)
	}

	log.Debugf("new user registered: %d", user.ID)
	return user, session, nil
}

// Login checks the credentials and opens a new session.
func (s *Service) Login(ctx context.Context, creds Credentials) (_ *User, _ *auth.LoginSession, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.users.login")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	email := normalizeEmail(creds.Email)
	if email == "" || creds.Password == "" {
		return nil, nil, ErrInvalidCredentials
	}

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			log.Tracef("[email] failed login attempt")
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, err
	}
	if !pkg.CheckPasswordHash(creds.Password, user.PasswordHash) {
		log.Tracef("[password] failed login attempt for user: %d", user.ID)
		return nil, nil, ErrInvalidCredentials
	}
	span.SetAttributes(attribute.Int("user.id", user.ID))

	session, err := s.sessions.Login(ctx, user.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("login: %w", err)
	}
	return user, session, nil
}

func (s *Service) Logout(ctx context.Context, token string) (bool, error) {
	return s.sessions.Logout(ctx, token)
}

func (s *Service) Profile(ctx context.Context, userID int) (*User, error) {
	return s.repo.Get(ctx, userID)
}

func (s *Service) UpdateProfile(ctx context.Context, userID int, patch UserPatch) (*User, error) {
	if patch.IsEmpty() {
		return nil, ErrEmptyPatch
	}
	return s.repo.Update(ctx, userID, patch)
}

func (s *Service) ChangePassword(ctx context.Context, userID int, req ChangePasswordRequest) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.users.change_password")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	if err := ValidatePassword(req.NewPassword); err != nil {
		return err
	}

	user, err := s.repo.Get(ctx, userID)
	if err != nil {
		return err
	}
	if !pkg.CheckPasswordHash(req.CurrentPassword, user.PasswordHash) {
		return ErrWrongPassword
	}

	hash, err := pkg.HashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return s.repo.UpdatePassword(ctx, userID, hash)
}
