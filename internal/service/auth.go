package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/storefront/internal/hash"
	"github.com/example/storefront/internal/logging"
	"github.com/example/storefront/internal/repo"
	"github.com/example/storefront/internal/tokens"
	"github.com/example/storefront/internal/transport"
)

type AuthService struct {
	Repo      *repo.GormRepo
	Users     *UserService
	JWTSecret []byte
	AccessTTL time.Duration
	ResetTTL  time.Duration
}

func (s *AuthService) accessTTL() time.Duration {
	if s.AccessTTL > 0 {
		return s.AccessTTL
	}
	return 15 * time.Minute
}

func (s *AuthService) resetTTL() time.Duration {
	if s.ResetTTL > 0 {
		return s.ResetTTL
	}
	return time.Hour
}

func (s *AuthService) Login(ctx context.Context, req transport.LoginRequest) (*transport.Token, error) {
	l := logging.FromContext(ctx).With("svc", "auth.login", "email", req.Email)

	user, err := s.Repo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("login_failed", "reason", "unknown email")
			return nil, fmt.Errorf("%w: invalid email or password", ErrValidation)
		}
		return nil, err
	}
	if !hash.CheckPassword(user.HashedPassword, req.Password) {
		l.Warn("login_failed", "reason", "password mismatch")
		return nil, fmt.Errorf("%w: invalid email or password", ErrValidation)
	}
	if !user.IsActive {
		l.Warn("login_failed", "reason", "inactive user")
		return nil, fmt.Errorf("%w: inactive user", ErrValidation)
	}

	exp := time.Now().Add(s.accessTTL())
	access, err := tokens.NewAccessToken(s.JWTSecret, user.ID.String(), user.IsSuperuser, exp)
	if err != nil {
		l.Error("login_failed", "reason", "cannot sign token", "error", err)
		return nil, err
	}

	l.Info("login_success", "user_id", user.ID)
	return &transport.Token{AccessToken: access, TokenType: "bearer"}, nil
}

// RecoverPassword issues a reset token for the account behind email.
// The token travels out of band; the API only acknowledges.
func (s *AuthService) RecoverPassword(ctx context.Context, email string) (string, error) {
	user, err := s.Repo.GetUserByEmail(ctx, email)
	if err != nil {
		return "", mapRepoErr(err)
	}

	exp := time.Now().Add(s.resetTTL())
	return tokens.NewResetToken(s.JWTSecret, user.ID.String(), exp)
}

func (s *AuthService) ResetPassword(ctx context.Context, req transport.NewPassword) error {
	sub, err := tokens.ResetSubjectFromToken(req.Token, s.JWTSecret)
	if err != nil {
		return fmt.Errorf("%w: invalid reset token", ErrValidation)
	}
	userID, err := uuid.Parse(sub)
	if err != nil {
		return fmt.Errorf("%w: invalid reset token", ErrValidation)
	}

	pw := req.NewPassword
	_, err = s.Users.PatchUser(ctx, transport.PatchUserRequest{Password: &pw}, userID)
	return err
}
