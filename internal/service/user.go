package service

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/example/storefront/internal/hash"
	"github.com/example/storefront/internal/logging"
	"github.com/example/storefront/internal/models"
	"github.com/example/storefront/internal/repo"
	"github.com/example/storefront/internal/transport"
)

type UserService struct {
	Repo *repo.GormRepo
}

func (s *UserService) CreateUser(ctx context.Context, req transport.CreateUserRequest) (*models.User, error) {
	l := logging.FromContext(ctx).With("svc", "user.create")

	if err := validateEmail(req.Email); err != nil {
		return nil, err
	}
	if err := validatePassword(req.Password); err != nil {
		return nil, err
	}
	if req.FullName != nil && utf8.RuneCountInString(*req.FullName) > maxStringLen {
		return nil, fmt.Errorf("%w: full_name longer than %d characters", ErrValidation, maxStringLen)
	}

	pwHash, err := hash.HashPassword(req.Password)
	if err != nil {
		l.Error("create_user_error", "reason", "cannot hash the password", "error", err)
		return nil, err
	}

	user := models.User{
		Email:          req.Email,
		HashedPassword: pwHash,
		IsActive:       true,
		IsSuperuser:    false,
		FullName:       req.FullName,
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}
	if req.IsSuperuser != nil {
		user.IsSuperuser = *req.IsSuperuser
	}

	if err := s.Repo.CreateUser(ctx, &user); err != nil {
		return nil, mapRepoErr(err)
	}

	l.Info("create_user_success", "user_id", user.ID)
	return &user, nil
}

// Register is self sign-up: the caller never chooses flags.
func (s *UserService) Register(ctx context.Context, req transport.RegisterUserRequest) (*models.User, error) {
	return s.CreateUser(ctx, transport.CreateUserRequest{
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
	})
}

func (s *UserService) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := s.Repo.GetUser(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return user, nil
}

func (s *UserService) ListUsers(ctx context.Context, offset, limit int) (int64, []models.User, error) {
	total, users, err := s.Repo.ListUsers(ctx, offset, limit)
	if err != nil {
		return 0, nil, mapRepoErr(err)
	}
	return total, users, nil
}

func (s *UserService) PatchUser(ctx context.Context, req transport.PatchUserRequest, id uuid.UUID) (*models.User, error) {
	if req.Email != nil {
		if err := validateEmail(*req.Email); err != nil {
			return nil, err
		}
	}
	if req.FullName != nil && utf8.RuneCountInString(*req.FullName) > maxStringLen {
		return nil, fmt.Errorf("%w: full_name longer than %d characters", ErrValidation, maxStringLen)
	}

	var pwHash *string
	if req.Password != nil {
		if err := validatePassword(*req.Password); err != nil {
			return nil, err
		}
		h, err := hash.HashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		pwHash = &h
	}

	user, err := s.Repo.PatchUser(ctx, req, pwHash, id)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return user, nil
}

func (s *UserService) PatchMe(ctx context.Context, req transport.PatchMeRequest, id uuid.UUID) (*models.User, error) {
	return s.PatchUser(ctx, transport.PatchUserRequest{
		Email:    req.Email,
		FullName: req.FullName,
	}, id)
}

// UpdatePassword verifies the current password before storing the new
// hash.
func (s *UserService) UpdatePassword(ctx context.Context, req transport.UpdatePasswordRequest, id uuid.UUID) error {
	if err := validatePassword(req.NewPassword); err != nil {
		return err
	}

	user, err := s.Repo.GetUser(ctx, id)
	if err != nil {
		return mapRepoErr(err)
	}
	if !hash.CheckPassword(user.HashedPassword, req.CurrentPassword) {
		return fmt.Errorf("%w: current password does not match", ErrValidation)
	}

	pw := req.NewPassword
	_, err = s.PatchUser(ctx, transport.PatchUserRequest{Password: &pw}, id)
	return err
}

func (s *UserService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	l := logging.FromContext(ctx).With("svc", "user.delete")

	if err := s.Repo.DeleteUser(ctx, id); err != nil {
		return mapRepoErr(err)
	}

	l.Info("delete_user_success", "user_id", id)
	return nil
}
