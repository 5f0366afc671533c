package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/storefront/internal/hash"
	"github.com/example/storefront/internal/transport"
)

func newAuthEnv(t *testing.T) (*AuthService, *UserService) {
	t.Helper()

	rp := newTestRepo(t)
	users := &UserService{Repo: rp}
	auth := &AuthService{
		Repo:      rp,
		Users:     users,
		JWTSecret: []byte("test-jwt-secret"),
	}
	return auth, users
}

func TestAuthService_Login(t *testing.T) {
	auth, users := newAuthEnv(t)
	ctx := context.Background()

	_, err := users.CreateUser(ctx, transport.CreateUserRequest{
		Email:    "dave@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)

	token, err := auth.Login(ctx, transport.LoginRequest{
		Email:    "dave@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, token.AccessToken)
	assert.Equal(t, "bearer", token.TokenType)
}

func TestAuthService_Login_Failures(t *testing.T) {
	auth, users := newAuthEnv(t)
	ctx := context.Background()

	inactive := false
	_, err := users.CreateUser(ctx, transport.CreateUserRequest{
		Email:    "gone@example.com",
		Password: "supersecret",
		IsActive: &inactive,
	})
	require.NoError(t, err)

	tests := []struct {
		name string
		req  transport.LoginRequest
	}{
		{name: "unknown email", req: transport.LoginRequest{Email: "nobody@example.com", Password: "supersecret"}},
		{name: "wrong password", req: transport.LoginRequest{Email: "gone@example.com", Password: "wrong-secret"}},
		{name: "inactive user", req: transport.LoginRequest{Email: "gone@example.com", Password: "supersecret"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			token, err := auth.Login(ctx, tt.req)
			require.Error(t, err)
			assert.Nil(t, token)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestAuthService_ResetPassword(t *testing.T) {
	auth, users := newAuthEnv(t)
	ctx := context.Background()

	user, err := users.CreateUser(ctx, transport.CreateUserRequest{
		Email:    "eve@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)

	resetToken, err := auth.RecoverPassword(ctx, "eve@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, resetToken)

	err = auth.ResetPassword(ctx, transport.NewPassword{
		Token:       resetToken,
		NewPassword: "freshsecret",
	})
	require.NoError(t, err)

	fresh, err := users.GetUser(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, hash.CheckPassword(fresh.HashedPassword, "freshsecret"))

	// an access token must never pass as a reset token
	login, err := auth.Login(ctx, transport.LoginRequest{Email: "eve@example.com", Password: "freshsecret"})
	require.NoError(t, err)
	err = auth.ResetPassword(ctx, transport.NewPassword{
		Token:       login.AccessToken,
		NewPassword: "stolensecret",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
}
