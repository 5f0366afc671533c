package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/storefront/internal/hash"
	"github.com/example/storefront/internal/models"
	"github.com/example/storefront/internal/transport"
)

func TestUserService_CreateUser_Defaults(t *testing.T) {
	svc := &UserService{Repo: newTestRepo(t)}
	ctx := context.Background()

	user, err := svc.CreateUser(ctx, transport.CreateUserRequest{
		Email:    "alice@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.True(t, user.IsActive)
	assert.False(t, user.IsSuperuser)
	assert.Nil(t, user.FullName)
	assert.NotEqual(t, "supersecret", user.HashedPassword)
	assert.True(t, hash.CheckPassword(user.HashedPassword, "supersecret"))
}

func TestUserService_CreateUser_Validation(t *testing.T) {
	svc := &UserService{Repo: newTestRepo(t)}
	ctx := context.Background()

	tests := []struct {
		name string
		req  transport.CreateUserRequest
	}{
		{name: "empty email", req: transport.CreateUserRequest{Email: "", Password: "supersecret"}},
		{name: "malformed email", req: transport.CreateUserRequest{Email: "not-an-email", Password: "supersecret"}},
		{name: "password too short", req: transport.CreateUserRequest{Email: "a@example.com", Password: "short"}},
		{name: "password too long", req: transport.CreateUserRequest{
			Email:    "a@example.com",
			Password: "0123456789012345678901234567890123456789x",
		}},
		// 6 characters, 12 bytes: the minimum counts characters.
		{name: "multibyte password too short", req: transport.CreateUserRequest{
			Email:    "a@example.com",
			Password: strings.Repeat("ж", 6),
		}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			user, err := svc.CreateUser(ctx, tt.req)
			require.Error(t, err)
			assert.Nil(t, user)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestUserService_CreateUser_MultibytePasswordWithinLimit(t *testing.T) {
	svc := &UserService{Repo: newTestRepo(t)}

	// 40 characters, 80 bytes: the maximum counts characters too.
	user, err := svc.CreateUser(context.Background(), transport.CreateUserRequest{
		Email:    "ulrich@example.com",
		Password: strings.Repeat("ж", 40),
	})
	require.NoError(t, err)
	assert.NotNil(t, user)
}

func TestUserService_CreateUser_DuplicateEmail(t *testing.T) {
	svc := &UserService{Repo: newTestRepo(t)}
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, transport.CreateUserRequest{
		Email:    "bob@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)

	_, err = svc.CreateUser(ctx, transport.CreateUserRequest{
		Email:    "bob@example.com",
		Password: "othersecret",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestUserService_PatchUser_PartialUpdate(t *testing.T) {
	svc := &UserService{Repo: newTestRepo(t)}
	ctx := context.Background()

	user, err := svc.CreateUser(ctx, transport.CreateUserRequest{
		Email:    "carol@example.com",
		Password: "supersecret",
		FullName: strPtr("Carol"),
	})
	require.NoError(t, err)

	// only the name changes, everything else stays
	updated, err := svc.PatchUser(ctx, transport.PatchUserRequest{
		FullName: strPtr("Carol Jones"),
	}, user.ID)
	require.NoError(t, err)

	assert.Equal(t, "carol@example.com", updated.Email)
	assert.Equal(t, "Carol Jones", *updated.FullName)
	assert.Equal(t, user.HashedPassword, updated.HashedPassword)
	assert.True(t, updated.IsActive)

	// an empty patch is a no-op
	same, err := svc.PatchUser(ctx, transport.PatchUserRequest{}, user.ID)
	require.NoError(t, err)
	assert.Equal(t, updated.Email, same.Email)
	assert.Equal(t, *updated.FullName, *same.FullName)
}

func TestUserService_PatchUser_EmailConflict(t *testing.T) {
	svc := &UserService{Repo: newTestRepo(t)}
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, transport.CreateUserRequest{Email: "a@example.com", Password: "supersecret"})
	require.NoError(t, err)
	second, err := svc.CreateUser(ctx, transport.CreateUserRequest{Email: "b@example.com", Password: "supersecret"})
	require.NoError(t, err)

	_, err = svc.PatchUser(ctx, transport.PatchUserRequest{Email: strPtr("a@example.com")}, second.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestUserService_UpdatePassword(t *testing.T) {
	svc := &UserService{Repo: newTestRepo(t)}
	ctx := context.Background()

	user, err := svc.CreateUser(ctx, transport.CreateUserRequest{Email: "d@example.com", Password: "supersecret"})
	require.NoError(t, err)

	err = svc.UpdatePassword(ctx, transport.UpdatePasswordRequest{
		CurrentPassword: "wrongsecret",
		NewPassword:     "newsecret123",
	}, user.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)

	err = svc.UpdatePassword(ctx, transport.UpdatePasswordRequest{
		CurrentPassword: "supersecret",
		NewPassword:     "newsecret123",
	}, user.ID)
	require.NoError(t, err)

	fresh, err := svc.GetUser(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, hash.CheckPassword(fresh.HashedPassword, "newsecret123"))
}

func TestUserService_DeleteUser_Cascades(t *testing.T) {
	rp := newTestRepo(t)
	users := &UserService{Repo: rp}
	items := &ItemService{Repo: rp}
	orders := &OrderService{Repo: rp}
	ctx := context.Background()

	owner, err := users.CreateUser(ctx, transport.CreateUserRequest{Email: "owner@example.com", Password: "supersecret"})
	require.NoError(t, err)
	other, err := users.CreateUser(ctx, transport.CreateUserRequest{Email: "other@example.com", Password: "supersecret"})
	require.NoError(t, err)

	item1, err := items.CreateItem(ctx, transport.CreateItemRequest{Title: "first"}, owner.ID)
	require.NoError(t, err)
	_, err = items.CreateItem(ctx, transport.CreateItemRequest{Title: "second"}, owner.ID)
	require.NoError(t, err)
	keep, err := items.CreateItem(ctx, transport.CreateItemRequest{Title: "keep"}, other.ID)
	require.NoError(t, err)

	order, err := orders.CreateOrder(ctx, transport.CreateOrderRequest{UserID: owner.ID})
	require.NoError(t, err)
	_, err = orders.CreateOrderDetail(ctx, transport.CreateOrderDetailRequest{
		OrderID:  order.ID,
		ItemID:   item1.ID,
		Quantity: 2,
	})
	require.NoError(t, err)

	require.NoError(t, users.DeleteUser(ctx, owner.ID))

	var itemCount, orderCount, detailCount int64
	require.NoError(t, rp.DB.Model(&models.Item{}).Where("owner_id = ?", owner.ID).Count(&itemCount).Error)
	require.NoError(t, rp.DB.Model(&models.Order{}).Where("user_id = ?", owner.ID).Count(&orderCount).Error)
	require.NoError(t, rp.DB.Model(&models.OrderDetail{}).Where("order_id = ?", order.ID).Count(&detailCount).Error)
	assert.Zero(t, itemCount)
	assert.Zero(t, orderCount)
	assert.Zero(t, detailCount)

	// the other user's data survives
	_, err = items.GetItem(ctx, keep.ID)
	require.NoError(t, err)

	err = users.DeleteUser(ctx, owner.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}
