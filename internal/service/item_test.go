package service

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/storefront/internal/transport"
)

func newItemEnv(t *testing.T) (*ItemService, uuid.UUID) {
	t.Helper()

	rp := newTestRepo(t)
	users := &UserService{Repo: rp}
	owner, err := users.CreateUser(context.Background(), transport.CreateUserRequest{
		Email:    "owner@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)

	return &ItemService{Repo: rp}, owner.ID
}

func TestItemService_CreateItem_Validation(t *testing.T) {
	svc, ownerID := newItemEnv(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		title string
		desc  *string
	}{
		{name: "empty title", title: ""},
		{name: "title too long", title: strings.Repeat("x", 256)},
		{name: "multibyte title too long", title: strings.Repeat("я", 256)},
		{name: "description too long", title: "ok", desc: strPtr(strings.Repeat("x", 256))},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateItem(ctx, transport.CreateItemRequest{
				Title:       tt.title,
				Description: tt.desc,
			}, ownerID)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}

	item, err := svc.CreateItem(ctx, transport.CreateItemRequest{Title: "x"}, ownerID)
	require.NoError(t, err)
	assert.Equal(t, "x", item.Title)
	assert.Equal(t, ownerID, item.OwnerID)
}

// Length limits count characters, so a multibyte title within the
// bound must pass even though its byte length exceeds it.
func TestItemService_CreateItem_MultibyteTitleWithinLimit(t *testing.T) {
	svc, ownerID := newItemEnv(t)

	title := strings.Repeat("я", 200)
	item, err := svc.CreateItem(context.Background(), transport.CreateItemRequest{Title: title}, ownerID)
	require.NoError(t, err)
	assert.Equal(t, title, item.Title)
}

func TestItemService_CreateItem_DanglingOwner(t *testing.T) {
	svc, _ := newItemEnv(t)

	_, err := svc.CreateItem(context.Background(), transport.CreateItemRequest{
		Title: "orphan",
	}, uuid.New())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrReference)
}

func TestItemService_PatchItem_PartialUpdate(t *testing.T) {
	svc, ownerID := newItemEnv(t)
	ctx := context.Background()

	item, err := svc.CreateItem(ctx, transport.CreateItemRequest{
		Title:       "lamp",
		Description: strPtr("a desk lamp"),
	}, ownerID)
	require.NoError(t, err)

	updated, err := svc.PatchItem(ctx, transport.PatchItemRequest{Title: strPtr("lantern")}, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "lantern", updated.Title)
	require.NotNil(t, updated.Description)
	assert.Equal(t, "a desk lamp", *updated.Description)

	_, err = svc.PatchItem(ctx, transport.PatchItemRequest{Title: strPtr("")}, item.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestItemService_GetItem_NotFound(t *testing.T) {
	svc, _ := newItemEnv(t)

	_, err := svc.GetItem(context.Background(), uuid.New())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestItemService_ListItems_ScopedToOwner(t *testing.T) {
	rp := newTestRepo(t)
	users := &UserService{Repo: rp}
	svc := &ItemService{Repo: rp}
	ctx := context.Background()

	a, err := users.CreateUser(ctx, transport.CreateUserRequest{Email: "a@example.com", Password: "supersecret"})
	require.NoError(t, err)
	b, err := users.CreateUser(ctx, transport.CreateUserRequest{Email: "b@example.com", Password: "supersecret"})
	require.NoError(t, err)

	for _, title := range []string{"one", "two", "three"} {
		_, err := svc.CreateItem(ctx, transport.CreateItemRequest{Title: title}, a.ID)
		require.NoError(t, err)
	}
	_, err = svc.CreateItem(ctx, transport.CreateItemRequest{Title: "only"}, b.ID)
	require.NoError(t, err)

	total, items, err := svc.ListItems(ctx, &a.ID, 0, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Len(t, items, 3)

	total, items, err = svc.ListItems(ctx, nil, 0, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 4, total)
	assert.Len(t, items, 2)
}
