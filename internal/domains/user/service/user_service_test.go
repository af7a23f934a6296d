package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"filmorate-backend/internal/domains/user/model"
	"filmorate-backend/internal/domains/user/repository"
	"filmorate-backend/pkg/apperr"
)

func newService() ServiceInterface {
	return NewUserService(repository.NewMemoryRepository())
}

func createUser(t *testing.T, svc ServiceInterface, login string) *model.User {
	t.Helper()
	created, err := svc.Create(context.Background(), model.User{
		Email: login + "@example.com",
		Login: login,
		Name:  login,
	})
	require.NoError(t, err)
	return created
}

func TestCreateDefaultsBlankNameToLogin(t *testing.T) {
	svc := newService()

	created, err := svc.Create(context.Background(), model.User{
		Email: "common@friend.ru",
		Login: "common",
		Name:  "   ",
	})
	require.NoError(t, err)

	assert.Equal(t, "common", created.Name)
}

func TestCreateKeepsExplicitName(t *testing.T) {
	svc := newService()

	created, err := svc.Create(context.Background(), model.User{
		Email: "mouse@yandex.ru",
		Login: "mouse",
		Name:  "Nick Name",
	})
	require.NoError(t, err)

	assert.Equal(t, "Nick Name", created.Name)
}

func TestUpdateDefaultsBlankNameToLogin(t *testing.T) {
	svc := newService()
	created := createUser(t, svc, "mouse")

	created.Name = ""
	updated, err := svc.Update(context.Background(), *created)
	require.NoError(t, err)

	assert.Equal(t, "mouse", updated.Name)
}

func TestUpdateMissingUser(t *testing.T) {
	svc := newService()

	_, err := svc.Update(context.Background(), model.User{ID: 9999, Email: "a@b.c", Login: "a"})

	assert.True(t, apperr.IsNotFound(err))
}

func TestAddFriendSelf(t *testing.T) {
	svc := newService()
	alice := createUser(t, svc, "alice")

	err := svc.AddFriend(context.Background(), alice.ID, alice.ID)

	assert.True(t, apperr.IsValidation(err))
}

func TestAddFriendMissingFriend(t *testing.T) {
	svc := newService()
	alice := createUser(t, svc, "alice")

	err := svc.AddFriend(context.Background(), alice.ID, 4444)

	assert.True(t, apperr.IsNotFound(err))
	assert.EqualError(t, err, "user with id=4444 not found")
}

func TestAddFriendMissingUser(t *testing.T) {
	svc := newService()
	alice := createUser(t, svc, "alice")

	err := svc.AddFriend(context.Background(), 4444, alice.ID)

	assert.True(t, apperr.IsNotFound(err))
}

func TestAddFriendOneWay(t *testing.T) {
	ctx := context.Background()
	svc := newService()
	alice := createUser(t, svc, "alice")
	bob := createUser(t, svc, "bob")

	require.NoError(t, svc.AddFriend(ctx, alice.ID, bob.ID))

	aliceFriends, err := svc.GetFriends(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, aliceFriends, 1)
	assert.Equal(t, bob.ID, aliceFriends[0].ID)

	bobFriends, err := svc.GetFriends(ctx, bob.ID)
	require.NoError(t, err)
	assert.Empty(t, bobFriends)
}

func TestRemoveFriendMissingUser(t *testing.T) {
	svc := newService()
	alice := createUser(t, svc, "alice")

	err := svc.RemoveFriend(context.Background(), alice.ID, 4444)

	assert.True(t, apperr.IsNotFound(err))
}

func TestGetFriendsMissingUser(t *testing.T) {
	svc := newService()

	_, err := svc.GetFriends(context.Background(), 4444)

	assert.True(t, apperr.IsNotFound(err))
}

func TestGetCommonFriends(t *testing.T) {
	ctx := context.Background()
	svc := newService()
	alice := createUser(t, svc, "alice")
	bob := createUser(t, svc, "bob")
	carol := createUser(t, svc, "carol")

	require.NoError(t, svc.AddFriend(ctx, alice.ID, carol.ID))
	require.NoError(t, svc.AddFriend(ctx, bob.ID, carol.ID))

	common, err := svc.GetCommonFriends(ctx, alice.ID, bob.ID)
	require.NoError(t, err)

	require.Len(t, common, 1)
	assert.Equal(t, carol.ID, common[0].ID)
}

func TestGetCommonFriendsMissingOther(t *testing.T) {
	svc := newService()
	alice := createUser(t, svc, "alice")

	_, err := svc.GetCommonFriends(context.Background(), alice.ID, 4444)

	assert.True(t, apperr.IsNotFound(err))
}

func TestDeleteThenGet(t *testing.T) {
	ctx := context.Background()
	svc := newService()
	alice := createUser(t, svc, "alice")

	require.NoError(t, svc.Delete(ctx, alice.ID))

	_, err := svc.GetByID(ctx, alice.ID)
	assert.True(t, apperr.IsNotFound(err))
}
