package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arvandy/contacts-backend/internal/apperr"
	"github.com/arvandy/contacts-backend/internal/types"
)

func kindOf(t *testing.T, err error) apperr.Kind {
	t.Helper()
	var ae *apperr.Error
	require.True(t, errors.As(err, &ae), "expected *apperr.Error, got %v", err)
	return ae.Kind
}

func TestRegister(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()

	resp, err := env.users.Register(ctx, types.RegisterUserRequest{
		Username: "testuser",
		Password: "testpassword123",
		Name:     "Test User",
	})
	require.NoError(t, err)
	assert.Equal(t, "testuser", resp.Username)
	assert.Equal(t, "Test User", resp.Name)
	assert.Empty(t, resp.Token, "registration must not hand out a token")
}

func TestRegisterDuplicateUsername(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()

	req := types.RegisterUserRequest{
		Username: "testuser",
		Password: "testpassword123",
		Name:     "Test User",
	}
	_, err := env.users.Register(ctx, req)
	require.NoError(t, err)

	_, err = env.users.Register(ctx, req)
	require.Error(t, err)
	assert.Equal(t, apperr.KindConflict, kindOf(t, err))
}

func TestRegisterStoresHashedPassword(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()

	_, err := env.users.Register(ctx, types.RegisterUserRequest{
		Username: "testuser",
		Password: "testpassword123",
		Name:     "Test User",
	})
	require.NoError(t, err)

	var user types.User
	require.NoError(t, env.db.Where("username = ?", "testuser").First(&user).Error)
	assert.NotEqual(t, "testpassword123", user.Password)
	assert.Nil(t, user.Token)
}

func TestLogin(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()

	_, err := env.users.Register(ctx, types.RegisterUserRequest{
		Username: "testuser",
		Password: "testpassword123",
		Name:     "Test User",
	})
	require.NoError(t, err)

	t.Run("unknown_user", func(t *testing.T) {
		_, err := env.users.Login(ctx, types.LoginUserRequest{Username: "nobody", Password: "testpassword123"})
		require.Error(t, err)
		assert.Equal(t, apperr.KindUnauthorized, kindOf(t, err))
	})

	t.Run("wrong_password", func(t *testing.T) {
		_, err := env.users.Login(ctx, types.LoginUserRequest{Username: "testuser", Password: "wrongpassword"})
		require.Error(t, err)
		assert.Equal(t, apperr.KindUnauthorized, kindOf(t, err))
	})

	t.Run("success_issues_token", func(t *testing.T) {
		resp, err := env.users.Login(ctx, types.LoginUserRequest{Username: "testuser", Password: "testpassword123"})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.Token)

		user, err := env.users.Authenticate(ctx, resp.Token)
		require.NoError(t, err)
		assert.Equal(t, "testuser", user.Username)
	})
}

func TestLoginReplacesPreviousSession(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()

	_, err := env.users.Register(ctx, types.RegisterUserRequest{
		Username: "testuser",
		Password: "testpassword123",
		Name:     "Test User",
	})
	require.NoError(t, err)

	first, err := env.users.Login(ctx, types.LoginUserRequest{Username: "testuser", Password: "testpassword123"})
	require.NoError(t, err)
	second, err := env.users.Login(ctx, types.LoginUserRequest{Username: "testuser", Password: "testpassword123"})
	require.NoError(t, err)
	assert.NotEqual(t, first.Token, second.Token)

	// The first device's token is dead: one live session per user.
	_, err = env.users.Authenticate(ctx, first.Token)
	require.Error(t, err)
	assert.Equal(t, apperr.KindUnauthorized, kindOf(t, err))

	_, err = env.users.Authenticate(ctx, second.Token)
	require.NoError(t, err)
}

func TestAuthenticateEmptyToken(t *testing.T) {
	env := setupServices(t)

	_, err := env.users.Authenticate(context.Background(), "")
	require.Error(t, err)
	assert.Equal(t, apperr.KindUnauthorized, kindOf(t, err))
}

func TestUpdatePasswordInvalidatesOldOne(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()
	user := env.registerAndLogin(t, "testuser")

	_, err := env.users.Update(ctx, user, types.UpdateUserRequest{
		Password: strPtr("newpassword456"),
	})
	require.NoError(t, err)

	_, err = env.users.Login(ctx, types.LoginUserRequest{Username: "testuser", Password: "testpassword123"})
	require.Error(t, err)
	assert.Equal(t, apperr.KindUnauthorized, kindOf(t, err))

	resp, err := env.users.Login(ctx, types.LoginUserRequest{Username: "testuser", Password: "newpassword456"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
}

func TestUpdateNameOnly(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()
	user := env.registerAndLogin(t, "testuser")

	resp, err := env.users.Update(ctx, user, types.UpdateUserRequest{
		Name: strPtr("Renamed User"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Renamed User", resp.Name)

	// Password untouched.
	_, err = env.users.Login(ctx, types.LoginUserRequest{Username: "testuser", Password: "testpassword123"})
	require.NoError(t, err)
}

func TestLogoutInvalidatesToken(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()

	_, err := env.users.Register(ctx, types.RegisterUserRequest{
		Username: "testuser",
		Password: "testpassword123",
		Name:     "Test User",
	})
	require.NoError(t, err)
	login, err := env.users.Login(ctx, types.LoginUserRequest{Username: "testuser", Password: "testpassword123"})
	require.NoError(t, err)

	user, err := env.users.Authenticate(ctx, login.Token)
	require.NoError(t, err)
	require.NoError(t, env.users.Logout(ctx, user))

	_, err = env.users.Authenticate(ctx, login.Token)
	require.Error(t, err)
	assert.Equal(t, apperr.KindUnauthorized, kindOf(t, err))
}
