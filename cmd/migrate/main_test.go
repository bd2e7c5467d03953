package main

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"kanban/internal/app/config"
	"kanban/internal/app/password"
	"kanban/internal/app/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) *repository.Repository {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	repo, err := repository.New(config.DriverSQLite, fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func TestSeedAdminCreatesUser(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	require.NoError(t, seedAdmin(ctx, repo, "root@example.com", "rootpass"))

	admin, err := repo.GetUserByEmail(ctx, "root@example.com")
	require.NoError(t, err)
	assert.True(t, admin.IsAdmin)
	assert.True(t, password.Compare(admin.Password, "rootpass"))
}

func TestSeedAdminPromotesExisting(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)
	user, err := repo.CreateUser(ctx, "alice@example.com", "hash", false)
	require.NoError(t, err)

	require.NoError(t, seedAdmin(ctx, repo, "alice@example.com", ""))

	promoted, err := repo.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, promoted.IsAdmin)
	assert.Equal(t, "hash", promoted.Password)
}

func TestSeedAdminSkipsAndValidates(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	assert.NoError(t, seedAdmin(ctx, repo, "", ""))
	assert.Error(t, seedAdmin(ctx, repo, "root@example.com", "123"))

	users, err := repo.GetAllUsers(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)
}
