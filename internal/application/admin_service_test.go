package application_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-newsroom/internal/application"
	"github.com/oksasatya/go-newsroom/internal/domain/entity"
	"github.com/oksasatya/go-newsroom/internal/domain/repository"
)

func TestResetAll(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	author := env.register(t)
	env.createNews(t, author, entity.CategoryGeneral)

	require.NoError(t, env.admin.ResetAll(ctx))

	users, err := env.users.ListUsers(ctx)
	require.NoError(t, err)
	require.Empty(t, users)
	news, err := env.news.ListNews(ctx, "")
	require.NoError(t, err)
	require.Empty(t, news)
}

func TestSeedCreatesFixtureAccounts(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.register(t)

	users, err := env.admin.Seed(ctx)
	require.NoError(t, err)
	require.Len(t, users, len(application.SeedAccounts))

	stored, err := env.users.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, stored, len(application.SeedAccounts))

	admin, err := env.users.Login(ctx, "admin@example.com", "adminpass")
	require.NoError(t, err)
	require.Equal(t, entity.RoleAdmin, admin.User.Role)

	reporter, err := env.users.Login(ctx, "reporter@example.com", "password123")
	require.NoError(t, err)
	require.Equal(t, entity.RoleReporter, reporter.User.Role)
}

func TestStoreStatusReportsCorruption(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	snap, err := env.admin.StoreStatus(ctx)
	require.NoError(t, err)
	require.Equal(t, repository.LoadMissing, snap.Status)

	require.NoError(t, env.backend.Write(ctx, []byte("{not json")))
	snap, err = env.admin.StoreStatus(ctx)
	require.NoError(t, err)
	require.Equal(t, repository.LoadCorrupt, snap.Status)
	require.True(t, snap.Degraded())

	// Registration on top of a corrupt document silently starts over.
	env.register(t)
	snap, err = env.admin.StoreStatus(ctx)
	require.NoError(t, err)
	require.Equal(t, repository.LoadOK, snap.Status)
	require.Len(t, snap.Data.Users, 1)
}
