package application_test

import (
	"context"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-newsroom/internal/application"
	"github.com/oksasatya/go-newsroom/internal/domain/entity"
)

func TestRegisterThenLogin(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	name, email, password := gofakeit.Name(), gofakeit.Email(), "password123"

	reg, err := env.users.Register(ctx, application.RegisterInput{Name: name, Email: email, Password: password})
	require.NoError(t, err)
	require.NotEmpty(t, reg.User.ID)
	require.Equal(t, entity.RoleReporter, reg.User.Role)
	require.Equal(t, application.NormalizeEmail(email), reg.User.Email)
	require.NotEqual(t, password, reg.User.PasswordHash)
	require.Equal(t, env.clock.NowUTC(), reg.User.CreatedAt)
	require.Equal(t, reg.User.CreatedAt, reg.User.UpdatedAt)

	login, err := env.users.Login(ctx, email, password)
	require.NoError(t, err)
	require.Equal(t, reg.User.ID, login.User.ID)

	claims, err := env.identity.VerifyToken(login.Token)
	require.NoError(t, err)
	require.Equal(t, application.Claims{
		UserID: reg.User.ID,
		Email:  reg.User.Email,
		Name:   name,
		Role:   entity.RoleReporter,
	}, *claims)
}

func TestRegisterNormalizesEmail(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.users.Register(ctx, application.RegisterInput{Name: "Ada", Email: "  Ada@Example.COM ", Password: "password123"})
	require.NoError(t, err)

	_, err = env.users.Login(ctx, "ada@example.com", "password123")
	require.NoError(t, err)
}

func TestRegisterExplicitRole(t *testing.T) {
	env := newTestEnv(t)

	res, err := env.users.Register(context.Background(), application.RegisterInput{
		Name: "Boss", Email: gofakeit.Email(), Password: "password123", Role: entity.RoleAdmin,
	})
	require.NoError(t, err)
	require.Equal(t, entity.RoleAdmin, res.User.Role)

	_, err = env.users.Register(context.Background(), application.RegisterInput{
		Name: "Odd", Email: gofakeit.Email(), Password: "password123", Role: "editor",
	})
	require.ErrorIs(t, err, application.ErrInvalidInput)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	email := gofakeit.Email()

	_, err := env.users.Register(ctx, application.RegisterInput{Name: "One", Email: email, Password: "password123"})
	require.NoError(t, err)

	_, err = env.users.Register(ctx, application.RegisterInput{Name: "Two", Email: email, Password: "password456"})
	require.ErrorIs(t, err, application.ErrConflict)

	users, err := env.users.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	require.Equal(t, "One", users[0].Name)
}

func TestLoginInvalidCredentials(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	email := gofakeit.Email()
	_, err := env.users.Register(ctx, application.RegisterInput{Name: "Ada", Email: email, Password: "password123"})
	require.NoError(t, err)

	_, wrongPassword := env.users.Login(ctx, email, "nope-nope")
	_, unknownEmail := env.users.Login(ctx, "ghost@example.com", "password123")

	require.ErrorIs(t, wrongPassword, application.ErrInvalidCredentials)
	require.ErrorIs(t, unknownEmail, application.ErrInvalidCredentials)
	require.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}

func TestGetUser(t *testing.T) {
	env := newTestEnv(t)
	u := env.register(t)

	got, err := env.users.GetUser(context.Background(), u.ID)
	require.NoError(t, err)
	require.Equal(t, u, got)

	_, err = env.users.GetUser(context.Background(), "missing")
	require.ErrorIs(t, err, application.ErrNotFound)
}
