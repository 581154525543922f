package application_test

import (
	"context"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/oksasatya/go-newsroom/internal/application"
	"github.com/oksasatya/go-newsroom/internal/domain/entity"
	"github.com/oksasatya/go-newsroom/internal/infrastructure/flatstore"
	"github.com/oksasatya/go-newsroom/pkg/helpers"
)

const testSecret = "test-secret-key-for-unit-tests"

type testEnv struct {
	backend  *flatstore.MemoryBackend
	store    *flatstore.Store
	clock    *helpers.StubClock
	identity *application.IdentityService
	users    *application.UserService
	news     *application.NewsService
	admin    *application.AdminService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	backend := flatstore.NewMemoryBackend()
	store := flatstore.New(backend)
	clock := helpers.NewStubClock(time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC))
	identity := application.NewIdentityService(
		helpers.NewJWTManager(testSecret, 7*24*time.Hour, clock),
		bcrypt.MinCost,
		"auth-token",
	)
	return &testEnv{
		backend:  backend,
		store:    store,
		clock:    clock,
		identity: identity,
		users:    application.NewUserService(store, identity, clock),
		news:     application.NewNewsService(store, clock, nil),
		admin:    application.NewAdminService(store, identity, clock),
	}
}

func (e *testEnv) register(t *testing.T) *entity.User {
	t.Helper()
	res, err := e.users.Register(context.Background(), application.RegisterInput{
		Name:     gofakeit.Name(),
		Email:    gofakeit.Email(),
		Password: gofakeit.Password(true, true, true, false, false, 12),
	})
	require.NoError(t, err)
	return res.User
}

func (e *testEnv) createNews(t *testing.T, author *entity.User, category entity.Category) *entity.NewsItem {
	t.Helper()
	n, err := e.news.CreateNews(context.Background(), application.NewsInput{
		Title:    gofakeit.Sentence(5),
		Body:     gofakeit.Paragraph(1, 2, 12, " "),
		Category: category,
	}, author.ID, author.Name)
	require.NoError(t, err)
	return n
}
