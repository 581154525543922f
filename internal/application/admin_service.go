package application

import (
	"context"
	"fmt"

	"github.com/oksasatya/go-newsroom/internal/domain/entity"
	repo "github.com/oksasatya/go-newsroom/internal/domain/repository"
	"github.com/oksasatya/go-newsroom/pkg/helpers"
)

// Fixture accounts created by Seed. Demo data only.
var SeedAccounts = []struct {
	Name     string
	Email    string
	Password string
	Role     entity.Role
}{
	{Name: "Site Admin", Email: "admin@example.com", Password: "adminpass", Role: entity.RoleAdmin},
	{Name: "Jane Reporter", Email: "reporter@example.com", Password: "password123", Role: entity.RoleReporter},
}

// AdminService holds store-wide operations. Role checks are the caller's job.
type AdminService struct {
	Store    repo.StoreRepository
	Identity *IdentityService
	Clock    helpers.Clock
}

func NewAdminService(store repo.StoreRepository, identity *IdentityService, clock helpers.Clock) *AdminService {
	if clock == nil {
		clock = helpers.RealClock{}
	}
	return &AdminService{Store: store, Identity: identity, Clock: clock}
}

// ResetAll wipes every user and news item.
func (s *AdminService) ResetAll(ctx context.Context) error {
	if err := s.Store.Save(ctx, entity.NewStore()); err != nil {
		return fmt.Errorf("reset store: %w", err)
	}
	return nil
}

// Seed resets the store and creates the SeedAccounts.
func (s *AdminService) Seed(ctx context.Context) ([]entity.User, error) {
	if err := s.ResetAll(ctx); err != nil {
		return nil, err
	}
	data := entity.NewStore()
	now := s.Clock.NowUTC()
	for _, a := range SeedAccounts {
		hash, err := s.Identity.HashPassword(a.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		data.Users = append(data.Users, newUser(a.Name, a.Email, hash, a.Role, now))
	}
	if err := s.Store.Save(ctx, data); err != nil {
		return nil, fmt.Errorf("save store: %w", err)
	}
	return data.Users, nil
}

// StoreStatus loads the store once and reports how it went.
func (s *AdminService) StoreStatus(ctx context.Context) (repo.Snapshot, error) {
	return s.Store.Load(ctx)
}
