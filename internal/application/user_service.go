package application

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/oksasatya/go-newsroom/internal/domain/entity"
	repo "github.com/oksasatya/go-newsroom/internal/domain/repository"
	"github.com/oksasatya/go-newsroom/pkg/helpers"
)

// UserService registers accounts and logs them in.
type UserService struct {
	Store    repo.StoreRepository
	Identity *IdentityService
	Clock    helpers.Clock
}

func NewUserService(store repo.StoreRepository, identity *IdentityService, clock helpers.Clock) *UserService {
	if clock == nil {
		clock = helpers.RealClock{}
	}
	return &UserService{Store: store, Identity: identity, Clock: clock}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	// Role is honored only when set by a trusted caller; empty means reporter.
	Role entity.Role
}

// AuthResult is what a successful register or login hands back.
type AuthResult struct {
	Token     string
	ExpiresAt time.Time
	User      *entity.User
}

// NormalizeEmail trims and lower-cases an address so lookups are exact matches.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *UserService) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	role := in.Role
	if role == "" {
		role = entity.RoleReporter
	}
	if !role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidInput, role)
	}
	email := NormalizeEmail(in.Email)

	// Hash before loading so the load-save window stays short.
	hash, err := s.Identity.HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	snap, err := s.Store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load store: %w", err)
	}
	if _, exists := snap.Data.FindUserByEmail(email); exists {
		return nil, ErrConflict
	}

	u := newUser(strings.TrimSpace(in.Name), email, hash, role, s.Clock.NowUTC())
	snap.Data.Users = append(snap.Data.Users, u)
	if err := s.Store.Save(ctx, snap.Data); err != nil {
		return nil, fmt.Errorf("save store: %w", err)
	}
	return s.authResult(&u)
}

// Login checks credentials. Unknown email and wrong password both yield
// ErrInvalidCredentials.
func (s *UserService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	snap, err := s.Store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load store: %w", err)
	}
	u, ok := snap.Data.FindUserByEmail(NormalizeEmail(email))
	if !ok {
		return nil, ErrInvalidCredentials
	}
	if !s.Identity.VerifyPassword(password, u.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	return s.authResult(u)
}

func (s *UserService) GetUser(ctx context.Context, id string) (*entity.User, error) {
	snap, err := s.Store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load store: %w", err)
	}
	u, ok := snap.Data.FindUserByID(id)
	if !ok {
		return nil, fmt.Errorf("user %s: %w", id, ErrNotFound)
	}
	out := *u
	return &out, nil
}

// ListUsers returns every account, password hashes included; callers strip them.
func (s *UserService) ListUsers(ctx context.Context) ([]entity.User, error) {
	snap, err := s.Store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load store: %w", err)
	}
	return snap.Data.Users, nil
}

func (s *UserService) authResult(u *entity.User) (*AuthResult, error) {
	token, exp, err := s.Identity.IssueToken(ClaimsFor(u))
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	out := *u
	return &AuthResult{Token: token, ExpiresAt: exp, User: &out}, nil
}

func newUser(name, email, hash string, role entity.Role, now time.Time) entity.User {
	return entity.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
