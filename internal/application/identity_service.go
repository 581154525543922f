package application

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/oksasatya/go-newsroom/internal/domain/entity"
	"github.com/oksasatya/go-newsroom/pkg/helpers"
)

// Claims identify the caller. They are carried in the signed token, so every request
// can be authenticated without reading the store.
type Claims struct {
	UserID string      `json:"userId"`
	Email  string      `json:"email"`
	Name   string      `json:"name"`
	Role   entity.Role `json:"role"`
}

// IsAdmin reports whether the claims carry the admin role.
func (c *Claims) IsAdmin() bool {
	return c != nil && c.Role == entity.RoleAdmin
}

// ClaimsFor builds the token claims for u.
func ClaimsFor(u *entity.User) Claims {
	return Claims{UserID: u.ID, Email: u.Email, Name: u.Name, Role: u.Role}
}

// IdentityService hashes passwords and issues and checks identity tokens.
type IdentityService struct {
	jwt        *helpers.JWTManager
	passwords  helpers.PasswordHasher
	cookieName string
}

func NewIdentityService(jwt *helpers.JWTManager, bcryptCost int, cookieName string) *IdentityService {
	return &IdentityService{jwt: jwt, passwords: helpers.NewPasswordHasher(bcryptCost), cookieName: cookieName}
}

func (s *IdentityService) CookieName() string { return s.cookieName }

func (s *IdentityService) HashPassword(plain string) (string, error) {
	hash, err := s.passwords.Hash(plain)
	if errors.Is(err, helpers.ErrPasswordTooLong) {
		return "", fmt.Errorf("%w: password must be at most 72 bytes", ErrInvalidInput)
	}
	return hash, err
}

func (s *IdentityService) VerifyPassword(plain, hash string) bool {
	return s.passwords.Verify(hash, plain)
}

// IssueToken signs c and returns the token with its expiry.
func (s *IdentityService) IssueToken(c Claims) (string, time.Time, error) {
	return s.jwt.Generate(helpers.Claims{
		UserID: c.UserID,
		Email:  c.Email,
		Name:   c.Name,
		Role:   string(c.Role),
	})
}

// VerifyToken returns the claims a token was issued with, or ErrInvalidToken.
func (s *IdentityService) VerifyToken(token string) (*Claims, error) {
	parsed, err := s.jwt.Parse(token)
	if err != nil {
		return nil, ErrInvalidToken
	}
	return &Claims{
		UserID: parsed.UserID,
		Email:  parsed.Email,
		Name:   parsed.Name,
		Role:   entity.Role(parsed.Role),
	}, nil
}

// ExtractToken reads a bearer token from the Authorization header, falling back to
// the auth cookie. The header wins when both are present.
func (s *IdentityService) ExtractToken(r *http.Request) (string, bool) {
	if h := r.Header.Get("Authorization"); strings.HasPrefix(h, "Bearer ") {
		if tok := strings.TrimSpace(h[len("Bearer "):]); tok != "" {
			return tok, true
		}
	}
	if c, err := r.Cookie(s.cookieName); err == nil && c.Value != "" {
		return c.Value, true
	}
	return "", false
}

// Authenticate resolves the caller's claims. false means anonymous, which callers
// may or may not accept.
func (s *IdentityService) Authenticate(r *http.Request) (*Claims, bool) {
	tok, ok := s.ExtractToken(r)
	if !ok {
		return nil, false
	}
	claims, err := s.VerifyToken(tok)
	if err != nil {
		return nil, false
	}
	return claims, true
}

// RequireIdentity checks that claims belong to a signed-in caller and, when adminOnly is
// set, that the caller is an admin.
func RequireIdentity(claims *Claims, adminOnly bool) error {
	if claims == nil || claims.UserID == "" {
		return ErrUnauthenticated
	}
	if adminOnly && !claims.IsAdmin() {
		return fmt.Errorf("%w: admin role required", ErrUnauthorized)
	}
	return nil
}
