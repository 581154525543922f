package helpers

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers every verification failure: bad signature, wrong
// algorithm, malformed input, missing or past expiry.
var ErrInvalidToken = errors.New("invalid token")

// JWTManager signs and verifies HS256 identity tokens.
type JWTManager struct {
	Secret []byte
	TTL    time.Duration
	Clock  Clock
}

func NewJWTManager(secret string, ttl time.Duration, clock Clock) *JWTManager {
	if clock == nil {
		clock = RealClock{}
	}
	return &JWTManager{Secret: []byte(secret), TTL: ttl, Clock: clock}
}

// Claims is the token payload. Field names match what browsers and other services see.
type Claims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Generate signs claims with an issued-at of now and an expiry of now+TTL.
// Any registered claims already set on c are replaced.
func (m *JWTManager) Generate(c Claims) (string, time.Time, error) {
	now := m.Clock.NowUTC()
	exp := now.Add(m.TTL)
	c.RegisteredClaims = jwt.RegisteredClaims{
		Subject:   c.UserID,
		ExpiresAt: jwt.NewNumericDate(exp),
		IssuedAt:  jwt.NewNumericDate(now),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, &c)
	s, err := t.SignedString(m.Secret)
	return s, exp, err
}

// Parse verifies tokenStr and returns its claims, or ErrInvalidToken.
func (m *JWTManager) Parse(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return m.Secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.Clock.NowUTC),
	)
	if err != nil || !tkn.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
