package handlers

import (
	"time"

	"github.com/oksasatya/go-newsroom/internal/application"
	"github.com/oksasatya/go-newsroom/internal/domain/entity"
)

// userView is a user as clients see it: never with the password hash.
type userView struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Role      entity.Role `json:"role"`
	CreatedAt *time.Time  `json:"createdAt,omitempty"`
}

func viewUser(u *entity.User) userView {
	created := u.CreatedAt
	return userView{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role, CreatedAt: &created}
}

func viewUsers(users []entity.User) []userView {
	out := make([]userView, len(users))
	for i := range users {
		out[i] = viewUser(&users[i])
	}
	return out
}

func viewClaims(c *application.Claims) userView {
	return userView{ID: c.UserID, Name: c.Name, Email: c.Email, Role: c.Role}
}

type authView struct {
	User      userView  `json:"user"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func viewAuth(res *application.AuthResult) authView {
	return authView{User: viewUser(res.User), Token: res.Token, ExpiresAt: res.ExpiresAt}
}
