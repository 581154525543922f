package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/go-newsroom/internal/interface/http"
	"github.com/oksasatya/go-newsroom/internal/interface/middleware"
)

// AuthModule routes:
// Public: POST /auth/register, POST /auth/login, POST /auth/logout
// Protected: GET /auth/me
type AuthModule struct {
	Handler *handlers.AuthHandler
}

func NewAuthModule(h *handlers.AuthHandler) *AuthModule {
	return &AuthModule{Handler: h}
}

func (m *AuthModule) Prefix() string { return "/auth" }

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	rg.POST("/register", m.Handler.Register)
	rg.POST("/login", m.Handler.Login)
	rg.POST("/logout", m.Handler.Logout)
	rg.GET("/me", middleware.RequireAuth(), m.Handler.Me)
}
