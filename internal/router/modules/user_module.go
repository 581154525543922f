package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/go-newsroom/internal/interface/http"
	"github.com/oksasatya/go-newsroom/internal/interface/middleware"
)

// UserModule holds the admin-only routes: GET /users, POST /seed.
type UserModule struct {
	Handler *handlers.UserHandler
}

func NewUserModule(h *handlers.UserHandler) *UserModule {
	return &UserModule{Handler: h}
}

func (m *UserModule) Prefix() string { return "" }

func (m *UserModule) Register(rg *gin.RouterGroup) {
	rg.Use(middleware.RequireAdmin())
	rg.GET("/users", m.Handler.List)
	rg.POST("/seed", m.Handler.Seed)
}
