package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/go-newsroom/internal/interface/http"
	"github.com/oksasatya/go-newsroom/internal/interface/middleware"
)

// NewsModule serves reads publicly; writes and comments need a signed-in caller.
type NewsModule struct {
	Handler *handlers.NewsHandler
}

func NewNewsModule(h *handlers.NewsHandler) *NewsModule {
	return &NewsModule{Handler: h}
}

func (m *NewsModule) Prefix() string { return "/news" }

func (m *NewsModule) Register(rg *gin.RouterGroup) {
	rg.GET("", m.Handler.List)
	rg.GET("/search", m.Handler.Search)
	rg.GET("/:id", m.Handler.Get)

	protected := rg.Group("")
	protected.Use(middleware.RequireAuth())
	{
		protected.POST("", m.Handler.Create)
		protected.PUT("/:id", m.Handler.Update)
		protected.DELETE("/:id", m.Handler.Delete)
		protected.PATCH("/:id/comments", m.Handler.AddComment)
	}
}
