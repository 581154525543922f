package router

import (
	"github.com/oksasatya/go-newsroom/internal/application"
	"github.com/oksasatya/go-newsroom/internal/container"
	handlers "github.com/oksasatya/go-newsroom/internal/interface/http"
	"github.com/oksasatya/go-newsroom/internal/interface/middleware"
	"github.com/oksasatya/go-newsroom/internal/router/modules"
	"github.com/oksasatya/go-newsroom/pkg/helpers"
)

type ModuleDeps struct {
	Identity *application.IdentityService
	Users    *application.UserService
	News     *application.NewsService
	Admin    *application.AdminService
	Notifier *handlers.Notifier
	Cookies  *helpers.CookieManager
}

func buildDeps() ModuleDeps {
	cfg := container.GetConfig()
	store := container.GetStore()
	clock := container.GetClock()

	identity := application.NewIdentityService(
		helpers.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL, clock),
		cfg.BcryptCost,
		cfg.CookieName,
	)

	return ModuleDeps{
		Identity: identity,
		Users:    application.NewUserService(store, identity, clock),
		News:     application.NewNewsService(store, clock, container.GetNewsIndex()),
		Admin:    application.NewAdminService(store, identity, clock),
		Notifier: handlers.NewNotifier(container.GetPublisher(), cfg, container.GetLogger()),
		Cookies:  helpers.NewCookie(cfg.CookieName, cfg.CookieDomain, cfg.CookieSecure),
	}
}

// InitModules wires every module from the container and adds it to the registry.
// Call once during startup, after the container is populated.
func InitModules(r *Registry) {
	d := buildDeps()
	logger := container.GetLogger()

	r.Use(middleware.Authenticate(d.Identity))
	r.Add(modules.NewHealthModule(handlers.NewHealthHandler(d.Admin, container.GetStore().BackendName(), logger)))
	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(d.Users, d.Cookies, d.Notifier, logger)))
	r.Add(modules.NewNewsModule(handlers.NewNewsHandler(d.News, d.Users, d.Notifier, logger)))
	r.Add(modules.NewUserModule(handlers.NewUserHandler(d.Users, d.Admin, logger)))
}
