package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-newsroom/internal/application"
	"github.com/oksasatya/go-newsroom/internal/domain/entity"
	"github.com/oksasatya/go-newsroom/internal/interface/middleware"
	"github.com/oksasatya/go-newsroom/pkg/helpers"
	"github.com/oksasatya/go-newsroom/pkg/response"
)

type AuthHandler struct {
	Users    *application.UserService
	Cookies  *helpers.CookieManager
	Notifier *Notifier
	Logger   logrus.FieldLogger
}

func NewAuthHandler(users *application.UserService, cookies *helpers.CookieManager, notifier *Notifier, logger logrus.FieldLogger) *AuthHandler {
	return &AuthHandler{Users: users, Cookies: cookies, Notifier: notifier, Logger: logger}
}

type registerRequest struct {
	Name     string `json:"name" binding:"required,min=2"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,pwd"`
	Role     string `json:"role" binding:"omitempty,oneof=admin reporter"`
}

func (r *registerRequest) normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = application.NormalizeEmail(r.Email)
	r.Role = strings.TrimSpace(r.Role)
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (r *loginRequest) normalize() {
	r.Email = application.NormalizeEmail(r.Email)
}

// Register creates a reporter account. A requested role is honored only when an
// admin is making the call. Only anonymous callers get the new account's cookie.
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if !bind(c, &req) {
		return
	}
	caller := middleware.ClaimsFrom(c)
	in := application.RegisterInput{Name: req.Name, Email: req.Email, Password: req.Password}
	if req.Role != "" && caller.IsAdmin() {
		in.Role = entity.Role(req.Role)
	}

	res, err := h.Users.Register(c.Request.Context(), in)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	// A signed-in caller creating an account keeps their own session.
	if caller == nil {
		h.Cookies.SetToken(c, res.Token, res.ExpiresAt)
	}
	h.Notifier.Welcome(c.Request.Context(), res.User)
	response.OK(c, http.StatusCreated, viewAuth(res), "registered")
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if !bind(c, &req) {
		return
	}
	res, err := h.Users.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	h.Cookies.SetToken(c, res.Token, res.ExpiresAt)
	response.OK(c, http.StatusOK, viewAuth(res), "login successful")
}

// Logout clears the cookie. Tokens already handed out stay valid until they expire.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.Cookies.Clear(c)
	response.OK(c, http.StatusOK, gin.H{"loggedOut": true}, "logged out")
}

func (h *AuthHandler) Me(c *gin.Context) {
	response.OK(c, http.StatusOK, viewClaims(middleware.ClaimsFrom(c)), "ok")
}
