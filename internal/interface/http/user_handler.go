package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-newsroom/internal/application"
	"github.com/oksasatya/go-newsroom/pkg/helpers"
	"github.com/oksasatya/go-newsroom/pkg/response"
)

// UserHandler serves the admin-only account endpoints.
type UserHandler struct {
	Users  *application.UserService
	Admin  *application.AdminService
	Logger logrus.FieldLogger
}

func NewUserHandler(users *application.UserService, admin *application.AdminService, logger logrus.FieldLogger) *UserHandler {
	return &UserHandler{Users: users, Admin: admin, Logger: logger}
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.Users.ListUsers(c.Request.Context())
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.List(c, viewUsers(users), "ok")
}

// Seed wipes the store and recreates the fixture accounts.
func (h *UserHandler) Seed(c *gin.Context) {
	users, err := h.Admin.Seed(c.Request.Context())
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	helpers.LogWarn(h.Logger, "store reset and reseeded", nil, logrus.Fields{"request_id": c.GetString("request_id")})
	response.OK(c, http.StatusOK, viewUsers(users), "store seeded")
}
