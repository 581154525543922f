package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-newsroom/internal/application"
	"github.com/oksasatya/go-newsroom/pkg/helpers"
	"github.com/oksasatya/go-newsroom/pkg/response"
)

type HealthHandler struct {
	Admin   *application.AdminService
	Backend string
	Logger  logrus.FieldLogger
}

func NewHealthHandler(admin *application.AdminService, backend string, logger logrus.FieldLogger) *HealthHandler {
	return &HealthHandler{Admin: admin, Backend: backend, Logger: logger}
}

type storeHealth struct {
	Backend string `json:"backend"`
	Status  string `json:"status"`
	Error   string `json:"error,omitempty"`
}

// Health reports whether the store loaded cleanly. A corrupt or unreadable store still
// answers 200 with status "degraded"; a backend that cannot be reached answers 503.
func (h *HealthHandler) Health(c *gin.Context) {
	snap, err := h.Admin.StoreStatus(c.Request.Context())
	if err != nil {
		helpers.LogError(h.Logger, "health: store unreachable", err, logrus.Fields{"backend": h.Backend})
		resp := response.Error[any](c, http.StatusServiceUnavailable, "store unreachable", storeHealth{Backend: h.Backend, Status: "unreachable"})
		c.JSON(resp.Status, resp)
		return
	}
	out := storeHealth{Backend: h.Backend, Status: string(snap.Status)}
	status := "ok"
	if snap.Degraded() {
		status = "degraded"
		if snap.Cause != nil {
			out.Error = snap.Cause.Error()
		}
	}
	response.OK(c, http.StatusOK, gin.H{"status": status, "store": out}, status)
}
