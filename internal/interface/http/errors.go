package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-newsroom/internal/application"
	"github.com/oksasatya/go-newsroom/pkg/helpers"
	"github.com/oksasatya/go-newsroom/pkg/response"
	"github.com/oksasatya/go-newsroom/pkg/validation"
)

// statusFor maps service errors onto HTTP statuses and client-safe messages.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, application.ErrUnauthenticated), errors.Is(err, application.ErrInvalidToken):
		return http.StatusUnauthorized, "authentication required"
	case errors.Is(err, application.ErrInvalidCredentials):
		return http.StatusUnauthorized, application.ErrInvalidCredentials.Error()
	case errors.Is(err, application.ErrUnauthorized):
		return http.StatusForbidden, "you are not allowed to do this"
	case errors.Is(err, application.ErrNotFound):
		return http.StatusNotFound, "not found"
	case errors.Is(err, application.ErrConflict):
		return http.StatusConflict, application.ErrConflict.Error()
	case errors.Is(err, application.ErrInvalidInput):
		return http.StatusBadRequest, err.Error()
	default:
		return http.StatusInternalServerError, "internal error"
	}
}

func writeError(c *gin.Context, logger logrus.FieldLogger, err error) {
	status, msg := statusFor(err)
	if status == http.StatusInternalServerError {
		helpers.LogError(logger, "request failed", err, logrus.Fields{
			"request_id": c.GetString("request_id"),
			"path":       c.FullPath(),
		})
	}
	response.Fail(c, status, msg, nil)
}

// normalizer trims request fields before validation runs.
type normalizer interface {
	normalize()
}

// bind decodes the JSON body, normalizes it, then validates it with Gin's validator.
// On failure it writes a 400 and returns false.
func bind(c *gin.Context, req normalizer) bool {
	if err := json.NewDecoder(c.Request.Body).Decode(req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return false
	}
	req.normalize()
	if err := binding.Validator.ValidateStruct(req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return false
	}
	return true
}

func trimPtr(s *string) {
	if s != nil {
		*s = strings.TrimSpace(*s)
	}
}
