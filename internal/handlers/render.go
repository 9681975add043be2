package handlers

import (
	"errors"
	"net/http"

	"rentdesk/internal/models"
	"rentdesk/internal/service"

	"github.com/gin-gonic/gin"
)

// render wraps c.HTML and forwards the user resolved by
// middleware.InjectUser into every template.
func render(c *gin.Context, status int, tmpl string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}

	if uVal, ok := c.Get("CurrentUser"); ok {
		if u, ok := uVal.(models.User); ok {
			data["CurrentUser"] = u
			data["CurrentUsername"] = u.Username
			data["CurrentUserRole"] = u.Role
			data["IsAdmin"] = u.Role == models.RoleAdmin
		}
	}

	c.HTML(status, tmpl, data)
}

// httpStatus maps service errors onto response codes. Auth failures never
// reach here; the middleware handles those.
func httpStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, service.ErrValidation), errors.Is(err, service.ErrInvalidTransition):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
