package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"buildhub/internal/auth"
	"buildhub/internal/errors"
	"buildhub/internal/model"
	"buildhub/internal/service"
)

// UserHandler serves the signed-in user over the JSON API.
type UserHandler struct {
	users service.UserService
}

// NewUserHandler creates a handler layer.
func NewUserHandler(users service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// MeResponse represents the current user response.
type MeResponse struct {
	User          model.UserView `json:"user"`
	ProfileStatus string         `json:"profile_status"`
}

// Me godoc
// @Summary Get the current user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} MeResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /api/me [get]
func (h *UserHandler) Me(c echo.Context) error {
	current := h.users.CurrentUser(c.Request().Context(), auth.IdentityFrom(c))
	if current == nil {
		httpErr := errors.MapErrorToHTTP(errors.ErrNotAuthenticated)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, MeResponse{
		User:          current.User,
		ProfileStatus: current.Status.String(),
	})
}
