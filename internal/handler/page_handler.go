package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"buildhub/internal/auth"
	"buildhub/internal/service"
	"buildhub/internal/web"
)

// Login page messages keyed by the message query parameter.
var loginMessages = map[string]string{
	MessageEmailConfirmed: "Your email has been confirmed. You can sign in now.",
}

// PageHandler renders the HTML pages inside the layout shell.
type PageHandler struct {
	users service.UserService
	log   *zap.Logger
}

// NewPageHandler creates a new page handler.
func NewPageHandler(users service.UserService, log *zap.Logger) *PageHandler {
	return &PageHandler{users: users, log: log}
}

// Home renders the marketing home page.
func (h *PageHandler) Home(c echo.Context) error {
	return c.Render(http.StatusOK, web.PageHome, web.Page{Title: "Construction management"})
}

// Admin renders the dashboard shell for the current user, or for a guest.
func (h *PageHandler) Admin(c echo.Context) error {
	page := web.Page{Title: "Dashboard"}

	current := h.users.CurrentUser(c.Request().Context(), auth.IdentityFrom(c))
	if current != nil {
		if current.Degraded() {
			h.log.Warn("profile unavailable, rendering identity-only user",
				zap.String("user_id", current.User.ID),
				zap.Error(current.Err),
			)
		} else if current.Status == service.ProfileCreated {
			h.log.Info("profile created", zap.String("user_id", current.User.ID))
		}
		page.User = &current.User
	}

	return c.Render(http.StatusOK, web.PageAdmin, page)
}

// Login renders the sign-in notice page.
func (h *PageHandler) Login(c echo.Context) error {
	return c.Render(http.StatusOK, web.PageLogin, web.Page{
		Title:   "Sign in",
		Message: loginMessages[c.QueryParam("message")],
	})
}

// SignupConfirm renders the "check your email" notice shown after sign-up.
func (h *PageHandler) SignupConfirm(c echo.Context) error {
	return c.Render(http.StatusOK, web.PageSignupConfirm, web.Page{Title: "Confirm your email"})
}

// Error renders the generic error page.
func (h *PageHandler) Error(c echo.Context) error {
	return c.Render(http.StatusOK, web.PageError, web.Page{Title: "Error"})
}
