package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"buildhub/internal/auth"
	"buildhub/internal/authapi"
)

// MessageEmailConfirmed is the login page marker set after a successful confirmation.
const MessageEmailConfirmed = "email-confirmed"

const (
	confirmedRedirect = "/login?message=" + MessageEmailConfirmed
	errorRedirect     = "/error"
)

// OTPVerifier exchanges an emailed one-time token for a session.
type OTPVerifier interface {
	VerifyOTP(ctx context.Context, tokenHash, otpType string) (*authapi.Session, error)
}

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	verifier   OTPVerifier
	sessions   auth.SessionStore
	cookie     auth.CookieOptions
	sessionTTL time.Duration
	log        *zap.Logger
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(verifier OTPVerifier, sessions auth.SessionStore, cookie auth.CookieOptions, sessionTTL time.Duration, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		verifier:   verifier,
		sessions:   sessions,
		cookie:     cookie,
		sessionTTL: sessionTTL,
		log:        log,
	}
}

// ConfirmRequest represents the query of an email confirmation link.
type ConfirmRequest struct {
	TokenHash string `query:"token_hash" validate:"required"`
	Type      string `query:"type" validate:"required,oneof=signup magiclink recovery email"`
}

// Confirm godoc
// @Summary Confirm an emailed one-time token
// @Description Verifies the token with the auth service, starts a session and redirects to the login page. Any failure redirects to /error.
// @Tags auth
// @Param token_hash query string true "Token hash from the email link"
// @Param type query string true "Token type" Enums(signup, magiclink, recovery, email)
// @Success 303 "Redirect to /login?message=email-confirmed"
// @Failure 303 "Redirect to /error"
// @Router /auth/confirm [get]
func (h *AuthHandler) Confirm(c echo.Context) error {
	var req ConfirmRequest
	if err := c.Bind(&req); err != nil {
		return c.Redirect(http.StatusSeeOther, errorRedirect)
	}
	if err := c.Validate(&req); err != nil {
		h.log.Info("invalid confirmation link", zap.Error(err))
		return c.Redirect(http.StatusSeeOther, errorRedirect)
	}

	ctx := c.Request().Context()
	session, err := h.verifier.VerifyOTP(ctx, req.TokenHash, req.Type)
	if err != nil {
		h.log.Warn("confirmation rejected", zap.String("type", req.Type), zap.Error(err))
		return c.Redirect(http.StatusSeeOther, errorRedirect)
	}

	sess := &auth.Session{
		UserID:       session.User.ID,
		AccessToken:  session.AccessToken,
		RefreshToken: session.RefreshToken,
		ExpiresAt:    time.Now().Add(h.sessionTTL),
	}
	if err := h.sessions.Save(ctx, sess); err != nil {
		// The account is confirmed either way, the user can sign in again.
		h.log.Warn("session not stored after confirmation", zap.String("user_id", sess.UserID), zap.Error(err))
	} else {
		auth.SetSessionCookie(c, h.cookie, sess.ID, sess.ExpiresAt)
	}

	return c.Redirect(http.StatusSeeOther, confirmedRedirect)
}

// SignOut godoc
// @Summary Sign out
// @Description Deletes the server-side session and clears the session cookie.
// @Tags auth
// @Success 303 "Redirect to /"
// @Router /auth/signout [post]
func (h *AuthHandler) SignOut(c echo.Context) error {
	if cookie, err := c.Cookie(h.cookie.Name); err == nil && cookie.Value != "" {
		_ = h.sessions.Delete(c.Request().Context(), cookie.Value)
	}
	auth.ClearSessionCookie(c, h.cookie)
	return c.Redirect(http.StatusSeeOther, "/")
}
