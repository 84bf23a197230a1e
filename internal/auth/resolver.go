package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"buildhub/internal/authapi"
	apperrors "buildhub/internal/errors"
	"buildhub/internal/model"
)

// SessionRefresher trades a refresh token for a new auth service session.
type SessionRefresher interface {
	RefreshSession(ctx context.Context, refreshToken string) (*authapi.Session, error)
}

// Resolver turns an inbound request into the authenticated identity, if any.
type Resolver struct {
	verifier   *TokenVerifier
	sessions   SessionStore
	refresher  SessionRefresher
	cookieName string
	sessionTTL time.Duration
}

// NewResolver creates a resolver. refresher may be nil, expired sessions then resolve to no user.
func NewResolver(verifier *TokenVerifier, sessions SessionStore, refresher SessionRefresher, cookieName string, sessionTTL time.Duration) *Resolver {
	return &Resolver{
		verifier:   verifier,
		sessions:   sessions,
		refresher:  refresher,
		cookieName: cookieName,
		sessionTTL: sessionTTL,
	}
}

// Resolve returns the identity behind a bearer token or the session cookie.
// Every failure wraps apperrors.ErrNotAuthenticated.
func (r *Resolver) Resolve(ctx context.Context, req *http.Request) (*model.Identity, error) {
	if token := bearerToken(req); token != "" {
		identity, err := r.verifier.Verify(token)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", apperrors.ErrNotAuthenticated, err)
		}
		return identity, nil
	}

	cookie, err := req.Cookie(r.cookieName)
	if err != nil || cookie.Value == "" {
		return nil, apperrors.ErrNotAuthenticated
	}

	sess, err := r.sessions.Get(ctx, cookie.Value)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrNotAuthenticated, err)
	}
	if sess == nil {
		return nil, fmt.Errorf("%w: unknown session", apperrors.ErrNotAuthenticated)
	}

	identity, err := r.verifier.Verify(sess.AccessToken)
	if errors.Is(err, ErrTokenExpired) {
		identity, err = r.refresh(ctx, sess)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrNotAuthenticated, err)
	}
	if identity.ID != sess.UserID {
		return nil, fmt.Errorf("%w: session user mismatch", apperrors.ErrNotAuthenticated)
	}
	return identity, nil
}

func (r *Resolver) refresh(ctx context.Context, sess *Session) (*model.Identity, error) {
	if r.refresher == nil || sess.RefreshToken == "" {
		return nil, ErrTokenExpired
	}

	fresh, err := r.refresher.RefreshSession(ctx, sess.RefreshToken)
	if err != nil {
		return nil, fmt.Errorf("refresh session: %w", err)
	}

	identity, err := r.verifier.Verify(fresh.AccessToken)
	if err != nil {
		return nil, err
	}

	sess.AccessToken = fresh.AccessToken
	sess.RefreshToken = fresh.RefreshToken
	sess.ExpiresAt = time.Now().Add(r.sessionTTL)
	// The refreshed tokens are valid for this request even if the write is lost.
	_ = r.sessions.Save(ctx, sess)

	return identity, nil
}

func bearerToken(req *http.Request) string {
	header := req.Header.Get("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
