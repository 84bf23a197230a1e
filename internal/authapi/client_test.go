package authapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "buildhub/internal/errors"
)

const sessionJSON = `{
	"access_token": "access",
	"refresh_token": "refresh",
	"expires_in": 3600,
	"user": {"id": "u1", "email": "a@b.com", "user_metadata": {"full_name": "Ann"}}
}`

func TestClient_VerifyOTP(t *testing.T) {
	var gotBody map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/v1/verify", r.URL.Path)
		assert.Equal(t, "anon-key", r.Header.Get("apikey"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_, _ = w.Write([]byte(sessionJSON))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "anon-key", time.Second)
	session, err := c.VerifyOTP(context.Background(), "hash-1", TypeSignup)

	require.NoError(t, err)
	assert.Equal(t, map[string]string{"type": "signup", "token_hash": "hash-1"}, gotBody)
	assert.Equal(t, "access", session.AccessToken)
	assert.Equal(t, "refresh", session.RefreshToken)
	assert.Equal(t, 3600, session.ExpiresIn)
	assert.Equal(t, "u1", session.User.ID)
	assert.Equal(t, "Ann", session.User.MetadataString("full_name"))
}

func TestClient_RefreshSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/v1/token", r.URL.Path)
		assert.Equal(t, "refresh_token", r.URL.Query().Get("grant_type"))
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "old-refresh", body["refresh_token"])
		_, _ = w.Write([]byte(sessionJSON))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", time.Second)
	session, err := c.RefreshSession(context.Background(), "old-refresh")

	require.NoError(t, err)
	assert.Equal(t, "access", session.AccessToken)
}

func TestClient_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"expired token", http.StatusForbidden, `{"code":403,"msg":"Token has expired or is invalid"}`},
		{"server error", http.StatusInternalServerError, `oops`},
		{"incomplete session", http.StatusOK, `{"access_token":""}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c := NewClient(srv.URL, "", time.Second)
			session, err := c.VerifyOTP(context.Background(), "hash", TypeEmail)

			assert.ErrorIs(t, err, apperrors.ErrAuthRejected)
			assert.Nil(t, session)
		})
	}
}

func TestClient_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := NewClient(url, "", time.Second)
	_, err := c.VerifyOTP(context.Background(), "hash", TypeEmail)

	assert.Error(t, err)
	assert.NotErrorIs(t, err, apperrors.ErrAuthRejected)
}
