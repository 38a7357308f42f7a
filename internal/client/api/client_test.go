package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shivamvijaywargi/auth-service/internal/auth/dto"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/v1/user/register", func(w http.ResponseWriter, r *http.Request) {
		var in dto.RegisterInput
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))

		if len(in.Password) < 8 {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(dto.MessageResponse{Message: "password must be at least 8 characters long"})
			return
		}

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(dto.AuthResponse{
			Success: true,
			User:    dto.UserOutput{ID: "user-123", Email: in.Email},
			Token:   "tok-register",
		})
	})

	mux.HandleFunc("POST /api/v1/user/login", func(w http.ResponseWriter, r *http.Request) {
		var in dto.LoginInput
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))

		if in.Password != "password1" {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(dto.MessageResponse{Message: "email or password is incorrect or user does not exist"})
			return
		}

		_ = json.NewEncoder(w).Encode(dto.AuthResponse{
			Success: true,
			User:    dto.UserOutput{ID: "user-123", Email: in.Email},
			Token:   "tok-login",
		})
	})

	mux.HandleFunc("GET /api/v1/user/logout", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(dto.MessageResponse{Success: true, Message: "Logged out successfully"})
	})

	mux.HandleFunc("GET /api/v1/user/me", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok-login" {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(dto.MessageResponse{Message: "Unauthorized"})
			return
		}

		_ = json.NewEncoder(w).Encode(dto.MeResponse{
			Success: true,
			Message: "Welcome",
			User:    dto.UserOutput{ID: "user-123", Email: "a@x.com"},
		})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return srv
}

func TestClient_Register(t *testing.T) {
	srv := newTestServer(t)
	c := New(srv.URL)

	t.Run("success stores token", func(t *testing.T) {
		resp, err := c.Register(context.Background(), "a@x.com", "password1")
		require.NoError(t, err)
		assert.True(t, resp.Success)
		assert.Equal(t, "a@x.com", resp.User.Email)
		assert.Equal(t, "tok-register", c.token)
	})

	t.Run("server error surfaces as APIError", func(t *testing.T) {
		_, err := c.Register(context.Background(), "a@x.com", "short1")
		require.Error(t, err)

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
		assert.Contains(t, apiErr.Message, "8 characters")
	})
}

func TestClient_LoginAndMe(t *testing.T) {
	srv := newTestServer(t)
	c := New(srv.URL)

	// Me without a token is rejected.
	_, err := c.Me(context.Background())
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)

	// Login stores the token, which then authenticates Me.
	loginResp, err := c.Login(context.Background(), "a@x.com", "password1")
	require.NoError(t, err)
	assert.Equal(t, "tok-login", loginResp.Token)

	meResp, err := c.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", meResp.User.Email)
}

func TestClient_Login_BadCredentials(t *testing.T) {
	srv := newTestServer(t)
	c := New(srv.URL)

	_, err := c.Login(context.Background(), "a@x.com", "wrong-pass")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Contains(t, apiErr.Message, "incorrect")
}

func TestClient_Logout_ClearsToken(t *testing.T) {
	srv := newTestServer(t)
	c := New(srv.URL)

	_, err := c.Login(context.Background(), "a@x.com", "password1")
	require.NoError(t, err)
	require.NotEmpty(t, c.token)

	resp, err := c.Logout(context.Background())
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Empty(t, c.token)
}
