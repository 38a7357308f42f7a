// Package api is the HTTP client for the auth service. Requests use a
// fixed short timeout; there is no retry logic.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/shivamvijaywargi/auth-service/internal/auth/dto"
)

const requestTimeout = 2 * time.Second

// APIError carries a non-2xx response's status and message.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Message)
}

type Client struct {
	baseURL string
	http    *http.Client
	token   string
}

// New creates a client for the service at baseURL, e.g.
// "http://localhost:3001".
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: requestTimeout},
	}
}

// SetToken stores the bearer token sent on authenticated requests.
// An empty token clears it.
func (c *Client) SetToken(token string) {
	c.token = token
}

func (c *Client) Register(ctx context.Context, email, password string) (*dto.AuthResponse, error) {
	var out dto.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/api/v1/user/register", dto.RegisterInput{Email: email, Password: password}, &out); err != nil {
		return nil, err
	}
	c.token = out.Token

	return &out, nil
}

func (c *Client) Login(ctx context.Context, email, password string) (*dto.AuthResponse, error) {
	var out dto.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/api/v1/user/login", dto.LoginInput{Email: email, Password: password}, &out); err != nil {
		return nil, err
	}
	c.token = out.Token

	return &out, nil
}

func (c *Client) Logout(ctx context.Context) (*dto.MessageResponse, error) {
	var out dto.MessageResponse
	if err := c.do(ctx, http.MethodGet, "/api/v1/user/logout", nil, &out); err != nil {
		return nil, err
	}
	c.token = ""

	return &out, nil
}

func (c *Client) Me(ctx context.Context) (*dto.MeResponse, error) {
	var out dto.MeResponse
	if err := c.do(ctx, http.MethodGet, "/api/v1/user/me", nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(data)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		var msg dto.MessageResponse
		_ = json.NewDecoder(resp.Body).Decode(&msg)

		return &APIError{StatusCode: resp.StatusCode, Message: msg.Message}
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
