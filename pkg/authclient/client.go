package authclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// TokenValidator resolves a bearer credential to a user ID.
// The production implementation calls the external auth service;
// tests substitute a fake.
type TokenValidator interface {
	Validate(ctx context.Context, authorization string) (string, error)
}

// APIError is a non-2xx answer from the auth service. The gate
// propagates its status and message to the client unchanged.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("auth service returned %d: %s", e.Status, e.Message)
}

// Client talks to the external auth service over HTTP.
// One call per request, no retries.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates an auth service client
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// SignupRequest is the payload forwarded to POST /signup
type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Username string `json:"username"`
	Lastname string `json:"lastname"`
	Birthday string `json:"birthday"`
}

type authResponse struct {
	Success bool            `json:"success"`
	Message json.RawMessage `json:"message"`
	Token   string          `json:"token"`
	UserID  json.RawMessage `json:"userId"`
}

// Validate checks a bearer credential and returns the resolved user ID.
func (c *Client) Validate(ctx context.Context, authorization string) (string, error) {
	resp, err := c.do(ctx, http.MethodPost, "/validate", authorization, nil)
	if err != nil {
		return "", err
	}
	// The auth service may serialize userId as a quoted string.
	userID := strings.Trim(strings.TrimSpace(string(resp.UserID)), `"`)
	if userID == "" {
		return "", fmt.Errorf("auth service returned empty userId")
	}
	return userID, nil
}

// Signup registers a new account with the auth service
func (c *Client) Signup(ctx context.Context, req SignupRequest) error {
	_, err := c.do(ctx, http.MethodPost, "/signup", "", req)
	return err
}

// Login exchanges credentials for a token
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	body := map[string]string{"email": email, "password": password}
	resp, err := c.do(ctx, http.MethodPost, "/login", "", body)
	if err != nil {
		return "", err
	}
	return resp.Token, nil
}

// Logout invalidates the presented credential
func (c *Client) Logout(ctx context.Context, authorization string) error {
	_, err := c.do(ctx, http.MethodPost, "/logout", authorization, nil)
	return err
}

// ChangePassword asks the auth service to rotate the caller's password
func (c *Client) ChangePassword(ctx context.Context, authorization, oldPassword, newPassword string) error {
	body := map[string]string{"oldPassword": oldPassword, "newPassword": newPassword}
	_, err := c.do(ctx, http.MethodPost, "/changePassword", authorization, body)
	return err
}

func (c *Client) do(ctx context.Context, method, path, authorization string, body any) (*authResponse, error) {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader([]byte("{}"))
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}

	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("auth service unreachable: %w", err)
	}
	defer httpResp.Body.Close()

	var resp authResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		return nil, fmt.Errorf("auth service returned malformed response: %w", err)
	}

	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 || !resp.Success {
		status := httpResp.StatusCode
		if status >= 200 && status < 300 {
			status = http.StatusUnauthorized
		}
		return nil, &APIError{Status: status, Message: messageText(resp.Message)}
	}

	return &resp, nil
}

func messageText(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	if len(raw) > 0 {
		return string(raw)
	}
	return "authentication failed"
}
