package venueapi

import (
	"context"
	"net/http"
	"net/url"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

func (c *Client) Login(ctx context.Context, username, password string) (LoginResponse, error) {
	var out LoginResponse
	in := LoginRequest{Username: username, Password: password}
	if err := c.do(ctx, http.MethodPost, "/auth/login", in, &out); err != nil {
		return out, err
	}
	return out, nil
}

func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/auth/logout", nil, nil)
}

func (c *Client) ListUsersWithStats(ctx context.Context) ([]UserStats, error) {
	var out []UserStats
	if err := c.do(ctx, http.MethodGet, "/users/stats", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

type toggleUserRequest struct {
	IsActive bool `json:"isActive"`
}

func (c *Client) ToggleUserActive(ctx context.Context, id string, isActive bool) (User, error) {
	var out User
	in := toggleUserRequest{IsActive: isActive}
	if err := c.do(ctx, http.MethodPatch, "/user/"+url.PathEscape(id)+"/toggle", in, &out); err != nil {
		return out, err
	}
	return out, nil
}
