package client

import (
	"context"
	"errors"

	"beaute-shop/models"
)

var ErrNotLoggedIn = errors.New("client: no refresh token stored")

// Login exchanges credentials for a token pair and stores it.
func (c *Client) Login(ctx context.Context, username, password string) (*models.TokenPair, error) {
	var tokens models.TokenPair
	req := models.LoginRequest{Username: username, Password: password}
	if err := c.post(ctx, "/token/", req, &tokens); err != nil {
		return nil, err
	}
	if err := c.creds.Save(tokens); err != nil {
		return nil, err
	}
	return &tokens, nil
}

// Refresh trades the stored refresh token for a new access token and
// updates the store.
func (c *Client) Refresh(ctx context.Context) (string, error) {
	tokens, ok := c.creds.Tokens()
	if !ok || tokens.Refresh == "" {
		return "", ErrNotLoggedIn
	}

	var resp models.RefreshResponse
	if err := c.post(ctx, "/token/refresh/", models.RefreshRequest{Refresh: tokens.Refresh}, &resp); err != nil {
		return "", err
	}

	tokens.Access = resp.Access
	if err := c.creds.Save(tokens); err != nil {
		return "", err
	}
	return resp.Access, nil
}

func (c *Client) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	var user models.User
	if err := c.post(ctx, "/users/register/", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Me returns the authenticated user.
func (c *Client) Me(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.get(ctx, "/users/me/", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Logout drops the stored tokens. Purely local, the server keeps no
// session state.
func (c *Client) Logout() error {
	return c.creds.Clear()
}
