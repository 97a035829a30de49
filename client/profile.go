package client

import (
	"context"

	"beaute-shop/models"
)

func (c *Client) MyProfile(ctx context.Context) (*models.Profile, error) {
	var profile models.Profile
	if err := c.get(ctx, "/profiles/me/", nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (c *Client) UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) (*models.Profile, error) {
	var profile models.Profile
	if err := c.put(ctx, "/profiles/me/", req, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}
