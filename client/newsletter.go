package client

import (
	"context"

	"beaute-shop/models"
)

func (c *Client) SubscribeNewsletter(ctx context.Context, email string) error {
	return c.post(ctx, "/newsletter/subscribe/", models.NewsletterRequest{Email: email}, nil)
}

func (c *Client) UnsubscribeNewsletter(ctx context.Context, email string) error {
	return c.post(ctx, "/newsletter/unsubscribe/", models.NewsletterRequest{Email: email}, nil)
}
