package api

import (
	"context"

	"github.com/KodeaLabs/viventa/internal/property"
	"github.com/KodeaLabs/viventa/internal/user"
)

// CurrentUser fetches the profile linked to the bearer token. Returns
// ErrUnauthenticated when the token is missing or expired.
func (c *Client) CurrentUser(ctx context.Context) (*user.User, error) {
	var u user.User
	if _, err := c.get(ctx, "/auth/me/", &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// UpdateProfile applies a partial update to the current user's profile.
func (c *Client) UpdateProfile(ctx context.Context, body map[string]any) (*user.User, error) {
	var u user.User
	if err := c.patch(ctx, "/auth/me/", body, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// BecomeAgent upgrades the current user to an agent profile.
func (c *Client) BecomeAgent(ctx context.Context, body map[string]any) (*user.User, error) {
	var u user.User
	if err := c.post(ctx, "/auth/become-agent/", body, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// SavedProperties fetches the current user's saved listings.
func (c *Client) SavedProperties(ctx context.Context) ([]property.Property, error) {
	var properties []property.Property
	if _, err := c.get(ctx, "/properties/saved/", &properties); err != nil {
		return nil, err
	}
	return properties, nil
}

// ToggleSaveProperty saves or unsaves a listing for the current user and
// reports whether it is saved afterwards.
func (c *Client) ToggleSaveProperty(ctx context.Context, slug string) (bool, error) {
	var result struct {
		Saved bool `json:"saved"`
	}
	if err := c.post(ctx, "/properties/"+slug+"/save/", nil, &result); err != nil {
		return false, err
	}
	return result.Saved, nil
}
