package api

import (
	"context"

	"github.com/KodeaLabs/viventa/internal/filter"
	"github.com/KodeaLabs/viventa/internal/property"
)

// ListProperties fetches a page of listings matching the given filters.
func (c *Client) ListProperties(ctx context.Context, f filter.PropertyFilters) ([]property.Property, *Meta, error) {
	path := "/properties/"
	if q := f.Query(); q != "" {
		path += "?" + q
	}

	var properties []property.Property
	meta, err := c.get(ctx, path, &properties)
	if err != nil {
		return nil, nil, err
	}
	return properties, meta, nil
}

// GetProperty fetches a single listing by slug.
func (c *Client) GetProperty(ctx context.Context, slug string) (*property.Property, error) {
	var p property.Property
	if _, err := c.get(ctx, "/properties/"+slug+"/", &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// FeaturedProperties fetches the curated home-page listings.
func (c *Client) FeaturedProperties(ctx context.Context) ([]property.Property, error) {
	var properties []property.Property
	if _, err := c.get(ctx, "/properties/featured/", &properties); err != nil {
		return nil, err
	}
	return properties, nil
}

// Cities returns the distinct cities with active listings, for filter
// dropdowns.
func (c *Client) Cities(ctx context.Context) ([]string, error) {
	var cities []string
	if _, err := c.get(ctx, "/properties/cities/", &cities); err != nil {
		return nil, err
	}
	return cities, nil
}

// MyProperties fetches the authenticated agent's own listings, any status.
func (c *Client) MyProperties(ctx context.Context) ([]property.Property, error) {
	var properties []property.Property
	if _, err := c.get(ctx, "/properties/my_properties/", &properties); err != nil {
		return nil, err
	}
	return properties, nil
}

// CreateProperty creates a listing owned by the authenticated agent.
func (c *Client) CreateProperty(ctx context.Context, body map[string]any) (*property.Property, error) {
	var p property.Property
	if err := c.post(ctx, "/properties/", body, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdateProperty applies a partial update to a listing.
func (c *Client) UpdateProperty(ctx context.Context, slug string, body map[string]any) (*property.Property, error) {
	var p property.Property
	if err := c.patch(ctx, "/properties/"+slug+"/", body, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// DeleteProperty removes a listing.
func (c *Client) DeleteProperty(ctx context.Context, slug string) error {
	return c.del(ctx, "/properties/"+slug+"/")
}
