package api

import (
	"context"
	"net/url"
	"strconv"

	"github.com/KodeaLabs/viventa/internal/agent"
)

// ListAgents fetches the public agent directory. An empty search lists all.
func (c *Client) ListAgents(ctx context.Context, search string, page int) ([]agent.ListItem, *Meta, error) {
	q := url.Values{}
	if search != "" {
		q.Set("search", search)
	}
	if page > 1 {
		q.Set("page", strconv.Itoa(page))
	}

	path := "/agents/"
	if encoded := q.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var agents []agent.ListItem
	meta, err := c.get(ctx, path, &agents)
	if err != nil {
		return nil, nil, err
	}
	return agents, meta, nil
}

// FeaturedAgents fetches the curated agents shown on the home page.
func (c *Client) FeaturedAgents(ctx context.Context) ([]agent.ListItem, error) {
	var agents []agent.ListItem
	if _, err := c.get(ctx, "/agents/featured/", &agents); err != nil {
		return nil, err
	}
	return agents, nil
}

// GetAgent fetches a public agent profile by slug, including team members
// and active listings.
func (c *Client) GetAgent(ctx context.Context, slug string) (*agent.Profile, error) {
	var p agent.Profile
	if _, err := c.get(ctx, "/agents/"+slug+"/", &p); err != nil {
		return nil, err
	}
	return &p, nil
}
