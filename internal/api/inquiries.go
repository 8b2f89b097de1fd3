package api

import (
	"context"
	"net/url"
	"strconv"

	"github.com/KodeaLabs/viventa/internal/inquiry"
)

// CreateInquiry submits a buyer inquiry for a property. Submission is
// anonymous; no token is required.
func (c *Client) CreateInquiry(ctx context.Context, form *inquiry.Form) (*inquiry.Inquiry, error) {
	var inq inquiry.Inquiry
	if err := c.post(ctx, "/inquiries/", form, &inq); err != nil {
		return nil, err
	}
	return &inq, nil
}

// ListAgentInquiries fetches inquiries for the authenticated agent's
// listings, optionally restricted to one triage status.
func (c *Client) ListAgentInquiries(ctx context.Context, status string, page int) ([]inquiry.Inquiry, *Meta, error) {
	q := url.Values{}
	if status != "" {
		q.Set("status", status)
	}
	if page > 1 {
		q.Set("page", strconv.Itoa(page))
	}

	path := "/inquiries/"
	if encoded := q.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var inquiries []inquiry.Inquiry
	meta, err := c.get(ctx, path, &inquiries)
	if err != nil {
		return nil, nil, err
	}
	return inquiries, meta, nil
}

// InquiryStats fetches per-status counts for the agent dashboard.
func (c *Client) InquiryStats(ctx context.Context) (map[string]int, error) {
	var stats map[string]int
	if _, err := c.get(ctx, "/inquiries/stats/", &stats); err != nil {
		return nil, err
	}
	return stats, nil
}

// UpdateInquiry applies a partial update, typically the triage status or
// internal notes.
func (c *Client) UpdateInquiry(ctx context.Context, id string, body map[string]any) (*inquiry.Inquiry, error) {
	var inq inquiry.Inquiry
	if err := c.patch(ctx, "/inquiries/"+id+"/", body, &inq); err != nil {
		return nil, err
	}
	return &inq, nil
}
