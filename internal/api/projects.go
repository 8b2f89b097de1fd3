package api

import (
	"context"

	"github.com/KodeaLabs/viventa/internal/filter"
	"github.com/KodeaLabs/viventa/internal/project"
)

// ListProjects fetches the public project directory.
func (c *Client) ListProjects(ctx context.Context, f filter.ProjectFilters) ([]project.Project, *Meta, error) {
	path := "/projects/"
	if q := f.Query(); q != "" {
		path += "?" + q
	}

	var projects []project.Project
	meta, err := c.get(ctx, path, &projects)
	if err != nil {
		return nil, nil, err
	}
	return projects, meta, nil
}

// GetProject fetches a public project detail page by slug.
func (c *Client) GetProject(ctx context.Context, slug string) (*project.Project, error) {
	var p project.Project
	if _, err := c.get(ctx, "/projects/"+slug+"/", &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// FeaturedProjects fetches the curated home-page projects.
func (c *Client) FeaturedProjects(ctx context.Context) ([]project.Project, error) {
	var projects []project.Project
	if _, err := c.get(ctx, "/projects/featured/", &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// ProjectAssets fetches the sellable units of a public project, filtered.
func (c *Client) ProjectAssets(ctx context.Context, slug string, f filter.AssetFilters) ([]project.SellableAsset, *Meta, error) {
	path := "/projects/" + slug + "/assets/"
	if q := f.Query(); q != "" {
		path += "?" + q
	}

	var assets []project.SellableAsset
	meta, err := c.get(ctx, path, &assets)
	if err != nil {
		return nil, nil, err
	}
	return assets, meta, nil
}

// ProjectUpdates fetches the published progress posts for a project.
func (c *Client) ProjectUpdates(ctx context.Context, slug string) ([]project.Update, error) {
	var updates []project.Update
	if _, err := c.get(ctx, "/projects/"+slug+"/updates/", &updates); err != nil {
		return nil, err
	}
	return updates, nil
}

// Developer-facing project management. These require an authenticated
// developer or staff token; the backend enforces ownership.

// AdminListProjects fetches the developer's projects in any status.
func (c *Client) AdminListProjects(ctx context.Context, f filter.ProjectFilters) ([]project.Project, *Meta, error) {
	path := "/admin/projects/"
	if q := f.Query(); q != "" {
		path += "?" + q
	}

	var projects []project.Project
	meta, err := c.get(ctx, path, &projects)
	if err != nil {
		return nil, nil, err
	}
	return projects, meta, nil
}

// AdminGetProject fetches a managed project by id.
func (c *Client) AdminGetProject(ctx context.Context, id string) (*project.Project, error) {
	var p project.Project
	if _, err := c.get(ctx, "/admin/projects/"+id+"/", &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// CreateProject creates a draft project.
func (c *Client) CreateProject(ctx context.Context, body map[string]any) (*project.Project, error) {
	var p project.Project
	if err := c.post(ctx, "/admin/projects/", body, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdateProject applies a partial update to a managed project.
func (c *Client) UpdateProject(ctx context.Context, id string, body map[string]any) (*project.Project, error) {
	var p project.Project
	if err := c.patch(ctx, "/admin/projects/"+id+"/", body, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// DeleteProject removes a managed project.
func (c *Client) DeleteProject(ctx context.Context, id string) error {
	return c.del(ctx, "/admin/projects/"+id+"/")
}

// TransitionProject invokes a named status transition on a project and
// returns the resulting status as reported by the server.
func (c *Client) TransitionProject(ctx context.Context, id, action string) (project.Status, error) {
	status, err := c.transition(ctx, "/admin/projects/"+id+"/"+action+"/")
	return project.Status(status), err
}

// AdminProjectAssets fetches the sellable units of a managed project.
func (c *Client) AdminProjectAssets(ctx context.Context, id string, f filter.AssetFilters) ([]project.SellableAsset, *Meta, error) {
	path := "/admin/projects/" + id + "/assets/"
	if q := f.Query(); q != "" {
		path += "?" + q
	}

	var assets []project.SellableAsset
	meta, err := c.get(ctx, path, &assets)
	if err != nil {
		return nil, nil, err
	}
	return assets, meta, nil
}

// CreateAsset adds a sellable unit to a managed project.
func (c *Client) CreateAsset(ctx context.Context, projectID string, body map[string]any) (*project.SellableAsset, error) {
	var a project.SellableAsset
	if err := c.post(ctx, "/admin/projects/"+projectID+"/assets/", body, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// UpdateAsset applies a partial update to a sellable unit.
func (c *Client) UpdateAsset(ctx context.Context, id string, body map[string]any) (*project.SellableAsset, error) {
	var a project.SellableAsset
	if err := c.patch(ctx, "/admin/assets/"+id+"/", body, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// DeleteAsset removes a sellable unit.
func (c *Client) DeleteAsset(ctx context.Context, id string) error {
	return c.del(ctx, "/admin/assets/"+id+"/")
}

// TransitionAsset invokes a named status transition on a sellable unit.
func (c *Client) TransitionAsset(ctx context.Context, id, action string) (project.AssetStatus, error) {
	status, err := c.transition(ctx, "/admin/assets/"+id+"/"+action+"/")
	return project.AssetStatus(status), err
}

// AdminProjectContracts fetches the buyer contracts of a managed project.
func (c *Client) AdminProjectContracts(ctx context.Context, id string) ([]project.BuyerContract, error) {
	var contracts []project.BuyerContract
	if _, err := c.get(ctx, "/admin/projects/"+id+"/contracts/", &contracts); err != nil {
		return nil, err
	}
	return contracts, nil
}

// CreateContract creates a buyer contract for a reserved asset.
func (c *Client) CreateContract(ctx context.Context, body map[string]any) (*project.BuyerContract, error) {
	var bc project.BuyerContract
	if err := c.post(ctx, "/admin/contracts/", body, &bc); err != nil {
		return nil, err
	}
	return &bc, nil
}

// TransitionContract invokes a named status transition on a contract.
func (c *Client) TransitionContract(ctx context.Context, id, action string) (project.ContractStatus, error) {
	status, err := c.transition(ctx, "/admin/contracts/"+id+"/"+action+"/")
	return project.ContractStatus(status), err
}

// AdminContractPayments fetches the payment schedule of a managed contract.
func (c *Client) AdminContractPayments(ctx context.Context, id string) ([]project.PaymentScheduleItem, error) {
	var items []project.PaymentScheduleItem
	if _, err := c.get(ctx, "/admin/contracts/"+id+"/payments/", &items); err != nil {
		return nil, err
	}
	return items, nil
}

// CreatePayment adds a schedule item to a managed contract.
func (c *Client) CreatePayment(ctx context.Context, contractID string, body map[string]any) (*project.PaymentScheduleItem, error) {
	var item project.PaymentScheduleItem
	if err := c.post(ctx, "/admin/contracts/"+contractID+"/payments/", body, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// DeletePayment removes a schedule item.
func (c *Client) DeletePayment(ctx context.Context, id string) error {
	return c.del(ctx, "/admin/payments/"+id+"/")
}

// MarkPaymentPaid records a schedule item as paid.
func (c *Client) MarkPaymentPaid(ctx context.Context, id string) (*project.PaymentScheduleItem, error) {
	var item project.PaymentScheduleItem
	if err := c.post(ctx, "/admin/payments/"+id+"/mark_paid/", nil, &item); err != nil {
		return nil, err
	}
	return &item, nil
}
