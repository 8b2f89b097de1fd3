package api

import (
	"context"

	"github.com/KodeaLabs/viventa/internal/project"
)

// MyContracts fetches the buyer contracts belonging to the current user.
func (c *Client) MyContracts(ctx context.Context) ([]project.BuyerContract, error) {
	var contracts []project.BuyerContract
	if _, err := c.get(ctx, "/my/contracts/", &contracts); err != nil {
		return nil, err
	}
	return contracts, nil
}

// MyContract fetches one of the current user's contracts by id.
func (c *Client) MyContract(ctx context.Context, id string) (*project.BuyerContract, error) {
	var bc project.BuyerContract
	if _, err := c.get(ctx, "/my/contracts/"+id+"/", &bc); err != nil {
		return nil, err
	}
	return &bc, nil
}

// MyContractPayments fetches the payment schedule of one of the current
// user's contracts.
func (c *Client) MyContractPayments(ctx context.Context, id string) ([]project.PaymentScheduleItem, error) {
	var items []project.PaymentScheduleItem
	if _, err := c.get(ctx, "/my/contracts/"+id+"/payments/", &items); err != nil {
		return nil, err
	}
	return items, nil
}
