package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/KodeaLabs/viventa/internal/i18n"
	"github.com/KodeaLabs/viventa/internal/project"
)

func newContractsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contracts",
		Short: "View your purchase contracts (requires login)",
	}
	cmd.AddCommand(newContractsListCmd(), newContractsShowCmd(), newContractsCreateCmd())
	return cmd
}

func newContractsCreateCmd() *cobra.Command {
	var (
		assetID    string
		buyerName  string
		buyerEmail string
		price      float64
		initial    float64
		months     int
		date       string
		notes      string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a buyer contract for a reserved unit (developer only)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			body := map[string]any{
				"asset":       assetID,
				"buyer_name":  buyerName,
				"buyer_email": buyerEmail,
				"total_price": price,
			}
			if cmd.Flags().Changed("initial") {
				body["initial_payment"] = initial
			}
			if cmd.Flags().Changed("months") {
				body["payment_plan_months"] = months
			}
			if date != "" {
				body["contract_date"] = date
			}
			if notes != "" {
				body["notes"] = notes
			}

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			c, err := newAPIClient().CreateContract(ctx, body)
			if err != nil {
				return err
			}

			if isJSON() {
				return printJSON(c)
			}
			fmt.Printf("Created contract %s for %s (%s)\n",
				c.ID, c.BuyerName, c.Status.Label(i18n.English))
			return nil
		},
	}

	cmd.Flags().StringVar(&assetID, "asset", "", "reserved unit id")
	cmd.Flags().StringVar(&buyerName, "buyer-name", "", "buyer full name")
	cmd.Flags().StringVar(&buyerEmail, "buyer-email", "", "buyer email")
	cmd.Flags().Float64Var(&price, "price", 0, "total price in USD")
	cmd.Flags().Float64Var(&initial, "initial", 0, "initial payment in USD")
	cmd.Flags().IntVar(&months, "months", 0, "payment plan length in months")
	cmd.Flags().StringVar(&date, "date", "", "contract date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&notes, "notes", "", "internal notes")
	cmd.MarkFlagRequired("asset")
	cmd.MarkFlagRequired("buyer-name")
	cmd.MarkFlagRequired("buyer-email")
	cmd.MarkFlagRequired("price")

	return cmd
}

func newContractsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your contracts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			contracts, err := newAPIClient().MyContracts(ctx)
			if err != nil {
				return err
			}

			if isJSON() {
				return printJSON(contracts)
			}
			return printContractTable(contracts)
		},
	}
}

func newContractsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a contract with its payment schedule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			client := newAPIClient()
			contract, err := client.MyContract(ctx, args[0])
			if err != nil {
				return err
			}
			payments, err := client.MyContractPayments(ctx, args[0])
			if err != nil {
				return err
			}
			summary := project.SummarizePayments(payments)

			if isJSON() {
				return printJSON(struct {
					Contract any                    `json:"contract"`
					Payments any                    `json:"payments"`
					Summary  project.PaymentSummary `json:"summary"`
				}{contract, payments, summary})
			}

			printContractDetail(contract)
			if len(payments) > 0 {
				fmt.Println()
				if err := printPaymentTable(payments); err != nil {
					return err
				}
			}
			fmt.Println()
			fmt.Printf("Total:      $%s\n", formatAmount(summary.Total))
			fmt.Printf("Paid:       $%s\n", formatAmount(summary.Paid))
			fmt.Printf("Remaining:  $%s\n", formatAmount(summary.Remaining))
			return nil
		},
	}
}
