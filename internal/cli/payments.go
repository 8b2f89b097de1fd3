package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/KodeaLabs/viventa/internal/i18n"
	"github.com/KodeaLabs/viventa/internal/project"
)

func newPaymentsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "payments",
		Short: "Manage contract payment schedules (requires login)",
	}
	cmd.AddCommand(
		newPaymentsListCmd(),
		newPaymentsAddCmd(),
		newPaymentsMarkPaidCmd(),
		newPaymentsDeleteCmd(),
	)
	return cmd
}

func newPaymentsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <contract-id>",
		Short: "List a contract's payment schedule with totals",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			payments, err := newAPIClient().AdminContractPayments(ctx, args[0])
			if err != nil {
				return err
			}
			summary := project.SummarizePayments(payments)

			if isJSON() {
				return printJSON(struct {
					Payments any                    `json:"payments"`
					Summary  project.PaymentSummary `json:"summary"`
				}{payments, summary})
			}

			if err := printPaymentTable(payments); err != nil {
				return err
			}
			fmt.Println()
			fmt.Printf("Total:      $%s\n", formatAmount(summary.Total))
			fmt.Printf("Paid:       $%s\n", formatAmount(summary.Paid))
			fmt.Printf("Remaining:  $%s\n", formatAmount(summary.Remaining))
			return nil
		},
	}
}

func validPaymentConcept(s string) bool {
	concepts := []project.PaymentConcept{
		project.ConceptInitial,
		project.ConceptMonthly,
		project.ConceptMilestone,
		project.ConceptFinal,
		project.ConceptOther,
	}
	for _, c := range concepts {
		if project.PaymentConcept(s) == c {
			return true
		}
	}
	return false
}

func newPaymentsAddCmd() *cobra.Command {
	var (
		amount  float64
		concept string
		dueDate string
	)

	cmd := &cobra.Command{
		Use:   "add <contract-id>",
		Short: "Add a payment to a contract's schedule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !validPaymentConcept(concept) {
				return fmt.Errorf("unknown concept %q (one of: initial, monthly, milestone, final, other)", concept)
			}

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			item, err := newAPIClient().CreatePayment(ctx, args[0], map[string]any{
				"amount_usd": amount,
				"concept":    concept,
				"due_date":   dueDate,
			})
			if err != nil {
				return err
			}

			if isJSON() {
				return printJSON(item)
			}
			fmt.Printf("Added %s payment of $%s due %s\n",
				item.Concept.Label(i18n.English), formatAmount(item.AmountUSD), item.DueDate)
			return nil
		},
	}

	cmd.Flags().Float64Var(&amount, "amount", 0, "amount in USD")
	cmd.Flags().StringVar(&concept, "concept", "", "payment concept (initial, monthly, milestone, final, other)")
	cmd.Flags().StringVar(&dueDate, "due-date", "", "due date (YYYY-MM-DD)")
	cmd.MarkFlagRequired("amount")
	cmd.MarkFlagRequired("concept")
	cmd.MarkFlagRequired("due-date")

	return cmd
}

func newPaymentsMarkPaidCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mark-paid <id>",
		Short: "Record a scheduled payment as paid",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			item, err := newAPIClient().MarkPaymentPaid(ctx, args[0])
			if err != nil {
				return err
			}

			if isJSON() {
				return printJSON(item)
			}
			fmt.Printf("Payment of $%s is now: %s\n",
				formatAmount(item.AmountUSD), item.Status.Label(i18n.English))
			return nil
		},
	}
}

func newPaymentsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a scheduled payment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			if err := newAPIClient().DeletePayment(ctx, args[0]); err != nil {
				return err
			}
			fmt.Println("Deleted.")
			return nil
		},
	}
}
