package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/KodeaLabs/viventa/internal/i18n"
	"github.com/KodeaLabs/viventa/internal/inquiry"
)

func newInquiriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inquiries",
		Short: "Triage buyer inquiries on your listings (requires login)",
	}
	cmd.AddCommand(
		newInquiriesListCmd(),
		newInquiriesStatsCmd(),
		newInquiriesUpdateCmd(),
	)
	return cmd
}

func checkInquiryStatus(s string) error {
	if s != "" && !inquiry.ValidStatus(inquiry.Status(s)) {
		return fmt.Errorf("unknown status %q (one of: new, contacted, in_progress, qualified, closed, spam)", s)
	}
	return nil
}

func newInquiriesListCmd() *cobra.Command {
	var (
		status string
		page   int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List inquiries on your listings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkInquiryStatus(status); err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			inquiries, meta, err := newAPIClient().ListAgentInquiries(ctx, status, page)
			if err != nil {
				return err
			}

			if isJSON() {
				return printJSON(inquiries)
			}
			if err := printInquiryTable(inquiries); err != nil {
				return err
			}
			if meta != nil && meta.TotalPages > 1 {
				fmt.Printf("\nPage %d of %d (%d total)\n", meta.Page, meta.TotalPages, meta.TotalCount)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "filter by triage status")
	cmd.Flags().IntVar(&page, "page", 1, "result page")

	return cmd
}

func newInquiriesStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show inquiry counts per triage status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			stats, err := newAPIClient().InquiryStats(ctx)
			if err != nil {
				return err
			}

			if isJSON() {
				return printJSON(stats)
			}
			total := 0
			for _, s := range inquiry.Statuses {
				fmt.Printf("%-12s %d\n", s.Label(i18n.English), stats[string(s)])
				total += stats[string(s)]
			}
			fmt.Printf("%-12s %d\n", "Total", total)
			return nil
		},
	}
}

func newInquiriesUpdateCmd() *cobra.Command {
	var (
		status string
		notes  string
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update an inquiry's triage status or notes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkInquiryStatus(status); err != nil {
				return err
			}

			body := map[string]any{}
			if status != "" {
				body["status"] = status
			}
			if cmd.Flags().Changed("notes") {
				body["internal_notes"] = notes
			}
			if len(body) == 0 {
				return fmt.Errorf("nothing to update: set --status or --notes")
			}

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			inq, err := newAPIClient().UpdateInquiry(ctx, args[0], body)
			if err != nil {
				return err
			}

			if isJSON() {
				return printJSON(inq)
			}
			fmt.Printf("Inquiry from %s is now: %s\n", inq.FullName, inq.Status.Label(i18n.English))
			return nil
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "new triage status")
	cmd.Flags().StringVar(&notes, "notes", "", "internal notes")

	return cmd
}
