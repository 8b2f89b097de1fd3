package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/KodeaLabs/viventa/internal/filter"
	"github.com/KodeaLabs/viventa/internal/i18n"
	"github.com/KodeaLabs/viventa/internal/project"
	"github.com/KodeaLabs/viventa/internal/transition"
)

func newProjectsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "projects",
		Short: "Browse and manage development projects",
	}
	cmd.AddCommand(
		newProjectsListCmd(),
		newProjectsShowCmd(),
		newProjectsCreateCmd(),
		newProjectsUpdateCmd(),
		newProjectsDeleteCmd(),
		newProjectsTransitionCmd(),
	)
	return cmd
}

func newProjectsListCmd() *cobra.Command {
	var (
		search string
		city   string
		status string
		mine   bool
		page   int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List development projects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var f filter.ProjectFilters
			if search != "" {
				f.Search = &search
			}
			if city != "" {
				f.City = &city
			}
			if status != "" {
				f.Status = &status
			}
			if page > 1 {
				f.Page = &page
			}

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			client := newAPIClient()
			list := client.ListProjects
			if mine {
				list = client.AdminListProjects
			}

			projects, meta, err := list(ctx, f)
			if err != nil {
				return err
			}

			if isJSON() {
				return printJSON(projects)
			}
			if err := printProjectTable(projects); err != nil {
				return err
			}
			if meta != nil && meta.TotalPages > 1 {
				fmt.Printf("\nPage %d of %d (%d total)\n", meta.Page, meta.TotalPages, meta.TotalCount)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "free text search")
	cmd.Flags().StringVar(&city, "city", "", "filter by city")
	cmd.Flags().StringVar(&status, "status", "", "filter by status")
	cmd.Flags().BoolVar(&mine, "mine", false, "list your own projects (requires login)")
	cmd.Flags().IntVar(&page, "page", 1, "result page")

	return cmd
}

func newProjectsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <slug>",
		Short: "Show a development project with its available units",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			client := newAPIClient()
			p, err := client.GetProject(ctx, args[0])
			if err != nil {
				return err
			}
			assets, _, err := client.ProjectAssets(ctx, args[0], filter.AssetFilters{})
			if err != nil {
				return err
			}

			if isJSON() {
				return printJSON(struct {
					Project any `json:"project"`
					Assets  any `json:"assets"`
				}{p, assets})
			}

			printProjectDetail(p)
			if len(assets) > 0 {
				fmt.Println()
				if err := printAssetTable(assets); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newProjectsTransitionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "transition <id> <action>",
		Short: "Apply a status transition to one of your projects",
		Long:  "Applies a named status transition (start_presale, start_construction, mark_delivered, cancel_project). The server validates the transition; an invalid one is rejected with an explanation.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			var status project.Status
			err := transition.NewInvoker().Invoke(ctx, "project:"+args[0],
				func(ctx context.Context) error {
					var err error
					status, err = newAPIClient().TransitionProject(ctx, args[0], args[1])
					return err
				}, nil)
			if err != nil {
				return err
			}

			if isJSON() {
				return printJSON(map[string]string{"status": string(status)})
			}
			fmt.Printf("Project is now: %s\n", status.Label(i18n.English))
			return nil
		},
	}
}

func newProjectsCreateCmd() *cobra.Command {
	var (
		title      string
		titleES    string
		desc       string
		city       string
		state      string
		address    string
		totalUnits int
		delivery   string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a draft project (requires login)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			body := map[string]any{
				"title": title,
				"city":  city,
				"state": state,
			}
			if titleES != "" {
				body["title_es"] = titleES
			}
			if desc != "" {
				body["description"] = desc
			}
			if address != "" {
				body["address"] = address
			}
			if cmd.Flags().Changed("total-units") {
				body["total_units"] = totalUnits
			}
			if delivery != "" {
				body["delivery_date"] = delivery
			}

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			p, err := newAPIClient().CreateProject(ctx, body)
			if err != nil {
				return err
			}

			if isJSON() {
				return printJSON(p)
			}
			fmt.Printf("Created project %s (%s)\n", p.Slug, p.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "project title")
	cmd.Flags().StringVar(&titleES, "title-es", "", "Spanish title")
	cmd.Flags().StringVar(&desc, "description", "", "project description")
	cmd.Flags().StringVar(&city, "city", "", "city")
	cmd.Flags().StringVar(&state, "state", "", "state")
	cmd.Flags().StringVar(&address, "address", "", "street address")
	cmd.Flags().IntVar(&totalUnits, "total-units", 0, "total number of units")
	cmd.Flags().StringVar(&delivery, "delivery-date", "", "expected delivery date (YYYY-MM-DD)")
	cmd.MarkFlagRequired("title")
	cmd.MarkFlagRequired("city")
	cmd.MarkFlagRequired("state")

	return cmd
}

func newProjectsUpdateCmd() *cobra.Command {
	var (
		title    string
		titleES  string
		desc     string
		address  string
		delivery string
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update one of your projects",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body := map[string]any{}
			if cmd.Flags().Changed("title") {
				body["title"] = title
			}
			if cmd.Flags().Changed("title-es") {
				body["title_es"] = titleES
			}
			if cmd.Flags().Changed("description") {
				body["description"] = desc
			}
			if cmd.Flags().Changed("address") {
				body["address"] = address
			}
			if cmd.Flags().Changed("delivery-date") {
				body["delivery_date"] = delivery
			}
			if len(body) == 0 {
				return fmt.Errorf("nothing to update: set at least one flag")
			}

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			p, err := newAPIClient().UpdateProject(ctx, args[0], body)
			if err != nil {
				return err
			}

			if isJSON() {
				return printJSON(p)
			}
			fmt.Printf("Updated project %s\n", p.Slug)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "project title")
	cmd.Flags().StringVar(&titleES, "title-es", "", "Spanish title")
	cmd.Flags().StringVar(&desc, "description", "", "project description")
	cmd.Flags().StringVar(&address, "address", "", "street address")
	cmd.Flags().StringVar(&delivery, "delivery-date", "", "expected delivery date (YYYY-MM-DD)")

	return cmd
}

func newProjectsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete one of your projects",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			if err := newAPIClient().DeleteProject(ctx, args[0]); err != nil {
				return err
			}
			fmt.Println("Deleted.")
			return nil
		},
	}
}
