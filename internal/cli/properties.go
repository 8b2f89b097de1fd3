package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/KodeaLabs/viventa/internal/filter"
)

func newPropertiesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "properties",
		Short: "Browse property listings",
	}
	cmd.AddCommand(
		newPropertiesListCmd(),
		newPropertiesShowCmd(),
		newPropertiesMineCmd(),
		newPropertiesSavedCmd(),
		newPropertiesSaveCmd(),
		newPropertiesCreateCmd(),
		newPropertiesUpdateCmd(),
		newPropertiesDeleteCmd(),
	)
	return cmd
}

func newPropertiesListCmd() *cobra.Command {
	var (
		search      string
		city        string
		listingType string
		minPrice    float64
		maxPrice    float64
		minBedrooms int
		page        int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List properties matching the given filters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var f filter.PropertyFilters
			if search != "" {
				f.Search = &search
			}
			if city != "" {
				f.City = &city
			}
			if listingType != "" {
				f.ListingType = &listingType
			}
			if cmd.Flags().Changed("min-price") {
				f.MinPrice = &minPrice
			}
			if cmd.Flags().Changed("max-price") {
				f.MaxPrice = &maxPrice
			}
			if cmd.Flags().Changed("min-bedrooms") {
				f.MinBedrooms = &minBedrooms
			}
			if page > 1 {
				f.Page = &page
			}

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			properties, meta, err := newAPIClient().ListProperties(ctx, f)
			if err != nil {
				return err
			}

			if isJSON() {
				return printJSON(properties)
			}
			if err := printPropertyTable(properties); err != nil {
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
	cmd.Flags().StringVar(&listingType, "listing-type", "", "sale or rent")
	cmd.Flags().Float64Var(&minPrice, "min-price", 0, "minimum price in USD")
	cmd.Flags().Float64Var(&maxPrice, "max-price", 0, "maximum price in USD")
	cmd.Flags().IntVar(&minBedrooms, "min-bedrooms", 0, "minimum bedrooms")
	cmd.Flags().IntVar(&page, "page", 1, "result page")

	return cmd
}

func newPropertiesShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <slug>",
		Short: "Show a property listing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			p, err := newAPIClient().GetProperty(ctx, args[0])
			if err != nil {
				return err
			}

			if isJSON() {
				return printJSON(p)
			}
			printPropertyDetail(p)
			return nil
		},
	}
}
