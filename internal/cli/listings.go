package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// Listing management for logged-in agents, grouped under the properties
// command next to the public browsing subcommands.

func newPropertiesMineCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mine",
		Short: "List your own listings in any status (requires login)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			properties, err := newAPIClient().MyProperties(ctx)
			if err != nil {
				return err
			}

			if isJSON() {
				return printJSON(properties)
			}
			return printPropertyTable(properties)
		},
	}
}

func newPropertiesSavedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "saved",
		Short: "List the properties you have saved (requires login)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			properties, err := newAPIClient().SavedProperties(ctx)
			if err != nil {
				return err
			}

			if isJSON() {
				return printJSON(properties)
			}
			return printPropertyTable(properties)
		},
	}
}

func newPropertiesSaveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "save <slug>",
		Short: "Save a property, or remove it if already saved",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			saved, err := newAPIClient().ToggleSaveProperty(ctx, args[0])
			if err != nil {
				return err
			}

			if isJSON() {
				return printJSON(map[string]bool{"saved": saved})
			}
			if saved {
				fmt.Printf("Saved %s.\n", args[0])
			} else {
				fmt.Printf("Removed %s from saved.\n", args[0])
			}
			return nil
		},
	}
}

// listingFlags holds the fields shared by the create and update commands.
type listingFlags struct {
	title       string
	description string
	price       float64
	propType    string
	listingType string
	city        string
	state       string
	address     string
	bedrooms    int
	bathrooms   float64
	area        float64
}

func (lf *listingFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&lf.title, "title", "", "listing title")
	cmd.Flags().StringVar(&lf.description, "description", "", "listing description")
	cmd.Flags().Float64Var(&lf.price, "price", 0, "price in USD")
	cmd.Flags().StringVar(&lf.propType, "property-type", "", "property type (house, apartment, ...)")
	cmd.Flags().StringVar(&lf.listingType, "listing-type", "", "sale or rent")
	cmd.Flags().StringVar(&lf.city, "city", "", "city")
	cmd.Flags().StringVar(&lf.state, "state", "", "state")
	cmd.Flags().StringVar(&lf.address, "address", "", "street address")
	cmd.Flags().IntVar(&lf.bedrooms, "bedrooms", 0, "number of bedrooms")
	cmd.Flags().Float64Var(&lf.bathrooms, "bathrooms", 0, "number of bathrooms")
	cmd.Flags().Float64Var(&lf.area, "area", 0, "area in square meters")
}

// body collects only the flags the caller actually set, so updates stay
// partial.
func (lf *listingFlags) body(cmd *cobra.Command) map[string]any {
	body := map[string]any{}
	set := func(flag, field string, value any) {
		if cmd.Flags().Changed(flag) {
			body[field] = value
		}
	}
	set("title", "title", lf.title)
	set("description", "description", lf.description)
	set("price", "price", lf.price)
	set("property-type", "property_type", lf.propType)
	set("listing-type", "listing_type", lf.listingType)
	set("city", "city", lf.city)
	set("state", "state", lf.state)
	set("address", "address", lf.address)
	set("bedrooms", "bedrooms", lf.bedrooms)
	set("bathrooms", "bathrooms", lf.bathrooms)
	set("area", "area_sqm", lf.area)
	return body
}

func newPropertiesCreateCmd() *cobra.Command {
	var lf listingFlags

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a listing (requires an agent account)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			p, err := newAPIClient().CreateProperty(ctx, lf.body(cmd))
			if err != nil {
				return err
			}

			if isJSON() {
				return printJSON(p)
			}
			fmt.Printf("Created listing %s\n", p.Slug)
			return nil
		},
	}

	lf.register(cmd)
	cmd.MarkFlagRequired("title")
	cmd.MarkFlagRequired("price")
	cmd.MarkFlagRequired("city")

	return cmd
}

func newPropertiesUpdateCmd() *cobra.Command {
	var lf listingFlags

	cmd := &cobra.Command{
		Use:   "update <slug>",
		Short: "Update one of your listings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body := lf.body(cmd)
			if len(body) == 0 {
				return fmt.Errorf("nothing to update: set at least one flag")
			}

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			p, err := newAPIClient().UpdateProperty(ctx, args[0], body)
			if err != nil {
				return err
			}

			if isJSON() {
				return printJSON(p)
			}
			fmt.Printf("Updated listing %s\n", p.Slug)
			return nil
		},
	}

	lf.register(cmd)

	return cmd
}

func newPropertiesDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <slug>",
		Short: "Delete one of your listings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			if err := newAPIClient().DeleteProperty(ctx, args[0]); err != nil {
				return err
			}
			fmt.Println("Deleted.")
			return nil
		},
	}
}
