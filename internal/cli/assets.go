package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/KodeaLabs/viventa/internal/i18n"
	"github.com/KodeaLabs/viventa/internal/project"
	"github.com/KodeaLabs/viventa/internal/transition"
)

func newAssetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assets",
		Short: "Manage sellable units in your projects (requires login)",
	}
	cmd.AddCommand(
		newAssetsCreateCmd(),
		newAssetsUpdateCmd(),
		newAssetsDeleteCmd(),
		newAssetsTransitionCmd(),
	)
	return cmd
}

func validAssetType(s string) bool {
	for _, t := range project.AssetTypes {
		if project.AssetType(s) == t {
			return true
		}
	}
	return false
}

func newAssetsCreateCmd() *cobra.Command {
	var (
		projectID  string
		identifier string
		assetType  string
		price      float64
		floor      int
		area       float64
		bedrooms   int
		bathrooms  float64
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Add a sellable unit to one of your projects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !validAssetType(assetType) {
				return fmt.Errorf("unknown type %q (one of: apartment, parking, storage, commercial, land_lot)", assetType)
			}

			body := map[string]any{
				"identifier": identifier,
				"asset_type": assetType,
				"price_usd":  price,
			}
			if cmd.Flags().Changed("floor") {
				body["floor"] = floor
			}
			if cmd.Flags().Changed("area") {
				body["area_sqm"] = area
			}
			if cmd.Flags().Changed("bedrooms") {
				body["bedrooms"] = bedrooms
			}
			if cmd.Flags().Changed("bathrooms") {
				body["bathrooms"] = bathrooms
			}

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			a, err := newAPIClient().CreateAsset(ctx, projectID, body)
			if err != nil {
				return err
			}

			if isJSON() {
				return printJSON(a)
			}
			fmt.Printf("Created unit %s (%s)\n", a.Identifier, a.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&projectID, "project", "", "project id")
	cmd.Flags().StringVar(&identifier, "identifier", "", "unit identifier (e.g. A-301)")
	cmd.Flags().StringVar(&assetType, "type", "", "unit type (apartment, parking, storage, commercial, land_lot)")
	cmd.Flags().Float64Var(&price, "price", 0, "price in USD")
	cmd.Flags().IntVar(&floor, "floor", 0, "floor number")
	cmd.Flags().Float64Var(&area, "area", 0, "area in square meters")
	cmd.Flags().IntVar(&bedrooms, "bedrooms", 0, "number of bedrooms")
	cmd.Flags().Float64Var(&bathrooms, "bathrooms", 0, "number of bathrooms")
	cmd.MarkFlagRequired("project")
	cmd.MarkFlagRequired("identifier")
	cmd.MarkFlagRequired("type")
	cmd.MarkFlagRequired("price")

	return cmd
}

func newAssetsUpdateCmd() *cobra.Command {
	var (
		identifier string
		price      float64
		floor      int
		area       float64
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a sellable unit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body := map[string]any{}
			if cmd.Flags().Changed("identifier") {
				body["identifier"] = identifier
			}
			if cmd.Flags().Changed("price") {
				body["price_usd"] = price
			}
			if cmd.Flags().Changed("floor") {
				body["floor"] = floor
			}
			if cmd.Flags().Changed("area") {
				body["area_sqm"] = area
			}
			if len(body) == 0 {
				return fmt.Errorf("nothing to update: set at least one flag")
			}

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			a, err := newAPIClient().UpdateAsset(ctx, args[0], body)
			if err != nil {
				return err
			}

			if isJSON() {
				return printJSON(a)
			}
			fmt.Printf("Updated unit %s\n", a.Identifier)
			return nil
		},
	}

	cmd.Flags().StringVar(&identifier, "identifier", "", "unit identifier")
	cmd.Flags().Float64Var(&price, "price", 0, "price in USD")
	cmd.Flags().IntVar(&floor, "floor", 0, "floor number")
	cmd.Flags().Float64Var(&area, "area", 0, "area in square meters")

	return cmd
}

func newAssetsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a sellable unit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			if err := newAPIClient().DeleteAsset(ctx, args[0]); err != nil {
				return err
			}
			fmt.Println("Deleted.")
			return nil
		},
	}
}

func newAssetsTransitionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "transition <id> <action>",
		Short: "Apply a status transition to a unit",
		Long:  "Applies a named status transition (reserve, mark_sold, release, deliver). The server validates the transition.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			var status project.AssetStatus
			err := transition.NewInvoker().Invoke(ctx, "asset:"+args[0],
				func(ctx context.Context) error {
					var err error
					status, err = newAPIClient().TransitionAsset(ctx, args[0], args[1])
					return err
				}, nil)
			if err != nil {
				return err
			}

			if isJSON() {
				return printJSON(map[string]string{"status": string(status)})
			}
			fmt.Printf("Unit is now: %s\n", status.Label(i18n.English))
			return nil
		},
	}
}
