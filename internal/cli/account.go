package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func newAccountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Manage your profile (requires login)",
	}
	cmd.AddCommand(newAccountUpdateCmd(), newAccountBecomeAgentCmd())
	return cmd
}

func newAccountUpdateCmd() *cobra.Command {
	var (
		name     string
		language string
	)

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update your profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			body := map[string]any{}
			if cmd.Flags().Changed("name") {
				body["full_name"] = name
			}
			if cmd.Flags().Changed("language") {
				if language != "en" && language != "es" {
					return fmt.Errorf("language must be en or es")
				}
				body["preferred_language"] = language
			}
			if len(body) == 0 {
				return fmt.Errorf("nothing to update: set --name or --language")
			}

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			u, err := newAPIClient().UpdateProfile(ctx, body)
			if err != nil {
				return err
			}

			if isJSON() {
				return printJSON(u)
			}
			fmt.Printf("Profile updated: %s (%s)\n", u.FullName, u.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "full name")
	cmd.Flags().StringVar(&language, "language", "", "preferred language (en|es)")

	return cmd
}

func newAccountBecomeAgentCmd() *cobra.Command {
	var (
		license  string
		phone    string
		whatsapp string
		company  string
	)

	cmd := &cobra.Command{
		Use:   "become-agent",
		Short: "Upgrade your account to an agent profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			body := map[string]any{}
			if license != "" {
				body["license_number"] = license
			}
			if phone != "" {
				body["phone"] = phone
			}
			if whatsapp != "" {
				body["whatsapp"] = whatsapp
			}
			if company != "" {
				body["company_name"] = company
			}

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			u, err := newAPIClient().BecomeAgent(ctx, body)
			if err != nil {
				return err
			}

			if isJSON() {
				return printJSON(u)
			}
			fmt.Printf("You are now registered as an agent (role: %s)\n", u.Role)
			return nil
		},
	}

	cmd.Flags().StringVar(&license, "license", "", "real estate license number")
	cmd.Flags().StringVar(&phone, "phone", "", "contact phone")
	cmd.Flags().StringVar(&whatsapp, "whatsapp", "", "WhatsApp number")
	cmd.Flags().StringVar(&company, "company", "", "company name")

	return cmd
}
