package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/KodeaLabs/viventa/internal/api"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the API endpoint and who is logged in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Printf("API:    %s\n", getAPIURL())

			if getToken() == "" {
				fmt.Println("Login:  not logged in")
				return nil
			}

			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			u, err := newAPIClient().CurrentUser(ctx)
			switch {
			case errors.Is(err, api.ErrUnauthenticated):
				fmt.Println("Login:  token expired or revoked")
				return nil
			case err != nil:
				return fmt.Errorf("checking session: %w", err)
			}

			fmt.Printf("Login:  %s (%s)\n", u.FullName, u.Email)
			fmt.Printf("Role:   %s\n", u.Role)
			return nil
		},
	}
}
