package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"
)

func newAgentsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "agents",
		Short: "Browse the agent directory",
	}

	var search string
	list := &cobra.Command{
		Use:   "list",
		Short: "List agents and agencies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			agents, _, err := newAPIClient().ListAgents(ctx, search, 1)
			if err != nil {
				return err
			}

			if isJSON() {
				return printJSON(agents)
			}
			return printAgentTable(agents)
		},
	}
	list.Flags().StringVar(&search, "search", "", "free text search")

	cmd.AddCommand(list)
	return cmd
}
