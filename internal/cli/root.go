// Package cli defines the cobra command tree for the viventa tool.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/KodeaLabs/viventa/internal/api"
)

var flagFormat string

// NewRootCmd creates the root cobra command with global flags.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "viventa",
		Short:         "Browse the Viventa real estate marketplace",
		Long:          "Command line access to the Viventa marketplace: browse listings, projects and agents, manage development projects, and run the web front end.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&flagFormat, "format", "text", "output format (text|json)")

	root.AddCommand(
		newPropertiesCmd(),
		newProjectsCmd(),
		newAssetsCmd(),
		newContractsCmd(),
		newPaymentsCmd(),
		newInquiriesCmd(),
		newAgentsCmd(),
		newAccountCmd(),
		newServeCmd(),
		newLoginCmd(),
		newLogoutCmd(),
		newStatusCmd(),
		newVersionCmd(),
	)

	return root
}

// newAPIClient creates a client for the marketplace API with any stored
// token installed.
func newAPIClient() *api.Client {
	client := api.New(getAPIURL())
	if token := getToken(); token != "" {
		client.SetAccessToken(token)
	}
	return client
}

// isJSON returns true if the --format flag is set to json.
func isJSON() bool {
	return flagFormat == "json"
}
