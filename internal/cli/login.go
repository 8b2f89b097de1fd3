package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func newLoginCmd() *cobra.Command {
	var token string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store an access token for authenticated commands",
		Long:  "Stores an access token issued by the identity provider. Obtain one from your account page on the web UI, then paste it here.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogin(token)
		},
	}

	cmd.Flags().StringVar(&token, "token", "", "access token (prompts when omitted)")

	return cmd
}

func runLogin(token string) error {
	if token == "" {
		fmt.Print("Paste your access token: ")
		reader := bufio.NewReader(os.Stdin)
		line, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
		token = strings.TrimSpace(line)
	}
	if err := validateToken(token); err != nil {
		return err
	}

	// Preserve other fields already in the config.
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cfg.Token = token
	if err := saveConfig(cfg); err != nil {
		return err
	}

	fmt.Println("Token saved.")
	return nil
}

func validateToken(token string) error {
	if token == "" {
		return fmt.Errorf("token must not be empty")
	}
	if strings.ContainsAny(token, " \t") {
		return fmt.Errorf("token must not contain whitespace")
	}
	return nil
}
