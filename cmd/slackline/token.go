package main

import (
	"github.com/spf13/cobra"

	"github.com/co42/slackline/internal/records"
)

var tokenCmd = &cobra.Command{
	Use:     "token",
	Aliases: []string{"auth"},
	Short:   "Create and verify Slack tokens",
}

var tokenTestCmd = &cobra.Command{
	Use:   "test",
	Short: "Verify the current token",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		c, err := current.client()
		if err != nil {
			return err
		}
		resp, err := c.AuthTest(cmd.Context())
		if err != nil {
			return err
		}
		if err := current.printer.Print(records.NewAuthInfo(resp)); err != nil {
			return err
		}
		return current.printer.Success("Authentication successful")
	},
}

var tokenCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Show how to create a user token with the right scopes",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return current.printer.Print(records.NewTokenGuide())
	},
}

var tokenManifestCmd = &cobra.Command{
	Use:   "manifest",
	Short: "Print the Slack app manifest",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return current.printer.Print(records.Manifest{})
	},
}

func init() {
	tokenCmd.AddCommand(tokenTestCmd, tokenCreateCmd, tokenManifestCmd)
	rootCmd.AddCommand(tokenCmd)
}
