package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/co42/slackline/internal/output"
	"github.com/co42/slackline/internal/records"
)

var usersLimit int

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "List and inspect users",
}

var usersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List active users",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		c, err := current.client()
		if err != nil {
			return err
		}
		users, err := c.Users(cmd.Context(), usersLimit)
		if err != nil {
			return err
		}
		return output.PrintList(current.printer, records.ActiveUsers(users), "Users")
	},
}

var usersSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Find users by name, display name or email",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := current.client()
		if err != nil {
			return err
		}
		users, err := c.Users(cmd.Context(), UserSearchPageSize)
		if err != nil {
			return err
		}
		matches := records.MatchUsers(records.ActiveUsers(users), args[0])
		return output.PrintList(current.printer, matches, fmt.Sprintf("Users matching '%s'", args[0]))
	},
}

var usersInfoCmd = &cobra.Command{
	Use:   "info <user>",
	Short: "Show a user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := current.client()
		if err != nil {
			return err
		}
		u, err := c.UserInfo(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return current.printer.Print(records.NewUserInfo(*u))
	},
}

var usersPresenceCmd = &cobra.Command{
	Use:   "presence <user>",
	Short: "Show whether a user is online",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := current.client()
		if err != nil {
			return err
		}
		p, err := c.Presence(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return current.printer.Print(records.NewPresenceInfo(args[0], p))
	},
}

func init() {
	usersListCmd.Flags().IntVarP(&usersLimit, "limit", "l", DefaultListLimit, "maximum number of users")

	usersCmd.AddCommand(usersListCmd, usersSearchCmd, usersInfoCmd, usersPresenceCmd)
	rootCmd.AddCommand(usersCmd)
}
