package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/co42/slackline/internal/output"
	"github.com/co42/slackline/internal/records"
)

var searchLimit int

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search the workspace",
}

var searchMessagesCmd = &cobra.Command{
	Use:   "messages <query>",
	Short: "Search messages, newest first (needs a user token)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := current.client()
		if err != nil {
			return err
		}
		res, err := c.SearchMessages(cmd.Context(), args[0], searchLimit)
		if err != nil {
			return err
		}
		title := fmt.Sprintf("Search results for '%s' (%d total)", args[0], res.Total)
		return output.PrintList(current.printer, records.NewSearchResults(res.Matches), title)
	},
}

func init() {
	searchMessagesCmd.Flags().IntVarP(&searchLimit, "limit", "l", DefaultSearchLimit, "maximum number of results")

	searchCmd.AddCommand(searchMessagesCmd)
	rootCmd.AddCommand(searchCmd)
}
