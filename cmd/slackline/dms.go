package main

import (
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/co42/slackline/internal/output"
	"github.com/co42/slackline/internal/records"
	"github.com/co42/slackline/internal/slack"
)

var (
	dmsLimit        int
	dmsResolve      bool
	dmsHistoryLimit int
)

var dmsCmd = &cobra.Command{
	Use:   "dms",
	Short: "Read direct messages",
}

var dmsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List direct and group-direct conversations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		c, err := current.client()
		if err != nil {
			return err
		}
		chs, err := c.ConversationsForUser(cmd.Context(), slack.ConversationsQuery{
			Types:           []string{slack.TypeIM, slack.TypeMPIM},
			ExcludeArchived: true,
			Limit:           dmsLimit,
		})
		if err != nil {
			return err
		}
		dms := records.NewDMConversations(chs)
		if dmsResolve {
			ids := lo.Map(dms, func(d records.DMConversation, _ int) string {
				return lo.FromPtrOr(d.UserID, "")
			})
			for i, name := range current.resolveNames(cmd.Context(), c, ids) {
				if ids[i] != "" && name != ids[i] {
					dms[i].UserName = &name
				}
			}
		}
		return output.PrintList(current.printer, dms, "Direct Messages")
	},
}

var dmsHistoryCmd = &cobra.Command{
	Use:   "history <dm-channel>",
	Short: "Show recent messages in a DM (pass the D... channel ID, not a user ID)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := current.client()
		if err != nil {
			return err
		}
		msgs, err := c.History(cmd.Context(), slack.HistoryQuery{ChannelID: args[0], Limit: dmsHistoryLimit})
		if err != nil {
			return err
		}
		return output.PrintList(current.printer, records.NewDMMessages(msgs), "DM history in "+args[0])
	},
}

func init() {
	dmsListCmd.Flags().IntVarP(&dmsLimit, "limit", "l", DefaultDMLimit, "maximum number of conversations")
	dmsListCmd.Flags().BoolVar(&dmsResolve, "resolve", false, "resolve user IDs to user names")

	dmsHistoryCmd.Flags().IntVarP(&dmsHistoryLimit, "limit", "l", DefaultHistoryLimit, "maximum number of messages")

	dmsCmd.AddCommand(dmsListCmd, dmsHistoryCmd)
	rootCmd.AddCommand(dmsCmd)
}
