package main

import (
	"github.com/spf13/cobra"

	"github.com/co42/slackline/internal/channels"
	"github.com/co42/slackline/internal/output"
	"github.com/co42/slackline/internal/records"
	"github.com/co42/slackline/internal/slack"
	"github.com/co42/slackline/internal/unread"
)

var (
	meLimit       int
	meDMs         bool
	meUnread      bool
	meCheckUnread bool
	meInclude     []string
	meExclude     []string
)

var meCmd = &cobra.Command{
	Use:   "me",
	Short: "Information about the current user",
}

var meChannelsCmd = &cobra.Command{
	Use:   "channels",
	Short: "List conversations you are a member of",
	Long: `List conversations you are a member of.

--unread checks every conversation and keeps only those with messages newer
than your last-read marker (or a positive unread counter). --check-unread
runs the same check but keeps every conversation, annotating has_unread.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		c, err := current.client()
		if err != nil {
			return err
		}
		types := []string{slack.TypePublic, slack.TypePrivate}
		if meDMs {
			types = append(types, slack.TypeIM, slack.TypeMPIM)
		}
		chs, err := c.ConversationsForUser(cmd.Context(), slack.ConversationsQuery{
			Types:           types,
			ExcludeArchived: true,
			Limit:           meLimit,
		})
		if err != nil {
			return err
		}

		list := channels.Select(current.filter(meInclude, meExclude), records.NewMyChannels(chs),
			func(ch records.MyChannel) (string, string) { return ch.ID, ch.Name })

		title := "My Channels"
		if meUnread || meCheckUnread {
			if err := current.printer.Status("Checking for unread messages..."); err != nil {
				return err
			}
			agg := unread.New(c,
				unread.WithConcurrency(current.cfg.Concurrency),
				unread.WithLogger(current.log),
			)
			list = unread.Annotate(cmd.Context(), agg, list, meUnread)
		}
		if meUnread {
			title = "Unread Channels"
		}
		return output.PrintList(current.printer, list, title)
	},
}

func init() {
	meChannelsCmd.Flags().IntVarP(&meLimit, "limit", "l", DefaultListLimit, "maximum number of conversations")
	meChannelsCmd.Flags().BoolVar(&meDMs, "dms", false, "include direct and group-direct messages")
	meChannelsCmd.Flags().BoolVar(&meUnread, "unread", false, "only conversations with unread messages")
	meChannelsCmd.Flags().BoolVar(&meCheckUnread, "check-unread", false, "check unread status without filtering")
	meChannelsCmd.Flags().StringSliceVar(&meInclude, "include", nil, "only channels matching these glob patterns")
	meChannelsCmd.Flags().StringSliceVar(&meExclude, "exclude", nil, "skip channels matching these glob patterns")

	meCmd.AddCommand(meChannelsCmd)
	rootCmd.AddCommand(meCmd)
}
