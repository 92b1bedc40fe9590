package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/co42/slackline/internal/channels"
	"github.com/co42/slackline/internal/output"
	"github.com/co42/slackline/internal/records"
	"github.com/co42/slackline/internal/slack"
)

// Default page sizes.
const (
	DefaultListLimit    = 100
	DefaultHistoryLimit = 20
	DefaultDMLimit      = 50
	DefaultSearchLimit  = 20
	DefaultFilesLimit   = 20
	UserSearchPageSize  = 1000
)

var (
	channelsLimit   int
	channelsInclude []string
	channelsExclude []string
	historyLimit    int
	historyDate     string
	membersLimit    int
	membersResolve  bool
)

var channelsCmd = &cobra.Command{
	Use:   "channels",
	Short: "List and inspect channels",
}

var channelsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List public channels",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		c, err := current.client()
		if err != nil {
			return err
		}
		chs, err := c.Conversations(cmd.Context(), slack.ConversationsQuery{
			ExcludeArchived: true,
			Limit:           channelsLimit,
		})
		if err != nil {
			return err
		}
		list := channels.Select(current.filter(channelsInclude, channelsExclude), records.NewChannelInfos(chs),
			func(ch records.ChannelInfo) (string, string) { return ch.ID, ch.Name })
		return output.PrintList(current.printer, list, "Channels")
	},
}

var channelsInfoCmd = &cobra.Command{
	Use:   "info <channel>",
	Short: "Show a channel",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := current.client()
		if err != nil {
			return err
		}
		ch, err := c.ConversationInfo(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return current.printer.Print(records.NewChannelInfo(*ch))
	},
}

var channelsHistoryCmd = &cobra.Command{
	Use:   "history <channel>",
	Short: "Show recent messages in a channel",
	Long: `Show recent messages in a channel, newest first.

With --date, only messages from that day (midnight to midnight in the
configured timezone) are shown.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		q := slack.HistoryQuery{ChannelID: args[0], Limit: historyLimit}
		if historyDate != "" {
			start, end, err := slack.DayBounds(historyDate, current.cfg.Timezone)
			if err != nil {
				return fmt.Errorf("--date: %w", err)
			}
			q.Oldest, q.Latest = slack.ToTimestamp(start), slack.ToTimestamp(end)
		}
		c, err := current.client()
		if err != nil {
			return err
		}
		msgs, err := c.History(cmd.Context(), q)
		if err != nil {
			return err
		}
		return output.PrintList(current.printer, records.NewMessageInfos(msgs), "Messages in "+args[0])
	},
}

var channelsMembersCmd = &cobra.Command{
	Use:   "members <channel>",
	Short: "List channel members",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := current.client()
		if err != nil {
			return err
		}
		ids, err := c.Members(cmd.Context(), args[0], membersLimit)
		if err != nil {
			return err
		}
		members := records.NewMemberInfos(ids)
		if membersResolve {
			for i, name := range current.resolveNames(cmd.Context(), c, ids) {
				if name != ids[i] {
					members[i].Name = &name
				}
			}
		}
		return output.PrintList(current.printer, members, "Members of "+args[0])
	},
}

// filter builds a channel filter from flags, falling back to the config
// file patterns when no flag is given.
func (a *app) filter(include, exclude []string) *channels.Filter {
	if len(include) == 0 && len(exclude) == 0 {
		return channels.NewFilter(a.cfg.Include, a.cfg.Exclude)
	}
	return channels.NewFilter(include, exclude)
}

func init() {
	channelsListCmd.Flags().IntVarP(&channelsLimit, "limit", "l", DefaultListLimit, "maximum number of channels")
	channelsListCmd.Flags().StringSliceVar(&channelsInclude, "include", nil, "only channels matching these glob patterns")
	channelsListCmd.Flags().StringSliceVar(&channelsExclude, "exclude", nil, "skip channels matching these glob patterns")

	channelsHistoryCmd.Flags().IntVarP(&historyLimit, "limit", "l", DefaultHistoryLimit, "maximum number of messages")
	channelsHistoryCmd.Flags().StringVar(&historyDate, "date", "", "only messages from this day (YYYY-MM-DD)")

	channelsMembersCmd.Flags().IntVarP(&membersLimit, "limit", "l", DefaultListLimit, "maximum number of members")
	channelsMembersCmd.Flags().BoolVar(&membersResolve, "resolve", false, "resolve member IDs to user names")

	channelsCmd.AddCommand(channelsListCmd, channelsInfoCmd, channelsHistoryCmd, channelsMembersCmd)
	rootCmd.AddCommand(channelsCmd)
}
