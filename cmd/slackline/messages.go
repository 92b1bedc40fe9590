package main

import (
	"github.com/spf13/cobra"

	"github.com/co42/slackline/internal/output"
	"github.com/co42/slackline/internal/records"
)

var repliesLimit int

var messagesCmd = &cobra.Command{
	Use:   "messages",
	Short: "Read threads and message links",
}

var messagesRepliesCmd = &cobra.Command{
	Use:   "replies <channel> <thread-ts>",
	Short: "Show a thread, parent message first",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := current.client()
		if err != nil {
			return err
		}
		msgs, err := c.Replies(cmd.Context(), args[0], args[1], repliesLimit)
		if err != nil {
			return err
		}
		return output.PrintList(current.printer, records.NewReplyInfos(msgs), "Thread replies in "+args[0])
	},
}

var messagesPermalinkCmd = &cobra.Command{
	Use:   "permalink <channel> <message-ts>",
	Short: "Show the shareable URL of a message",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := current.client()
		if err != nil {
			return err
		}
		link, err := c.Permalink(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}
		return current.printer.Print(records.PermalinkInfo{
			Channel:   args[0],
			MessageTS: args[1],
			Permalink: link,
		})
	},
}

func init() {
	messagesRepliesCmd.Flags().IntVarP(&repliesLimit, "limit", "l", DefaultListLimit, "maximum number of replies")

	messagesCmd.AddCommand(messagesRepliesCmd, messagesPermalinkCmd)
	rootCmd.AddCommand(messagesCmd)
}
