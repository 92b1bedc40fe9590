package main

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/co42/slackline/internal/output"
	"github.com/co42/slackline/internal/records"
	"github.com/co42/slackline/internal/slack"
)

var (
	filesChannel string
	filesUser    string
	filesLimit   int
	downloadPath string
)

var filesCmd = &cobra.Command{
	Use:   "files",
	Short: "List, inspect and download files",
}

var filesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List files, optionally by channel or uploader",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		c, err := current.client()
		if err != nil {
			return err
		}
		files, err := c.Files(cmd.Context(), slack.FilesQuery{
			Channel: filesChannel,
			User:    filesUser,
			Limit:   filesLimit,
		})
		if err != nil {
			return err
		}
		return output.PrintList(current.printer, records.NewFileInfos(files), filesTitle(filesChannel, filesUser))
	},
}

func filesTitle(channel, user string) string {
	var b strings.Builder
	b.WriteString("Files")
	if channel != "" {
		fmt.Fprintf(&b, " in #%s", channel)
	}
	if user != "" {
		fmt.Fprintf(&b, " by %s", user)
	}
	return b.String()
}

var filesInfoCmd = &cobra.Command{
	Use:   "info <file>",
	Short: "Show file metadata",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := current.client()
		if err != nil {
			return err
		}
		f, err := c.FileInfo(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return current.printer.Print(records.NewFileInfo(*f))
	},
}

var filesDownloadCmd = &cobra.Command{
	Use:   "download <file>",
	Short: "Download a file to --output or stdout",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := current.client()
		if err != nil {
			return err
		}
		f, err := c.FileInfo(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		info := records.NewFileInfo(*f)

		var buf bytes.Buffer
		if err := c.DownloadFile(cmd.Context(), info.DownloadURL(), &buf); err != nil {
			return err
		}

		if downloadPath == "" {
			return current.printer.Raw(buf.Bytes())
		}
		if err := os.WriteFile(downloadPath, buf.Bytes(), 0644); err != nil {
			return fmt.Errorf("writing %s: %w", downloadPath, err)
		}
		name := info.Name
		if name == "" {
			name = "file"
		}
		return current.printer.Status(fmt.Sprintf("Downloaded %s (%s) to %s", name, humanize.Bytes(uint64(buf.Len())), downloadPath))
	},
}

func init() {
	filesListCmd.Flags().StringVar(&filesChannel, "channel", "", "only files shared in this channel")
	filesListCmd.Flags().StringVar(&filesUser, "user", "", "only files uploaded by this user")
	filesListCmd.Flags().IntVarP(&filesLimit, "limit", "l", DefaultFilesLimit, "maximum number of files")

	filesDownloadCmd.Flags().StringVarP(&downloadPath, "output", "o", "", "write to this path instead of stdout")

	filesCmd.AddCommand(filesListCmd, filesInfoCmd, filesDownloadCmd)
	rootCmd.AddCommand(filesCmd)
}
