package records

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	slackapi "github.com/rusq/slack"
	"github.com/samber/lo"

	"github.com/co42/slackline/internal/output"
)

// FileInfo describes an uploaded file.
type FileInfo struct {
	ID                 string     `json:"id"`
	Name               string     `json:"name"`
	Title              *string    `json:"title"`
	Mimetype           *string    `json:"mimetype"`
	Filetype           *string    `json:"filetype"`
	User               *string    `json:"user"`
	Size               *int       `json:"size"`
	URLPrivate         *string    `json:"url_private"`
	URLPrivateDownload *string    `json:"url_private_download"`
	Permalink          *string    `json:"permalink"`
	Timestamp          *time.Time `json:"timestamp"`
}

// NewFileInfo maps a file.
func NewFileInfo(f slackapi.File) FileInfo {
	info := FileInfo{
		ID:                 f.ID,
		Name:               f.Name,
		Title:              optString(f.Title),
		Mimetype:           optString(f.Mimetype),
		Filetype:           optString(f.Filetype),
		User:               optString(f.User),
		Size:               optInt(f.Size),
		URLPrivate:         optString(f.URLPrivate),
		URLPrivateDownload: optString(f.URLPrivateDownload),
		Permalink:          optString(f.Permalink),
	}
	uploaded := f.Timestamp
	if uploaded == 0 {
		uploaded = f.Created
	}
	if uploaded > 0 {
		t := time.Unix(int64(uploaded), 0).UTC()
		info.Timestamp = &t
	}
	return info
}

// NewFileInfos maps a page of files, preserving order.
func NewFileInfos(fs []slackapi.File) []FileInfo {
	return lo.Map(fs, func(f slackapi.File, _ int) FileInfo { return NewFileInfo(f) })
}

// DownloadURL prefers url_private_download over url_private.
func (f FileInfo) DownloadURL() string {
	return deref(f.URLPrivateDownload, deref(f.URLPrivate, ""))
}

func (f FileInfo) WriteHuman(w io.Writer, t *output.Theme) {
	title := deref(f.Title, f.Name)
	fmt.Fprintf(w, "%s by %s\n", t.Green.Sprint(t.Bold.Sprint(title)), t.Cyan.Sprint(deref(f.User, "unknown")))
	if f.Filetype != nil && f.Mimetype != nil {
		fmt.Fprintf(w, "  %s | %s\n", t.Yellow.Sprint(*f.Filetype), t.Dim.Sprint(*f.Mimetype))
	}
	if f.Size != nil {
		fmt.Fprintf(w, "  Size: %s\n", humanize.Bytes(uint64(*f.Size)))
	}
	fmt.Fprintf(w, "  Uploaded: %s\n", t.Dim.Sprint(displayTime(f.Timestamp, t.Location, "unknown")))
	switch {
	case f.URLPrivateDownload != nil:
		fmt.Fprintf(w, "  Download: %s\n", t.Cyan.Sprint(*f.URLPrivateDownload))
	case f.URLPrivate != nil:
		fmt.Fprintf(w, "  URL: %s\n", t.Cyan.Sprint(*f.URLPrivate))
	}
	if f.Permalink != nil {
		fmt.Fprintf(w, "  Permalink: %s\n", t.Dim.Sprint(*f.Permalink))
	}
	fmt.Fprintln(w)
}
