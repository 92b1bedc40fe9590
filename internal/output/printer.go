// Package output renders command results either as human-readable text or
// as pretty-printed JSON.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
)

// Record is anything a command can print. The JSON form is the encoding of
// the value itself; WriteHuman writes the text form.
type Record interface {
	WriteHuman(w io.Writer, t *Theme)
}

// ColorMode selects when ANSI colors are emitted.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ParseColorMode validates a --color value. Empty means auto.
func ParseColorMode(s string) (ColorMode, error) {
	switch m := ColorMode(strings.ToLower(strings.TrimSpace(s))); m {
	case "", ColorAuto:
		return ColorAuto, nil
	case ColorAlways, ColorNever:
		return m, nil
	}
	return "", fmt.Errorf("invalid color mode %q (want auto, always or never)", s)
}

// Options configures a Printer.
type Options struct {
	JSON     bool
	Quiet    bool
	Stdout   io.Writer
	Stderr   io.Writer
	Color    ColorMode
	Location *time.Location
}

// Printer is the output sink shared by all commands of one invocation.
type Printer struct {
	json   bool
	quiet  bool
	stdout io.Writer
	stderr io.Writer
	theme  *Theme
}

// New creates a Printer. Nil writers default to os.Stdout and os.Stderr.
func New(opts Options) *Printer {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	return &Printer{
		json:   opts.JSON,
		quiet:  opts.Quiet,
		stdout: opts.Stdout,
		stderr: opts.Stderr,
		theme:  NewTheme(colorEnabled(opts.Color, opts.Stdout), opts.Location),
	}
}

func colorEnabled(mode ColorMode, w io.Writer) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// IsJSON reports whether the printer emits JSON.
func (p *Printer) IsJSON() bool { return p.json }

// Theme returns the palette used for human output.
func (p *Printer) Theme() *Theme { return p.theme }

// Print renders a single record.
// JSON output is never suppressed by quiet mode.
func (p *Printer) Print(rec Record) error {
	if p.json {
		return p.writeJSON(rec)
	}
	if p.quiet {
		return nil
	}
	var buf bytes.Buffer
	rec.WriteHuman(&buf, p.theme)
	return flush(p.stdout, &buf)
}

// PrintList renders items in order. JSON output is a bare array, "[]" when
// items is empty. Human output is a titled listing followed by a count.
func PrintList[T Record](p *Printer, items []T, title string) error {
	if p.json {
		if items == nil {
			items = []T{}
		}
		return p.writeJSON(items)
	}
	if p.quiet {
		return nil
	}
	var buf bytes.Buffer
	buf.WriteString(p.theme.Bold.Sprint(title))
	buf.WriteByte('\n')
	buf.WriteString(strings.Repeat("─", 40))
	buf.WriteByte('\n')
	for _, item := range items {
		item.WriteHuman(&buf, p.theme)
	}
	fmt.Fprintf(&buf, "\n%d items\n", len(items))
	return flush(p.stdout, &buf)
}

// Success prints a confirmation line to stdout in human mode.
func (p *Printer) Success(msg string) error {
	if p.json || p.quiet {
		return nil
	}
	return flush(p.stdout, bytes.NewBufferString(p.theme.Green.Sprint("✓")+" "+msg+"\n"))
}

// Status prints a dimmed progress line to stderr in human mode.
func (p *Printer) Status(msg string) error {
	if p.json || p.quiet {
		return nil
	}
	return flush(p.stderr, bytes.NewBufferString(p.theme.Dim.Sprint(msg)+"\n"))
}

// Error prints msg to stderr regardless of format or quiet mode.
func (p *Printer) Error(msg string) error {
	return flush(p.stderr, bytes.NewBufferString(p.theme.Red.Sprint("✗")+" "+msg+"\n"))
}

// Raw writes a payload such as a downloaded file to stdout unchanged.
// It ignores format and quiet mode.
func (p *Printer) Raw(b []byte) error {
	return flush(p.stdout, bytes.NewBuffer(b))
}

func (p *Printer) writeJSON(v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return flush(p.stdout, bytes.NewBuffer(append(b, '\n')))
}

// flush issues a single write so a render either lands whole or fails.
func flush(w io.Writer, buf *bytes.Buffer) error {
	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
