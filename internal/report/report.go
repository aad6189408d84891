// Package report summarises detection results for display.
package report

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/goccy/go-json"

	"github.com/Cyclone1070/textenc/internal/file"
)

// Entry is one row of a detection report.
type Entry struct {
	Path      string `json:"path"`
	Encoding  string `json:"encoding"`
	Binary    bool   `json:"binary"`
	Reason    string `json:"reason,omitempty"`
	Size      int64  `json:"size"`
	Chars     int    `json:"chars"`
	Lines     int    `json:"lines"`
	RoundTrip bool   `json:"round_trip"`
}

// FromFile builds the entry for f. raw is the exact bytes f was read from
// and is compared against what saving f would write.
func FromFile(f *file.File, raw []byte) Entry {
	content := f.Content()
	entry := Entry{
		Path:      f.Path(),
		Encoding:  file.Label(content),
		Size:      int64(len(raw)),
		RoundTrip: bytes.Equal(content.Bytes(), raw),
	}

	switch c := content.(type) {
	case file.EncodedContent:
		s := c.Text.String()
		entry.Chars = c.Text.Len()
		entry.Lines = countLines(s)
	case file.BinaryContent:
		entry.Binary = true
		if c.Cause != nil {
			entry.Reason = c.Cause.Error()
		} else {
			entry.Reason = "null byte in leading content"
		}
	}
	return entry
}

// countLines counts newline-terminated lines plus a trailing partial line.
func countLines(s string) int {
	if s == "" {
		return 0
	}
	n := strings.Count(s, "\n")
	if !strings.HasSuffix(s, "\n") {
		n++
	}
	return n
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	textStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))  // Green
	bomStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))  // Blue
	binaryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214")) // Orange
	reasonStyle = lipgloss.NewStyle().Faint(true)
)

const (
	tabwriterMinWidth = 6
	tabwriterWidth    = 4
	tabwriterPadding  = 3
	tabwriterPadChar  = ' '
	tabwriterFlags    = 0
)

// WriteText renders entries as an aligned table. Labels are styled only when
// color is set.
func WriteText(w io.Writer, entries []Entry, color bool) error {
	tw := tabwriter.NewWriter(w, tabwriterMinWidth, tabwriterWidth, tabwriterPadding, tabwriterPadChar, tabwriterFlags)

	style := func(s lipgloss.Style, text string) string {
		if !color {
			return text
		}
		return s.Render(text)
	}

	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t\n",
		style(headerStyle, "PATH"), style(headerStyle, "ENCODING"), style(headerStyle, "SIZE"),
		style(headerStyle, "CHARS"), style(headerStyle, "LINES"))

	for _, e := range entries {
		chars, lines := fmt.Sprint(e.Chars), fmt.Sprint(e.Lines)
		label := style(labelStyle(e), e.Encoding)
		if e.Binary {
			chars, lines = "-", "-"
			if e.Reason != "" {
				label += " " + style(reasonStyle, "("+e.Reason+")")
			}
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t\n",
			e.Path, label, humanize.IBytes(uint64(e.Size)), chars, lines)
	}
	return tw.Flush()
}

func labelStyle(e Entry) lipgloss.Style {
	switch {
	case e.Binary:
		return binaryStyle
	case strings.Contains(e.Encoding, "BOM") || strings.HasPrefix(e.Encoding, "UTF-16"):
		return bomStyle
	default:
		return textStyle
	}
}

// WriteJSON emits entries as an indented JSON array.
func WriteJSON(w io.Writer, entries []Entry) error {
	if entries == nil {
		entries = []Entry{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(entries)
}
