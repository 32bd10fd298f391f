// Package versefmt lays out chapter and article text for a fixed-width
// terminal column.
package versefmt

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/wordwrap"
	"github.com/verse-mate/versemate-tui/internal/store"
)

const numberWidth = 4

// Chapter renders verses as numbered lines, wrapping each verse to the
// given width with continuation lines indented under the text column.
func Chapter(verses []store.Verse, width int) []string {
	if width <= numberWidth+1 {
		width = numberWidth + 20
	}
	textWidth := width - numberWidth
	indent := strings.Repeat(" ", numberWidth)
	var out []string
	for _, v := range verses {
		wrapped := wrapText(v.Text, textWidth)
		for i, line := range wrapped {
			if i == 0 {
				out = append(out, fmt.Sprintf("%*d %s", numberWidth-1, v.Number, line))
			} else {
				out = append(out, indent+line)
			}
		}
	}
	return out
}

// Article renders free-form topical text: paragraphs separated by blank
// lines, each wrapped to the given width.
func Article(content string, width int) []string {
	if width <= 0 {
		width = 80
	}
	paragraphs := strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n\n")
	var out []string
	for _, para := range paragraphs {
		para = strings.TrimSpace(strings.ReplaceAll(para, "\n", " "))
		if para == "" {
			continue
		}
		if len(out) > 0 {
			out = append(out, "")
		}
		out = append(out, wrapText(para, width)...)
	}
	return out
}

func wrapText(text string, width int) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return []string{""}
	}
	wrapped := wordwrap.String(text, width)
	return strings.Split(wrapped, "\n")
}
