package versefmt

import (
	"strings"
	"testing"

	"github.com/verse-mate/versemate-tui/internal/store"
)

func TestChapterNumbersAndIndent(t *testing.T) {
	verses := []store.Verse{
		{Number: 1, Text: "In the beginning God created the heavens and the earth."},
		{Number: 2, Text: "And the earth was formless and void."},
	}
	lines := Chapter(verses, 30)
	if len(lines) < 3 {
		t.Fatalf("expected wrapped output, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[0], "  1 ") {
		t.Fatalf("first line = %q, want verse number prefix", lines[0])
	}
	foundContinuation := false
	for _, line := range lines[1:] {
		if strings.HasPrefix(line, "    ") {
			foundContinuation = true
		}
	}
	if !foundContinuation {
		t.Fatalf("no indented continuation line in %q", lines)
	}
	for _, line := range lines {
		if len([]rune(line)) > 30 {
			t.Fatalf("line exceeds width: %q", line)
		}
	}
}

func TestChapterEmptyInput(t *testing.T) {
	if lines := Chapter(nil, 40); len(lines) != 0 {
		t.Fatalf("expected no lines, got %v", lines)
	}
}

func TestArticleParagraphs(t *testing.T) {
	content := "First paragraph with some words.\n\nSecond paragraph here."
	lines := Article(content, 80)
	blank := 0
	for _, line := range lines {
		if line == "" {
			blank++
		}
	}
	if blank != 1 {
		t.Fatalf("expected one blank separator, got %d in %q", blank, lines)
	}
	if lines[0] != "First paragraph with some words." {
		t.Fatalf("first line = %q", lines[0])
	}
}

func TestArticleCollapsesSingleNewlines(t *testing.T) {
	lines := Article("one\ntwo", 80)
	if len(lines) != 1 || lines[0] != "one two" {
		t.Fatalf("got %q, want single joined line", lines)
	}
}
