package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/verse-mate/versemate-tui/internal/format/versefmt"
	"github.com/verse-mate/versemate-tui/internal/pager"
)

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.mode == ModePicker {
		return m.viewPicker()
	}
	return m.viewReader()
}

func (m *Model) viewReader() string {
	lines := make([]styledLine, 0, 16)
	pos := pager.Shared().Current()
	header := pos.Primary
	if pos.Secondary != "" {
		if header != "" {
			header += " · "
		}
		header += pos.Secondary
	}
	if header == "" {
		header = "VerseMate"
	}
	lines = append(lines, styledLine{text: header, style: styles.Header})
	lines = append(lines, styledLine{text: m.windowIndicator(), style: styles.Info})
	lines = append(lines, styledLine{})

	body := m.bodyLines()
	bodyH := m.bodyHeight()
	if bodyH > 0 && len(body) > bodyH {
		maxScroll := len(body) - bodyH
		if m.bodyScroll > maxScroll {
			m.bodyScroll = maxScroll
		}
		if m.bodyScroll < 0 {
			m.bodyScroll = 0
		}
		body = body[m.bodyScroll : m.bodyScroll+bodyH]
	} else {
		m.bodyScroll = 0
	}
	bodyStyle := styles.Item
	if m.loadingBody {
		bodyStyle = styles.Loading
	}
	for _, text := range body {
		lines = append(lines, styledLine{text: text, style: bodyStyle})
	}

	if info := m.currentInfo(); info != "" {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: info, style: styles.Info})
	}
	if m.showFooter {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: "←/→ page  ↑/↓ scroll  tab surface  enter picker  b bookmark  q quit", style: styles.Footer})
	}
	lines = limitHeight(lines, m.height-1, m.width)
	lines = applyWidth(lines, m.width)

	var statusLine styledLine
	if m.errMsg != "" {
		statusLine = styledLine{text: fmt.Sprintf("Error: %s", m.errMsg), style: styles.Error}
	} else if warn, msg := m.hasBackendIssue(); warn {
		statusLine = styledLine{text: fmt.Sprintf("Metadata: %s", msg), style: styles.Error}
	}
	bottom := applyWidth([]styledLine{statusLine}, m.width)
	lines = append(lines, bottom...)
	return renderLines(lines)
}

// windowIndicator draws the W slots with the rest ordinal marked, plus
// the absolute position within the catalog.
func (m *Model) windowIndicator() string {
	ctrl := m.activePager()
	var b strings.Builder
	for slot := 0; slot < ctrl.Size(); slot++ {
		if slot > 0 {
			b.WriteByte(' ')
		}
		if slot == ctrl.Rest() {
			b.WriteString("●")
		} else {
			b.WriteString("·")
		}
	}
	if ctrl.Length() > 0 {
		fmt.Fprintf(&b, "   %d/%d", ctrl.Index()+1, ctrl.Length())
	} else {
		b.WriteString("   loading metadata…")
	}
	return b.String()
}

func (m *Model) bodyLines() []string {
	width := m.width
	if width <= 0 {
		width = 80
	}
	if m.surface == SurfaceTopics {
		t, ok := m.topics.At(m.topicPager.Index())
		if !ok {
			return []string{"(no topics loaded)"}
		}
		if m.topicFor != t.ID {
			if m.loadingBody {
				return []string{"Loading…"}
			}
			return nil
		}
		if m.topicBody.Content == "" {
			return []string{"(no offline text for this topic)"}
		}
		lines := versefmt.Article(m.topicBody.Content, width)
		if m.topicBody.References != "" {
			lines = append(lines, "", "References: "+m.topicBody.References)
		}
		return lines
	}
	ref, ok := m.chapters.Ref(m.chapterPager.Index())
	if !ok {
		return []string{"(no chapters loaded)"}
	}
	if m.chapterFor != ref {
		if m.loadingBody {
			return []string{"Loading…"}
		}
		return nil
	}
	if len(m.chapterBody) == 0 {
		return []string{fmt.Sprintf("(no offline text for %s)", ref)}
	}
	var lines []string
	if m.chapterSummary != "" {
		lines = append(lines, versefmt.Article(m.chapterSummary, width)...)
		lines = append(lines, "")
	}
	return append(lines, versefmt.Chapter(m.chapterBody, width)...)
}

func (m *Model) bodyHeight() int {
	if m.height <= 0 {
		return -1
	}
	used := 4 // header, indicator, blank separator, bottom status row
	if info := m.currentInfo(); info != "" {
		used += 2
	}
	if m.showFooter {
		used += 2
	}
	remain := m.height - used
	if remain < 1 {
		return 1
	}
	return remain
}

func (m *Model) scrollBody(delta int) {
	m.bodyScroll += delta
	if m.bodyScroll < 0 {
		m.bodyScroll = 0
	}
}

func (m *Model) viewPicker() string {
	lines := make([]styledLine, 0, 16)
	if header := m.pickerHeader(); header != "" {
		lines = append(lines, styledLine{text: header, style: styles.Header})
	}
	if current := m.currentLevel(); current != nil {
		m.syncViewport(current)
		start := 0
		displayItems := current.Items
		if maxItems := m.maxVisibleItems(); maxItems > 0 && len(displayItems) > maxItems {
			start = current.ViewportOffset
			if start < 0 {
				start = 0
			}
			if start+maxItems > len(displayItems) {
				start = len(displayItems) - maxItems
				if start < 0 {
					start = 0
				}
				current.ViewportOffset = start
			}
			displayItems = displayItems[start : start+maxItems]
		}
		if len(current.Items) == 0 {
			msg := "(no entries)"
			if current.Filter != "" {
				msg = fmt.Sprintf("No matches for %q", current.Filter)
			}
			lines = append(lines, styledLine{text: msg, style: styles.Info})
		} else {
			for i, item := range displayItems {
				idx := start + i
				lines = append(lines, m.buildItemLine(item.Label, idx, current, m.width))
			}
		}
	}
	if info := m.currentInfo(); info != "" {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: info, style: styles.Info})
	}
	if m.showFooter {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: "↑/↓ move  enter select  esc back  ctrl+c quit", style: styles.Footer})
	}
	lines = limitHeight(lines, m.height-2, m.width)
	lines = applyWidth(lines, m.width)

	var statusLine styledLine
	if m.errMsg != "" {
		statusLine = styledLine{text: fmt.Sprintf("Error: %s", m.errMsg), style: styles.Error}
	}
	promptText, _ := m.filterPrompt()
	bottomLines := []styledLine{
		statusLine,
		{text: promptText},
	}
	bottomLines = applyWidth(bottomLines, m.width)
	lines = append(lines, bottomLines...)
	return renderLines(lines)
}

func (m *Model) pickerHeader() string {
	if len(m.stack) == 0 {
		return ""
	}
	segments := make([]string, 0, len(m.stack))
	for _, lvl := range m.stack {
		title := strings.TrimSpace(lvl.Title)
		if title == "" {
			title = lvl.ID
		}
		segments = append(segments, title)
	}
	header := strings.Join(segments, " → ")
	if m.width > 0 && len([]rune(header)) > m.width {
		header = truncate.StringWithTail(header, uint(m.width-1), "…")
	}
	return header
}

// buildItemLine constructs a single styledLine for a picker item. When
// width > 0 the text is padded so the selected item's background spans
// the full row.
func (m *Model) buildItemLine(label string, idx int, current *level, width int) styledLine {
	indicator := "▌"
	lineStyle := styles.Item
	indicatorStyle := styles.ItemIndicator
	if idx == current.Cursor {
		indicatorStyle = styles.SelectedItemIndicator
		lineStyle = styles.SelectedItem
	}
	fullText := indicator + " " + label
	if width > 0 {
		if pad := width - len([]rune(fullText)); pad > 0 {
			fullText += strings.Repeat(" ", pad)
		}
	}
	return styledLine{
		text:          fullText,
		style:         lineStyle,
		prefixStyle:   indicatorStyle,
		highlightFrom: 1, // just the ▌ character
	}
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	if current := m.currentLevel(); current != nil {
		m.syncViewport(current)
	}
	return nil
}

func (m *Model) maxVisibleItems() int {
	if m.height <= 0 {
		return -1
	}
	used := 2 // bottom bar: error/status + filter prompt
	if m.pickerHeader() != "" {
		used++
	}
	if info := m.currentInfo(); info != "" {
		used += 2
	}
	if m.showFooter {
		used += 2
	}
	remain := m.height - used
	if remain < 1 {
		return 1
	}
	return remain
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(5 * time.Second)
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return m.infoMsg
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		result[i] = styledLine{
			text:          truncateText(line.text, width),
			style:         line.style,
			prefixStyle:   line.prefixStyle,
			highlightFrom: line.highlightFrom,
		}
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		runes := []rune(text)
		if line.highlightFrom > 0 && line.highlightFrom < len(runes) {
			head := string(runes[:line.highlightFrom])
			tail := string(runes[line.highlightFrom:])
			if line.prefixStyle != nil {
				head = line.prefixStyle.Render(head)
			}
			if line.style != nil {
				tail = line.style.Render(tail)
			}
			text = head + tail
		} else if line.style != nil {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width == 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "…"
}
