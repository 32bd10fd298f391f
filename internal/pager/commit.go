package pager

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultCommitDelay is the quiet interval after which the committed
// position is reported externally. Rapid consecutive swipes inside this
// interval coalesce into a single notification.
const DefaultCommitDelay = 90 * time.Millisecond

// CommitMsg is delivered when a debounce interval elapses. Stale
// sequence numbers identify ticks superseded by a later Schedule call.
type CommitMsg struct {
	Surface string
	Seq     uint64
	Index   int
}

// Committer debounces external navigation notifications. Each Schedule
// supersedes any pending tick (last-write-wins; commits are never
// merged). Cancellation is implicit: a stale tick still arrives but is
// rejected by Accept.
type Committer struct {
	surface string
	delay   time.Duration
	seq     uint64
}

// NewCommitter creates a committer for the named surface. A
// non-positive delay falls back to DefaultCommitDelay.
func NewCommitter(surface string, delay time.Duration) *Committer {
	if delay <= 0 {
		delay = DefaultCommitDelay
	}
	return &Committer{surface: surface, delay: delay}
}

// Schedule arms the debounce timer for the given index, superseding any
// pending commit.
func (c *Committer) Schedule(index int) tea.Cmd {
	c.seq++
	seq := c.seq
	return tea.Tick(c.delay, func(time.Time) tea.Msg {
		return CommitMsg{Surface: c.surface, Seq: seq, Index: index}
	})
}

// Accept reports whether the tick is the currently armed one. Ticks for
// other surfaces or superseded sequence numbers are rejected.
func (c *Committer) Accept(msg CommitMsg) bool {
	return msg.Surface == c.surface && msg.Seq == c.seq
}

// Invalidate marks any in-flight tick stale without arming a new one.
// Programmatic jumps use it so an earlier swipe burst cannot commit a
// position the user has already left.
func (c *Committer) Invalidate() {
	c.seq++
}
