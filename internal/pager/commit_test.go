package pager

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// runTick executes a tea.Tick command and returns its CommitMsg.
func runTick(t *testing.T, cmd tea.Cmd) CommitMsg {
	t.Helper()
	if cmd == nil {
		t.Fatalf("expected a scheduled command")
	}
	msg, ok := cmd().(CommitMsg)
	if !ok {
		t.Fatalf("expected CommitMsg")
	}
	return msg
}

func TestCommitterCoalescesBursts(t *testing.T) {
	c := NewCommitter("chapters", time.Millisecond)
	first := runTick(t, c.Schedule(10))
	second := runTick(t, c.Schedule(11))
	third := runTick(t, c.Schedule(12))

	if c.Accept(first) {
		t.Fatalf("superseded tick must be rejected")
	}
	if c.Accept(second) {
		t.Fatalf("superseded tick must be rejected")
	}
	if !c.Accept(third) {
		t.Fatalf("latest tick must be accepted")
	}
	if third.Index != 12 {
		t.Fatalf("latest tick carries %d, want 12", third.Index)
	}
}

func TestCommitterRejectsOtherSurfaces(t *testing.T) {
	c := NewCommitter("chapters", time.Millisecond)
	msg := runTick(t, c.Schedule(4))
	msg.Surface = "topics"
	if c.Accept(msg) {
		t.Fatalf("tick for another surface must be rejected")
	}
}

func TestCommitterInvalidate(t *testing.T) {
	c := NewCommitter("chapters", time.Millisecond)
	msg := runTick(t, c.Schedule(7))
	c.Invalidate()
	if c.Accept(msg) {
		t.Fatalf("invalidated tick must be rejected")
	}
}

func TestCommitterDefaultDelay(t *testing.T) {
	c := NewCommitter("chapters", 0)
	if c.delay != DefaultCommitDelay {
		t.Fatalf("delay = %v, want %v", c.delay, DefaultCommitDelay)
	}
}
