package pager

import (
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/verse-mate/versemate-tui/internal/logging/events"
)

// frameInterval approximates one rendering frame. The only guarantee
// required of the frame callback is that it runs after the surface has
// physically completed the silent jump.
const frameInterval = 16 * time.Millisecond

// FrameMsg confirms that a silent reposition has taken visual effect.
type FrameMsg struct {
	Surface string
}

// Sinks are the collaborators a controller drives. All three are
// invoked synchronously from inside the event handler, in a fixed
// order: feedback first, display second, notification only via the
// debounced commit.
type Sinks struct {
	// Feedback is the fire-and-forget haptic/bell signal for every
	// accepted navigation step.
	Feedback func()
	// Display pushes the item at the given absolute index into the
	// display synchronization channel.
	Display func(index int)
	// Notify reports the debounced committed index to the outside
	// world (position persistence, deep links). The returned command,
	// if any, is executed by the event loop.
	Notify func(index int) tea.Cmd
}

// Controller owns the window state for one swipe surface. It is a two
// state machine: Idle, and Recentering while the guard is active.
//
// Two positions are tracked. current is the absolute index of the item
// the user is on, the sole source of truth for "where the user is".
// anchor is the absolute index bound to the center ordinal, which the
// window geometry reads. Between recenters the surface may rest off
// center (one swipe of slack), so the two can differ by the rest
// offset; an edge event re-anchors and silently repositions, making
// them coincide again. Non-edge events leave every slot's content
// binding untouched, which is what keeps slots from remounting.
type Controller struct {
	surface string
	size    int
	center  int

	length  int
	current int
	anchor  int
	rest    int

	guard  Guard
	commit *Committer
	sinks  Sinks
}

// NewController creates a controller for a window of the given odd
// size. The catalog length starts at zero; events are no-ops until
// Reset supplies real metadata.
func NewController(surface string, size int, delay time.Duration, sinks Sinks) *Controller {
	if size < 3 || size%2 == 0 {
		size = 7
	}
	return &Controller{
		surface: surface,
		size:    size,
		center:  Center(size),
		rest:    Center(size),
		commit:  NewCommitter(surface, delay),
		sinks:   sinks,
	}
}

// Surface returns the controller's surface name.
func (c *Controller) Surface() string { return c.surface }

// Size returns the window size W.
func (c *Controller) Size() int { return c.size }

// Index returns the absolute index of the item the user is on.
func (c *Controller) Index() int { return c.current }

// Length returns the catalog length last supplied via Reset.
func (c *Controller) Length() int { return c.length }

// Rest returns the ordinal where the surface currently rests.
func (c *Controller) Rest() int { return c.rest }

// Recentering reports whether the guard is active.
func (c *Controller) Recentering() bool { return c.guard.Active() }

// Slot returns the absolute index displayed at the given ordinal.
func (c *Controller) Slot(ordinal int) int {
	return SlotIndex(ordinal, c.anchor, c.size, c.length)
}

// Window returns the absolute index for every ordinal, in ordinal
// order. Ordinal identity is positional and never reassigned; only the
// index bound to each ordinal changes.
func (c *Controller) Window() []int {
	if c.length <= 0 {
		return nil
	}
	out := make([]int, c.size)
	for slot := range out {
		out[slot] = c.Slot(slot)
	}
	return out
}

// Select handles a swipe-completion event reporting the ordinal the
// surface settled on. Fractional ordinals are floored before use. The
// returned command carries the debounce tick and, for edge events, the
// one-shot frame callback.
func (c *Controller) Select(ordinal float64) tea.Cmd {
	slot := int(math.Floor(ordinal))
	if c.guard.Active() {
		events.Pager.Dropped(c.surface, slot)
		return nil
	}
	if c.length <= 0 {
		return nil
	}
	if slot < 0 || slot >= c.size {
		events.Pager.OutOfRange(c.surface, slot)
		return nil
	}
	if slot == c.rest {
		return nil
	}

	offset := slot - c.center
	newIndex := Wrap(c.anchor+offset, c.length)
	events.Pager.Selected(c.surface, slot, offset, newIndex)

	// Side-effect order is fixed: feedback, display channel, window
	// state, commit scheduling, then guard engagement.
	if c.sinks.Feedback != nil {
		c.sinks.Feedback()
	}
	if c.sinks.Display != nil {
		c.sinks.Display(newIndex)
	}
	c.current = newIndex

	cmds := []tea.Cmd{c.commit.Schedule(newIndex)}
	if slot == 0 || slot == c.size-1 {
		if c.guard.Engage() {
			c.anchor = newIndex
			c.rest = c.center
			events.Pager.Recenter(c.surface, newIndex)
			cmds = append(cmds, c.frameCmd())
		}
	} else {
		c.rest = slot
	}
	return tea.Batch(cmds...)
}

// HandleFrame settles the guard when the surface's frame callback
// arrives. It reports whether the message belonged to this controller.
func (c *Controller) HandleFrame(msg FrameMsg) bool {
	if msg.Surface != c.surface {
		return false
	}
	c.guard.Settle()
	events.Pager.Settled(c.surface)
	return true
}

// HandleCommit resolves a debounce tick. Stale ticks and ticks for
// other surfaces produce no side effects.
func (c *Controller) HandleCommit(msg CommitMsg) tea.Cmd {
	if msg.Surface != c.surface {
		return nil
	}
	if !c.commit.Accept(msg) {
		events.Nav.Stale(c.surface, msg.Index)
		return nil
	}
	if c.sinks.Notify == nil {
		return nil
	}
	return c.sinks.Notify(msg.Index)
}

// Jump repositions the controller programmatically (picker selection,
// deep link). No feedback fires, no commit is scheduled, and any
// pending commit goes stale; the display channel still updates so the
// header matches immediately.
func (c *Controller) Jump(index int) {
	if c.length <= 0 {
		return
	}
	index = Wrap(index, c.length)
	c.current = index
	c.anchor = index
	c.rest = c.center
	c.guard.Settle()
	c.commit.Invalidate()
	events.Pager.Jump(c.surface, index)
	if c.sinks.Display != nil {
		c.sinks.Display(index)
	}
}

// Reset installs a new catalog length and position, used on mount and
// whenever catalog metadata changes. The index is recomputed by the
// caller from the last-known domain key against the new metadata; the
// old absolute index is never trusted across snapshots.
func (c *Controller) Reset(index, length int) {
	c.length = length
	events.Pager.Reset(c.surface, index, length)
	if length <= 0 {
		c.current = 0
		c.anchor = 0
		c.rest = c.center
		c.guard.Settle()
		c.commit.Invalidate()
		return
	}
	c.Jump(index)
}

func (c *Controller) frameCmd() tea.Cmd {
	return tea.Tick(frameInterval, func(time.Time) tea.Msg {
		return FrameMsg{Surface: c.surface}
	})
}
