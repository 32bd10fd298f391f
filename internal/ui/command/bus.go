package command

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/verse-mate/versemate-tui/internal/logging/events"
)

const runTimeout = 5 * time.Second

// Request encapsulates one store action invocation.
type Request struct {
	ID    string
	Label string
	Run   func(context.Context) tea.Msg
}

// Bus coordinates the execution of store actions.
type Bus struct{}

// New initialises a command bus instance.
func New() *Bus {
	return &Bus{}
}

// Execute wraps a store action into a Bubble Tea command while emitting
// trace logs.
func (b *Bus) Execute(req Request) tea.Cmd {
	events.Command.Queue(req.ID, req.Label)
	return func() tea.Msg {
		if req.Run == nil {
			return nil
		}
		ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
		defer cancel()
		msg := req.Run(ctx)
		events.Command.Result(req.ID, req.Label, fmt.Sprintf("%T", msg))
		return msg
	}
}
